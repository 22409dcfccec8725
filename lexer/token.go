package lexer

import (
	"fmt"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenEOF
	TokenOpenParen  // Open parenthesis: "("
	TokenCloseParen // Close parenthesis: ")"

	// Reserved keywords
	TokenNs
	TokenDef
	TokenDefn
	TokenFn
	TokenQuote
	TokenIf

	TokenIdentifier // Letters, digits and underscore, starting with a letter
	TokenNumber     // 64-bit float literal
	TokenUnknown    // A single unrecognized character
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenEOF:        "EOF",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenNs:         "ns",
	TokenDef:        "def",
	TokenDefn:       "defn",
	TokenFn:         "fn",
	TokenQuote:      "quote",
	TokenIf:         "if",
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenUnknown:    "unknown",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// keywords maps reserved words to their token types. Reserved words are not
// available as variable names.
var keywords = map[string]TokenType{
	"ns":    TokenNs,
	"def":   TokenDef,
	"defn":  TokenDefn,
	"fn":    TokenFn,
	"quote": TokenQuote,
	"if":    TokenIf,
}

// operators maps single characters that lex as identifier tokens.
var operators = map[rune]string{
	'+': "+",
	'-': "-",
	'*': "*",
	'/': "/",
}

// Token represents a known sequence of characters (lexical unit). Text is set
// for identifier tokens, Number for number tokens and Char for unknown
// tokens; the remaining types carry no payload.
type Token struct {
	Type TokenType

	Text   string
	Number float64
	Char   rune
}

// Identifier creates an identifier token with the given name.
func Identifier(name string) Token {
	return Token{Type: TokenIdentifier, Text: name}
}

// Number creates a numeric token with the given value.
func Number(v float64) Token {
	return Token{Type: TokenNumber, Number: v}
}

// Unknown creates a token for a single unrecognized character.
func Unknown(c rune) Token {
	return Token{Type: TokenUnknown, Char: c}
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return fmt.Sprintf("identifier(%q)", t.Text)
	case TokenNumber:
		return fmt.Sprintf("number(%v)", t.Number)
	case TokenUnknown:
		return fmt.Sprintf("unknown(%q)", t.Char)
	}
	return t.Type.String()
}

// TokenAndSpan couples a token with the source range that produced it.
type TokenAndSpan struct {
	Token
	Span
}

func (t TokenAndSpan) String() string {
	return fmt.Sprintf("%v%v", t.Token, t.Span)
}
