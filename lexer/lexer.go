package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

// Lexer scans an input stream one rune at a time and produces spanned tokens
// on demand. It keeps a single rune of lookahead and owns the stream for its
// whole lifetime; it is not restartable, construct a new Lexer to re-scan.
type Lexer struct {
	in *bufio.Reader

	curr    rune
	currPos Position
	eof     bool
	started bool

	line   int
	column int
}

// New initializes a Lexer that reads from r.
func New(r io.Reader) *Lexer {
	return &Lexer{in: bufio.NewReader(r)}
}

// Next returns the next token together with its source span. At end of input
// it returns a TokenEOF token, and keeps doing so on further calls. A
// *ReadError return leaves the lexer usable; any other error is an I/O
// failure and aborts scanning.
func (lx *Lexer) Next() (TokenAndSpan, error) {
	if !lx.started {
		lx.started = true
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
	}

	if err := lx.skipSpaceAndComments(); err != nil {
		return TokenAndSpan{}, err
	}

	at := lx.currPos

	switch {
	case lx.eof:
		return spanned(Token{Type: TokenEOF}, at, at), nil

	case lx.curr == '(':
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
		return spanned(Token{Type: TokenOpenParen}, at, at), nil

	case lx.curr == ')':
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
		return spanned(Token{Type: TokenCloseParen}, at, at), nil

	case unicode.IsLetter(lx.curr):
		return lx.scanIdentifier()

	case unicode.IsDigit(lx.curr) || lx.curr == '.':
		return lx.scanNumber()

	default:
		c := lx.curr
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
		if name, ok := operators[c]; ok {
			return spanned(Identifier(name), at, at), nil
		}
		return spanned(Unknown(c), at, at), nil
	}
}

// step consumes the next rune, recording the position it was read at. At end
// of input currPos is left one column past the last rune.
func (lx *Lexer) step() error {
	r, _, err := lx.in.ReadRune()
	if err == io.EOF {
		lx.eof = true
		lx.currPos = Position{Line: lx.line, Column: lx.column}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read")
	}

	lx.curr = r
	lx.currPos = Position{Line: lx.line, Column: lx.column}

	lx.column++
	if r == '\n' || r == '\r' {
		lx.line++
		lx.column = 0
	}
	return nil
}

// skipSpaceAndComments discards whitespace and "#" line comments, interleaved,
// until neither applies. A comment runs to the next newline, carriage return
// or end of input.
func (lx *Lexer) skipSpaceAndComments() error {
	for {
		for !lx.eof && isSpace(lx.curr) {
			if err := lx.step(); err != nil {
				return err
			}
		}
		if lx.eof || lx.curr != '#' {
			return nil
		}
		for !lx.eof && lx.curr != '\n' && lx.curr != '\r' {
			if err := lx.step(); err != nil {
				return err
			}
		}
	}
}

func (lx *Lexer) scanIdentifier() (TokenAndSpan, error) {
	from := lx.currPos
	last := lx.currPos

	var text []rune
	for !lx.eof && isIdentifierRune(lx.curr) {
		text = append(text, lx.curr)
		last = lx.currPos
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
	}

	name := string(text)
	if tt, ok := keywords[name]; ok {
		return spanned(Token{Type: tt}, from, last), nil
	}
	return spanned(Identifier(name), from, last), nil
}

func (lx *Lexer) scanNumber() (TokenAndSpan, error) {
	from := lx.currPos
	last := lx.currPos

	var text []rune
	for !lx.eof && isNumberRune(lx.curr) {
		text = append(text, lx.curr)
		last = lx.currPos
		if err := lx.step(); err != nil {
			return TokenAndSpan{}, err
		}
	}

	span := Span{From: from, To: last}
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return TokenAndSpan{}, newReadError(string(text), span, err)
	}
	return TokenAndSpan{Token: Number(v), Span: span}, nil
}

func spanned(tok Token, from, to Position) TokenAndSpan {
	return TokenAndSpan{Token: tok, Span: Span{From: from, To: to}}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isNumberRune(r rune) bool {
	return unicode.IsDigit(r) || r == '.'
}

// Tokenize scans the whole input and returns every token within it, not
// including the trailing EOF marker.
func Tokenize(in []byte) ([]TokenAndSpan, error) {
	lx := New(bytes.NewReader(in))

	tokens := []TokenAndSpan{}
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
