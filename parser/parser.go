package parser

import (
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

// AssignCallee is the built-in operation a def form rewrites into.
const AssignCallee = "__assign"

// Tokenizer is the token source the parser pulls from. *lexer.Lexer satisfies
// it; tests substitute scripted sources.
type Tokenizer interface {
	Next() (lexer.TokenAndSpan, error)
}

// Parser reduces a spanned token stream into expressions, one balanced
// parenthesized form at a time. It holds no state of its own across calls
// beyond the tokenizer cursor.
type Parser struct {
	tokenizer Tokenizer
}

// New initializes a Parser that pulls tokens from t.
func New(t Tokenizer) *Parser {
	return &Parser{tokenizer: t}
}

// NextExpression returns the next top-level expression, or (nil, nil) once
// the input is exhausted. Each successful call leaves the tokenizer
// positioned right after the form it consumed; callers invoke it repeatedly
// until nil or an error.
func (p *Parser) NextExpression() (ast.Node, error) {
	tokens, err := p.extractBalanced()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	nodes, _, err := reduce(tokens)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &InternalError{Message: "balanced group reduced to nothing"}
	default:
		return nil, &InternalError{Message: "balanced group reduced to multiple expressions"}
	}
}

// extractBalanced pulls tokens until the paren depth returns to zero: one
// parenthesized group, a single bare token, or nothing at a clean end of
// input. Tokenizer errors are wrapped and fatal.
func (p *Parser) extractBalanced() ([]lexer.TokenAndSpan, error) {
	depth := 0
	var extracted []lexer.TokenAndSpan

	for {
		tok, err := p.tokenizer.Next()
		if err != nil {
			return nil, &TokenizeError{Err: err}
		}
		if tok.Is(lexer.TokenEOF) {
			break
		}

		switch tok.Type {
		case lexer.TokenOpenParen:
			depth++
		case lexer.TokenCloseParen:
			depth--
		}

		extracted = append(extracted, tok)
		if depth < 0 {
			return nil, &MismatchedParensError{Position: tok.From}
		}
		if depth == 0 {
			return extracted, nil
		}
	}

	if depth != 0 {
		return nil, &MismatchedParensError{Position: extracted[len(extracted)-1].From}
	}
	return extracted, nil
}

// reduce turns a flat token slice into a sequence of nodes plus the count of
// tokens consumed. It stops without consuming the close paren that ends the
// current nesting level; the consumed count never includes it.
func reduce(tokens []lexer.TokenAndSpan) ([]ast.Node, int, error) {
	result := make([]ast.Node, 0, len(tokens))
	parsed := 0

	for parsed < len(tokens) {
		tok := tokens[parsed]

		switch tok.Type {
		case lexer.TokenNumber:
			result = append(result, ast.Number{Value: tok.Number})

		case lexer.TokenIdentifier:
			result = append(result, ast.Variable{Name: tok.Text})

		case lexer.TokenDef:
			node, consumed, err := reduceDef(tokens, parsed)
			if err != nil {
				return nil, 0, err
			}
			result = append(result, node)
			parsed += consumed

		case lexer.TokenFn:
			node, consumed, err := reduceFn(tokens, parsed)
			if err != nil {
				return nil, 0, err
			}
			result = append(result, node)
			parsed += consumed

		case lexer.TokenOpenParen:
			inner, rec, err := reduce(tokens[parsed+1:])
			if err != nil {
				return nil, 0, err
			}

			node, err := applyForm(inner, tokens[parsed+rec].From)
			if err != nil {
				return nil, 0, err
			}
			result = append(result, node)

			closeAt := parsed + 1 + rec
			if closeAt >= len(tokens) {
				return nil, 0, &MismatchedParensError{Position: tokens[len(tokens)-1].From}
			}
			if !tokens[closeAt].Is(lexer.TokenCloseParen) {
				return nil, 0, &InternalError{Message: "reduction stopped on a non-close token"}
			}
			parsed = closeAt

		case lexer.TokenCloseParen:
			return result, parsed, nil

		default:
			// inert reserved keywords and unknown characters
			return nil, 0, &UnexpectedTokenError{Found: tok}
		}

		parsed++
	}

	return result, parsed, nil
}

// reduceDef parses the tail of a def form at tokens[parsed] into the
// built-in assignment: (def x 5) becomes (__assign x 5). The right-hand side
// must reduce to exactly one expression.
func reduceDef(tokens []lexer.TokenAndSpan, parsed int) (ast.Node, int, error) {
	at := parsed + 1
	if at >= len(tokens) {
		return nil, 0, &UnexpectedEndError{Position: tokens[parsed].From}
	}

	name := tokens[at]
	if !name.Is(lexer.TokenIdentifier) {
		return nil, 0, &UnexpectedTokenError{
			Expected: lexer.TokenIdentifier,
			Found:    name,
		}
	}

	rhs, consumed, err := reduce(tokens[at+1:])
	if err != nil {
		return nil, 0, err
	}
	if len(rhs) == 0 {
		return nil, 0, &UnexpectedEndError{Position: name.From}
	}
	if len(rhs) > 1 {
		pos := name.From
		if parsed+3 < len(tokens) {
			pos = tokens[parsed+3].From
		}
		return nil, 0, &UnexpectedExpressionError{Found: rhs[1], Position: pos}
	}

	node := ast.Evaluate{
		Callee: AssignCallee,
		Args:   []ast.Node{ast.Variable{Name: name.Text}, rhs[0]},
	}
	return node, 1 + consumed, nil
}

// reduceFn parses the tail of a fn form at tokens[parsed]: a parenthesized
// parameter list of identifiers followed by one or more body statements, the
// first of which must be parenthesized.
func reduceFn(tokens []lexer.TokenAndSpan, parsed int) (ast.Node, int, error) {
	at := parsed + 1
	if at >= len(tokens) {
		return nil, 0, &UnexpectedEndError{Position: tokens[parsed].From}
	}
	if !tokens[at].Is(lexer.TokenOpenParen) {
		return nil, 0, &UnexpectedTokenError{
			Expected: lexer.TokenOpenParen,
			Found:    tokens[at],
		}
	}

	params, err := parameterList(tokens[at:])
	if err != nil {
		return nil, 0, err
	}
	consumed := 2 + len(params)

	bodyAt := parsed + consumed + 1
	if bodyAt >= len(tokens) {
		return nil, 0, &UnexpectedEndError{Position: tokens[parsed].From}
	}
	if tokens[bodyAt].Is(lexer.TokenCloseParen) {
		return nil, 0, ErrFunctionNeedsABody
	}
	if !tokens[bodyAt].Is(lexer.TokenOpenParen) {
		return nil, 0, &UnexpectedTokenError{
			Expected: lexer.TokenOpenParen,
			Found:    tokens[bodyAt],
		}
	}
	if bodyAt+1 < len(tokens) && tokens[bodyAt+1].Is(lexer.TokenCloseParen) {
		return nil, 0, ErrFunctionNeedsABody
	}

	statements, bodyParsed, err := reduce(tokens[bodyAt:])
	if err != nil {
		return nil, 0, err
	}
	if bodyParsed == 0 || len(statements) == 0 {
		return nil, 0, ErrFunctionNeedsABody
	}
	consumed += bodyParsed

	node := ast.Function{Parameters: params, Statements: statements}
	return node, consumed, nil
}

// applyForm decides what a reduced parenthesized group means: a call when the
// first node is a variable, a passthrough when it wraps exactly one already
// reduced call or function, and an error for any other shape.
func applyForm(inner []ast.Node, pos lexer.Position) (ast.Node, error) {
	if len(inner) > 0 {
		if v, ok := inner[0].(ast.Variable); ok {
			return ast.Evaluate{Callee: v.Name, Args: inner[1:]}, nil
		}
	}
	if len(inner) == 1 {
		switch n := inner[0].(type) {
		case ast.Evaluate:
			return n, nil
		case ast.Function:
			return n, nil
		}
	}

	var found ast.Node
	if len(inner) > 0 {
		found = inner[0]
	}
	return nil, &UnexpectedExpressionError{Found: found, Position: pos}
}

// parameterList collects the identifiers between the balanced paren pair
// starting at tokens[0].
func parameterList(tokens []lexer.TokenAndSpan) ([]string, error) {
	inner, err := innerTokens(tokens)
	if err != nil {
		return nil, err
	}

	params := make([]string, 0, len(inner))
	for _, tok := range inner {
		if !tok.Is(lexer.TokenIdentifier) {
			return nil, &UnexpectedTokenError{
				Expected: lexer.TokenIdentifier,
				Found:    tok,
			}
		}
		params = append(params, tok.Text)
	}
	return params, nil
}

// innerTokens returns the tokens between the balanced paren pair starting at
// tokens[0].
func innerTokens(tokens []lexer.TokenAndSpan) ([]lexer.TokenAndSpan, error) {
	depth := 0
	for i, tok := range tokens {
		switch tok.Type {
		case lexer.TokenOpenParen:
			depth++
		case lexer.TokenCloseParen:
			depth--
		}
		if depth <= 0 {
			return tokens[1:i], nil
		}
	}
	return nil, &MismatchedParensError{Position: tokens[len(tokens)-1].From}
}
