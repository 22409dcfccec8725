package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

// ErrFunctionNeedsABody reports a function literal whose body reduced to zero
// statements.
var ErrFunctionNeedsABody = errors.New("function needs a body")

// MismatchedParensError reports input that ended while a parenthesized form
// was still open, or a close paren with no matching open.
type MismatchedParensError struct {
	Position lexer.Position
}

func (e *MismatchedParensError) Error() string {
	return fmt.Sprintf("mismatched parens at %v", e.Position)
}

// UnexpectedTokenError reports a token found where a specific kind of token
// was required. Expected is TokenInvalid when no particular token was
// expected, only not this one.
type UnexpectedTokenError struct {
	Expected lexer.TokenType
	Found    lexer.TokenAndSpan
}

func (e *UnexpectedTokenError) Error() string {
	if e.Expected == lexer.TokenInvalid {
		return fmt.Sprintf("unexpected token %v", e.Found)
	}
	return fmt.Sprintf("expected %v, found %v", e.Expected, e.Found)
}

// UnexpectedExpressionError reports a reduced expression found where a
// different shape was required. Found is nil when the offending group reduced
// to nothing.
type UnexpectedExpressionError struct {
	Found    ast.Node
	Position lexer.Position
}

func (e *UnexpectedExpressionError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("unexpected empty expression at %v", e.Position)
	}
	return fmt.Sprintf("unexpected expression %v at %v", e.Found, e.Position)
}

// UnexpectedEndError reports a form that ended before a required part was
// seen.
type UnexpectedEndError struct {
	Position lexer.Position
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("unexpected end of expression at %v", e.Position)
}

// TokenizeError wraps a tokenizer failure encountered while pulling tokens.
// It is fatal to the parse.
type TokenizeError struct {
	Err error
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize: %v", e.Err)
}

func (e *TokenizeError) Unwrap() error {
	return e.Err
}

// InternalError reports a state the parser should not be able to reach.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal parser error: %s", e.Message)
}
