package lexer

import (
	"fmt"
	"strconv"
)

// ReadError reports a token that could not be formed from the characters it
// spans, such as a numeric literal with two decimal points. A ReadError does
// not corrupt the stream; the lexer stays usable for subsequent tokens.
//
// I/O failures on the underlying stream are not ReadErrors; they propagate
// wrapped with context and abort tokenization.
type ReadError struct {
	Message string
	Span
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s%v", e.Message, e.Span)
}

func newReadError(text string, span Span, cause error) *ReadError {
	if ne, ok := cause.(*strconv.NumError); ok {
		cause = ne.Err
	}
	return &ReadError{
		Message: fmt.Sprintf("unable to parse number %q: %v", text, cause),
		Span:    span,
	}
}
