package lexer

import (
	"fmt"
)

// Position is a zero-based location within the input stream.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d char %d", p.Line, p.Column)
}

// Span is the inclusive range of positions a token was read from. Single
// character tokens have From equal to To.
type Span struct {
	From Position
	To   Position
}

func (s Span) String() string {
	if s.From == s.To {
		return fmt.Sprintf("[%v]", s.From)
	}
	return fmt.Sprintf("[%v -> %v]", s.From, s.To)
}
