package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Node
		Out string
	}{
		{Number{Value: 1}, "1"},
		{Number{Value: 3.14159}, "3.14159"},
		{Variable{Name: "whodat"}, "whodat"},
		{
			Evaluate{Callee: "something", Args: []Node{}},
			"(something)",
		},
		{
			Evaluate{Callee: "+", Args: []Node{Number{Value: 1}, Number{Value: 2}}},
			"(+ 1 2)",
		},
		{
			Evaluate{Callee: "__assign", Args: []Node{Variable{Name: "x"}, Number{Value: 5}}},
			"(__assign x 5)",
		},
		{
			Function{
				Parameters: []string{"a", "b"},
				Statements: []Node{Evaluate{Callee: "a", Args: []Node{}}},
			},
			"(fn (a b) (a))",
		},
		{
			List{Items: []Node{Number{Value: 1}, Number{Value: 2}}},
			"(quote (1 2))",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Encode(testCases[i].In), "case %d", i)
		assert.Equal(t, testCases[i].Out, testCases[i].In.String(), "case %d", i)
	}
}
