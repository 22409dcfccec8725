package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode transforms a node into a source-like text representation.
func Encode(n Node) string {
	switch n := n.(type) {
	case Number:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)

	case Variable:
		return n.Name

	case Evaluate:
		return fmt.Sprintf("(%s)", strings.Join(append([]string{n.Callee}, encodeAll(n.Args)...), " "))

	case Function:
		parts := append([]string{fmt.Sprintf("fn (%s)", strings.Join(n.Parameters, " "))}, encodeAll(n.Statements)...)
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))

	case List:
		return fmt.Sprintf("(quote (%s))", strings.Join(encodeAll(n.Items), " "))

	default:
		panic("unknown node type")
	}
}

func encodeAll(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for i := range nodes {
		out = append(out, Encode(nodes[i]))
	}
	return out
}
