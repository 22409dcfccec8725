package ast

// Node is an expression in the syntax tree. The set of implementations is
// closed; callers are expected to switch over all of them. Nodes are
// self-contained, each exclusively owns its children.
type Node interface {
	node()

	String() string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Variable references a named value.
type Variable struct {
	Name string
}

// Evaluate applies a named operation to a sequence of argument expressions.
// It covers both user calls and the built-in assignment form, whose callee is
// "__assign". Callee is never empty.
type Evaluate struct {
	Callee string
	Args   []Node
}

// Function is an anonymous function literal with a parameter list and a
// sequence of body statements.
type Function struct {
	Parameters []string
	Statements []Node
}

// List is a literal list, reserved for quote support.
type List struct {
	Items []Node
}

func (Number) node()   {}
func (Variable) node() {}
func (Evaluate) node() {}
func (Function) node() {}
func (List) node()     {}

func (n Number) String() string   { return Encode(n) }
func (n Variable) String() string { return Encode(n) }
func (n Evaluate) String() string { return Encode(n) }
func (n Function) String() string { return Encode(n) }
func (n List) String() string     { return Encode(n) }
