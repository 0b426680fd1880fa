package equation

import "fmt"

// Expr is the interface for all expression nodes. The variant set is
// closed: Number, Variable, Unary, Binary, Call and Undefined.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Number is a numeric literal or a folded constant.
type Number struct {
	Value float64
}

func (e *Number) exprNode() {}

// Variable is a named unknown. Multi-letter names are a single variable,
// never a product of letters.
type Variable struct {
	Name string
}

func (e *Variable) exprNode() {}

type UnaryOp int

const (
	OpNeg UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "?"
}

// Unary is a prefix operation, currently only negation.
type Unary struct {
	Op UnaryOp
	X  Expr
}

func (e *Unary) exprNode() {}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "?"
}

// Binary is an infix operation over two subtrees.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (e *Binary) exprNode() {}

// Call applies a registry function to a single argument.
type Call struct {
	Name string
	Arg  Expr
}

func (e *Call) exprNode() {}

// Undefined marks a subtree with no defined numeric value, such as a
// division by zero. It is produced only by simplification, never by the
// parser, and swallows any node that contains it.
type Undefined struct {
	Reason string
}

func (e *Undefined) exprNode() {}

// String renders the tree in prefix form: "2x + 1" is "(+ (* 2 x) 1)".
func (e *Number) String() string    { return fmt.Sprintf("%v", e.Value) }
func (e *Variable) String() string  { return e.Name }
func (e *Unary) String() string     { return fmt.Sprintf("(%s %s)", e.Op, e.X) }
func (e *Binary) String() string    { return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right) }
func (e *Call) String() string      { return fmt.Sprintf("(\\%s %s)", e.Name, e.Arg) }
func (e *Undefined) String() string { return "undefined" }

// Equation is the parsed but not yet simplified pair of sides.
type Equation struct {
	Left  Expr
	Right Expr
}

func (eq *Equation) String() string {
	return fmt.Sprintf("(= %s %s)", eq.Left, eq.Right)
}
