package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"
)

// SourceEncoder writes an equation back in the notation the parser
// accepts, inserting parentheses only where the tree shape requires
// them. Parsing the output yields the same tree.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(eq *equation.Equation) error {
	text, err := e.MarshalText(eq)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText(eq *equation.Equation) ([]byte, error) {
	var sb strings.Builder
	writeExpr(&sb, eq.Left, precSum)
	sb.WriteString(" = ")
	writeExpr(&sb, eq.Right, precSum)
	return []byte(sb.String()), nil
}

// Binding strength, loosest first. An operand is parenthesized when its
// own level is below the level its position requires.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func exprPrec(expr equation.Expr) int {
	switch e := expr.(type) {
	case *equation.Number:
		// A negative literal prints with a leading '-', so it binds
		// like a unary minus.
		if e.Value < 0 {
			return precUnary
		}
	case *equation.Unary:
		return precUnary
	case *equation.Binary:
		switch e.Op {
		case equation.OpAdd, equation.OpSub:
			return precSum
		case equation.OpMul, equation.OpDiv:
			return precProduct
		case equation.OpPow:
			return precPower
		}
	}
	return precAtom
}

// writeExpr renders expr for a position that requires binding strength
// min. The left operand of a left-associative operator shares the
// operator's level, the right one requires the next level up, so chains
// render flat while right-nested trees keep their parentheses. '^' is
// the mirror image, except that its base must be an atom and a unary
// minus in the exponent always needs parentheses.
func writeExpr(sb *strings.Builder, expr equation.Expr, min int) {
	if exprPrec(expr) < min {
		sb.WriteString("(")
		writeExpr(sb, expr, precSum)
		sb.WriteString(")")
		return
	}
	switch e := expr.(type) {
	case *equation.Number:
		sb.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	case *equation.Variable:
		sb.WriteString(e.Name)
	case *equation.Unary:
		sb.WriteString(e.Op.String())
		writeExpr(sb, e.X, precUnary)
	case *equation.Binary:
		switch e.Op {
		case equation.OpAdd, equation.OpSub:
			writeExpr(sb, e.Left, precSum)
			sb.WriteString(" " + e.Op.String() + " ")
			writeExpr(sb, e.Right, precProduct)
		case equation.OpMul, equation.OpDiv:
			writeExpr(sb, e.Left, precProduct)
			sb.WriteString(" " + e.Op.String() + " ")
			writeExpr(sb, e.Right, precUnary)
		case equation.OpPow:
			writeExpr(sb, e.Left, precAtom)
			sb.WriteString("^")
			writeExpr(sb, e.Right, precPower)
		}
	case *equation.Call:
		sb.WriteString("\\" + e.Name + "(")
		writeExpr(sb, e.Arg, precSum)
		sb.WriteString(")")
	case *equation.Undefined:
		// No source notation exists; the word reads back as a variable.
		sb.WriteString("undefined")
	}
}
