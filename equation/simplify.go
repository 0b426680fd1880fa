package equation

import (
	"fmt"
	"math"
)

// Simplify rewrites an expression to a fixed point of the local rules:
// constant folding, function application, distribution of products and
// quotients over sums, and negation normalization. It is total and never
// mutates its input; numeric problems surface as an Undefined node, not
// as an error. Simplifying an already simplified tree returns it
// unchanged.
func Simplify(e Expr) Expr {
	for {
		next, changed := rewrite(e)
		e = next
		if !changed {
			return e
		}
	}
}

// rewrite runs one bottom-up pass and reports whether anything changed.
// Each rule either folds nodes away or pushes negations and sums outward,
// so repeated passes terminate.
func rewrite(e Expr) (Expr, bool) {
	switch e := e.(type) {
	case *Unary:
		x, changed := rewrite(e.X)
		node := e
		if changed {
			node = &Unary{Op: e.Op, X: x}
		}
		if out, ok := applyUnary(node); ok {
			return out, true
		}
		return node, changed
	case *Binary:
		left, lc := rewrite(e.Left)
		right, rc := rewrite(e.Right)
		node := e
		if lc || rc {
			node = &Binary{Op: e.Op, Left: left, Right: right}
		}
		if out, ok := applyBinary(node); ok {
			return out, true
		}
		return node, lc || rc
	case *Call:
		arg, changed := rewrite(e.Arg)
		node := e
		if changed {
			node = &Call{Name: e.Name, Arg: arg}
		}
		if out, ok := applyCall(node); ok {
			return out, true
		}
		return node, changed
	default:
		return e, false
	}
}

func applyUnary(e *Unary) (Expr, bool) {
	switch x := e.X.(type) {
	case *Undefined:
		return x, true
	case *Number:
		return &Number{Value: -x.Value}, true
	case *Unary:
		return x.X, true
	case *Binary:
		if x.Op == OpAdd {
			return &Binary{
				Op:    OpAdd,
				Left:  &Unary{Op: OpNeg, X: x.Left},
				Right: &Unary{Op: OpNeg, X: x.Right},
			}, true
		}
	}
	return nil, false
}

func applyBinary(e *Binary) (Expr, bool) {
	if u, ok := e.Left.(*Undefined); ok {
		return u, true
	}
	if u, ok := e.Right.(*Undefined); ok {
		return u, true
	}

	left, leftNum := e.Left.(*Number)
	right, rightNum := e.Right.(*Number)

	switch e.Op {
	case OpSub:
		return &Binary{
			Op:    OpAdd,
			Left:  e.Left,
			Right: &Unary{Op: OpNeg, X: e.Right},
		}, true

	case OpAdd:
		if leftNum && rightNum {
			return fold(left.Value+right.Value, "arithmetic overflow"), true
		}

	case OpMul:
		if leftNum && rightNum {
			return fold(left.Value*right.Value, "arithmetic overflow"), true
		}
		if sum, ok := asSum(e.Left); ok {
			return distribute(OpMul, sum, e.Right, true), true
		}
		if sum, ok := asSum(e.Right); ok {
			return distribute(OpMul, sum, e.Left, false), true
		}

	case OpDiv:
		if rightNum && right.Value == 0 {
			return &Undefined{Reason: "division by zero"}, true
		}
		if leftNum && rightNum {
			return fold(left.Value/right.Value, "arithmetic overflow"), true
		}
		if sum, ok := asSum(e.Left); ok {
			return distribute(OpDiv, sum, e.Right, true), true
		}

	case OpPow:
		if leftNum && rightNum {
			return fold(math.Pow(left.Value, right.Value), fmt.Sprintf("%v^%v has no real value", left.Value, right.Value)), true
		}
		if rightNum && right.Value == 1 {
			return e.Left, true
		}
	}
	return nil, false
}

func applyCall(e *Call) (Expr, bool) {
	if u, ok := e.Arg.(*Undefined); ok {
		return u, true
	}
	arg, ok := e.Arg.(*Number)
	if !ok {
		return nil, false
	}
	fn, ok := LookupFunction(e.Name)
	if !ok {
		return nil, false
	}
	reason := fmt.Sprintf("%s of %v", e.Name, arg.Value)
	if !fn.Domain(arg.Value) {
		return &Undefined{Reason: reason}, true
	}
	return fold(fn.Eval(arg.Value), reason), true
}

// asSum treats a node as a two-operand sum if distribution applies to it.
func asSum(e Expr) (*Binary, bool) {
	b, ok := e.(*Binary)
	if ok && b.Op == OpAdd {
		return b, true
	}
	return nil, false
}

// distribute expands op over the sum: (a+b)*c becomes a*c + b*c, and
// (a+b)/c becomes a/c + b/c. sumOnLeft keeps the operand order of the
// original node, which matters for division.
func distribute(op BinaryOp, sum *Binary, other Expr, sumOnLeft bool) Expr {
	if sumOnLeft {
		return &Binary{
			Op:    OpAdd,
			Left:  &Binary{Op: op, Left: sum.Left, Right: other},
			Right: &Binary{Op: op, Left: sum.Right, Right: other},
		}
	}
	return &Binary{
		Op:    OpAdd,
		Left:  &Binary{Op: op, Left: other, Right: sum.Left},
		Right: &Binary{Op: op, Left: other, Right: sum.Right},
	}
}

// fold wraps a computed value, demoting NaN and infinities to Undefined
// so they cannot masquerade as coefficients.
func fold(v float64, reason string) Expr {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &Undefined{Reason: reason}
	}
	return &Number{Value: v}
}
