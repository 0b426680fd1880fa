package equation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// LinearForm is the canonical result of reducing an equation: the map
// holds one non-zero coefficient per variable and Constant is the scalar
// right-hand side, read as Terms·vars = Constant.
type LinearForm struct {
	Terms    map[string]float64
	Constant float64
}

// Variables lists the variable names in sorted order.
func (f *LinearForm) Variables() []string {
	names := make([]string, 0, len(f.Terms))
	for name := range f.Terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the form as an equation, variables sorted by name:
// "-x + 14y = 33". A form without variables renders as "0 = c".
func (f *LinearForm) String() string {
	var b strings.Builder
	names := f.Variables()
	for i, name := range names {
		coef := f.Terms[name]
		if i == 0 {
			switch {
			case coef == -1:
				b.WriteString("-")
			case coef != 1:
				fmt.Fprintf(&b, "%v", coef)
			}
		} else {
			if coef < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
			if abs := math.Abs(coef); abs != 1 {
				fmt.Fprintf(&b, "%v", abs)
			}
		}
		b.WriteString(name)
	}
	if len(names) == 0 {
		b.WriteString("0")
	}
	fmt.Fprintf(&b, " = %v", f.Constant)
	return b.String()
}

// term is one additive contribution during collection. An empty variable
// name marks a constant contribution.
type term struct {
	variable    string
	coefficient float64
}

// Canonicalize reduces a parsed equation to its linear form. Both sides
// are simplified, the equation is rewritten as a single side against
// zero, and the additive leaves are collected into per-variable
// coefficients. Subtrees that cannot contribute to a linear term produce
// a *NonLinearError; an arithmetic domain violation produces an
// *UndefinedError.
func Canonicalize(left, right Expr) (*LinearForm, error) {
	if left == nil || right == nil {
		panic("equation: Canonicalize called with a nil side")
	}
	left = Simplify(left)
	right = Simplify(right)
	if u, ok := left.(*Undefined); ok {
		return nil, &UndefinedError{Reason: u.Reason}
	}
	if u, ok := right.(*Undefined); ok {
		return nil, &UndefinedError{Reason: u.Reason}
	}

	// Work on left - right = 0. When the left side carries no variable
	// the sides swap first, so "2^10 = x" and "x = 2^10" both come out
	// as x = 1024.
	if !containsVariable(left) {
		left, right = right, left
	}
	combined := Simplify(&Binary{
		Op:    OpAdd,
		Left:  left,
		Right: &Unary{Op: OpNeg, X: right},
	})
	if u, ok := combined.(*Undefined); ok {
		return nil, &UndefinedError{Reason: u.Reason}
	}

	var terms []term
	if err := collectSum(combined, &terms); err != nil {
		return nil, err
	}

	form := &LinearForm{Terms: make(map[string]float64)}
	var constant float64
	for _, t := range terms {
		if t.variable == "" {
			constant += t.coefficient
		} else {
			form.Terms[t.variable] += t.coefficient
		}
	}
	for name, coef := range form.Terms {
		if coef == 0 {
			delete(form.Terms, name)
		}
	}
	// The collected constant sits on the variable side; negating moves
	// it across the equals sign. Normalize so -0 never leaks out.
	form.Constant = -constant
	if form.Constant == 0 {
		form.Constant = 0
	}
	return form, nil
}

func containsVariable(e Expr) bool {
	switch e := e.(type) {
	case *Variable:
		return true
	case *Unary:
		return containsVariable(e.X)
	case *Binary:
		return containsVariable(e.Left) || containsVariable(e.Right)
	case *Call:
		return containsVariable(e.Arg)
	}
	return false
}

func collectSum(e Expr, out *[]term) error {
	if b, ok := e.(*Binary); ok && b.Op == OpAdd {
		if err := collectSum(b.Left, out); err != nil {
			return err
		}
		return collectSum(b.Right, out)
	}
	t, err := collectLeaf(e)
	if err != nil {
		return err
	}
	*out = append(*out, t)
	return nil
}

// collectLeaf reduces one additive leaf, at most a product chain over
// numbers, negations and a single variable, to a linear term.
func collectLeaf(leaf Expr) (term, error) {
	t := term{coefficient: 1}
	if err := collectFactor(leaf, leaf, &t); err != nil {
		return term{}, err
	}
	return t, nil
}

func collectFactor(e Expr, leaf Expr, t *term) error {
	switch e := e.(type) {
	case *Number:
		t.coefficient *= e.Value
	case *Variable:
		if t.variable != "" {
			return &NonLinearError{Reason: NonLinearProduct, Expr: leaf}
		}
		t.variable = e.Name
	case *Unary:
		t.coefficient = -t.coefficient
		return collectFactor(e.X, leaf, t)
	case *Binary:
		switch e.Op {
		case OpMul:
			if err := collectFactor(e.Left, leaf, t); err != nil {
				return err
			}
			return collectFactor(e.Right, leaf, t)
		case OpPow:
			return &NonLinearError{Reason: NonLinearPower, Expr: e}
		case OpDiv:
			// Dividing the coefficient keeps 24x/3 exactly 8; a
			// reciprocal product would round through 1/3. Zero
			// divisors became Undefined during simplification.
			if num, ok := e.Right.(*Number); ok {
				if err := collectFactor(e.Left, leaf, t); err != nil {
					return err
				}
				t.coefficient /= num.Value
				return nil
			}
			return &NonLinearError{Reason: NonLinearDivisor, Expr: e}
		default:
			// Simplification distributes every sum out of a product
			// chain and removes every Sub, so reaching one here is a
			// rewriter defect, not bad input.
			panic(fmt.Sprintf("equation: unsimplified %q node in canonicalizer", e.Op.String()))
		}
	case *Call:
		return &NonLinearError{Reason: NonLinearFunction, Expr: e}
	case *Undefined:
		return &UndefinedError{Reason: e.Reason}
	}
	return nil
}
