// Package equation reduces textual equations to canonical linear form.
//
// # Overview
//
// The package takes a single equation such as "2x + 5y = -12 + 3x -9(y - 5)"
// and reduces it to a coefficient per variable plus one scalar constant,
// read as Σ(coefficient·variable) = constant. Input that is well formed
// but not linear (powers of variables, products of variables, a function
// applied to an unknown) is rejected with a structured error instead of
// an approximation.
//
// # Pipeline
//
//	text ──▶ Tokenize ──▶ Parse ──▶ Simplify ──▶ Canonicalize ──▶ LinearForm
//	           │            │           │              │
//	           ▼            ▼           ▼              ▼
//	       *LexError   *ParseError   Undefined   *NonLinearError
//	                                 sentinel    *UndefinedError
//
// Each stage only depends on the previous one. Simplify is total: numeric
// problems such as division by zero become an Undefined node that the
// canonicalizer reports as *UndefinedError.
//
// # Syntax
//
// Numbers use at most one decimal point. A run of letters is one variable
// name: xy is a single unknown, never x·y. Multiplication may be implicit
// by juxtaposition (2x, 2(x+1), (a+1)(b+2)), ^ is right-associative and
// binds tighter than unary minus, and \name(arg) applies a registered
// function such as \sqrt or \ln. Exactly one = must appear.
//
// # Example
//
//	form, err := equation.SimplifyExpression("2x + 5y = -12 + 3x -9(y - 5)")
//	if err != nil {
//	    // *LexError, *ParseError, *NonLinearError or *UndefinedError
//	}
//	fmt.Println(form) // -x + 14y = 33
//
// # Thread Safety
//
// Every entry point is a pure function over its input; the function
// registry is read-only package data. Calls are safe from concurrent
// goroutines without locking.
package equation
