package equation

import (
	"math"
	"sort"
)

// Function is a single-argument numeric function invoked as \name.
// Eval is only called for arguments accepted by Domain; arguments outside
// the domain make the call undefined rather than an evaluation error.
type Function struct {
	Name   string
	Domain func(x float64) bool
	Eval   func(x float64) float64
}

var functions = map[string]Function{
	"sqrt": {Name: "sqrt", Domain: func(x float64) bool { return x >= 0 }, Eval: math.Sqrt},
	"ln":   {Name: "ln", Domain: func(x float64) bool { return x > 0 }, Eval: math.Log},
	"exp":  {Name: "exp", Domain: func(x float64) bool { return true }, Eval: math.Exp},
	"abs":  {Name: "abs", Domain: func(x float64) bool { return true }, Eval: math.Abs},
}

// LookupFunction resolves a function name. Lookup is case-sensitive:
// \sqrt is known, \Sqrt is not.
func LookupFunction(name string) (Function, bool) {
	fn, ok := functions[name]
	return fn, ok
}

// FunctionNames lists the registered function names in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
