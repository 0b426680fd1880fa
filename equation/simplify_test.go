package equation

import (
	"reflect"
	"testing"
)

// leftSide parses "<input> = 0" and returns the left expression.
func leftSide(t *testing.T, input string) Expr {
	t.Helper()
	eq, err := ParseString(input + " = 0")
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", input, err)
	}
	return eq.Left
}

func TestSimplifyFolding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 3", "5"},
		{"2 * 3 + 1", "7"},
		{"2^10", "1024"},
		{"4^0.5", "2"},
		{"2^3^2", "512"},
		{"6/2", "3"},
		{"-2", "-2"},
		{"--x", "x"},
		{"x^1", "x"},
		{"(x + 2)^1", "(+ x 2)"},
		{"x - 5", "(+ x -5)"},
		{"-(x + 1)", "(+ (- x) -1)"},
		{"9(y - 2)", "(+ (* 9 y) -18)"},
		{"(24x + 12y + 6)/3", "(+ (+ (/ (* 24 x) 3) (/ (* 12 y) 3)) 2)"},
		{`\sqrt(16)`, "4"},
		{`\sqrt 4`, "2"},
		{`\ln(1)`, "0"},
		{`\exp(0)`, "1"},
		{`\abs(-3)`, "3"},
		{`\sqrt x`, `(\sqrt x)`},
		{"x*x", "(* x x)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Simplify(leftSide(t, tt.input))
			if got.String() != tt.want {
				t.Errorf("Simplify() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestSimplifyUndefined(t *testing.T) {
	tests := []string{
		"1/0",
		"x/0",
		"2 + 1/0",
		"2*(1/0)",
		"-(1/0)",
		"(1/0)^2",
		`\sqrt(1/0)`,
		`\sqrt(-1)`,
		`\ln(0)`,
		`\ln(-5)`,
		"0^(-1)",
		"(-1)^0.5",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got := Simplify(leftSide(t, input))
			if _, ok := got.(*Undefined); !ok {
				t.Errorf("Simplify() = %s (%T), want *Undefined", got, got)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	tests := []string{
		"2x + 5y",
		"-12 + 3x -9(y - 5)",
		"(24x + 12y + 6)/3",
		`\sqrt x + 1`,
		"x*x",
		"x^2",
		"1/x",
		"1/0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			once := Simplify(leftSide(t, input))
			twice := Simplify(once)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("Simplify(Simplify(e)) = %s, want %s", twice, once)
			}
		})
	}
}

func TestSimplifyDoesNotMutate(t *testing.T) {
	expr := leftSide(t, "2(9)x - (3 + 4)")
	before := expr.String()
	Simplify(expr)
	if after := expr.String(); after != before {
		t.Errorf("input tree changed from %q to %q", before, after)
	}
}
