package equation

import (
	"errors"
	"testing"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x = 1", "(= x 1)"},
		{"2x + 5y = 0", "(= (+ (* 2 x) (* 5 y)) 0)"},
		{"2(9)x = 18x", "(= (* (* 2 9) x) (* 18 x))"},
		{"2^3^2 = x", "(= (^ 2 (^ 3 2)) x)"},
		{"-3^2 = x", "(= (- (^ 3 2)) x)"},
		{"-x - -y = 0", "(= (- (- x) (- y)) 0)"},
		{"6/2x = y", "(= (* (/ 6 2) x) y)"},
		{"(1 + 6)(x + 9)(y - 2) = 0", "(= (* (* (+ 1 6) (+ x 9)) (- y 2)) 0)"},
		{"2 * -3 = x", "(= (* 2 (- 3)) x)"},
		{"2^(-3) = x", "(= (^ 2 (- 3)) x)"},
		{"xy = 2", "(= xy 2)"},
		{"2xy = 4", "(= (* 2 xy) 4)"},
		{"x(y) = 1", "(= (* x y) 1)"},
		{"12.25 = x", "(= 12.25 x)"},
		{`\sqrt(x + 1) = 2`, `(= (\sqrt (+ x 1)) 2)`},
		{`\sqrt x^2 = 1`, `(= (^ (\sqrt x) 2) 1)`},
		{`\ln x = 1`, `(= (\ln x) 1)`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			eq, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if got := eq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Multiplication binds tighter than addition.
		{"1 + 2 * 3 = 0", "(= (+ 1 (* 2 3)) 0)"},
		// Exponentiation binds tighter than unary minus and
		// multiplication.
		{"-2^2 = 0", "(= (- (^ 2 2)) 0)"},
		{"2 * 3^2 = 0", "(= (* 2 (^ 3 2)) 0)"},
		// Implicit multiplication shares the explicit tier.
		{"6/2(1 + 2) = 0", "(= (* (/ 6 2) (+ 1 2)) 0)"},
		// Function application binds tighter than exponentiation.
		{`\sqrt 4 ^ 2 = 0`, `(= (^ (\sqrt 4) 2) 0)`},
		// Addition is left-associative.
		{"1 - 2 + 3 = 0", "(= (+ (- 1 2) 3) 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			eq, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if got := eq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ParseErrorKind
		pos   string
	}{
		{"(x + 1 = 2", ParseUnclosedParen, "1:1"},
		{"x = (2", ParseUnclosedParen, "1:5"},
		{"2 + = 4", ParseMissingOperand, "1:5"},
		{"= 5", ParseMissingOperand, "1:1"},
		{"2^ = 1", ParseMissingOperand, "1:4"},
		{"2^-3 = x", ParseMissingOperand, "1:3"},
		{"() = 1", ParseMissingOperand, "1:2"},
		{"x = 5 +", ParseMissingOperand, "1:8"},
		{"x + 2", ParseInvalidEquation, "1:6"},
		{"1 = 2 = 3", ParseInvalidEquation, "1:7"},
		{"x y = 2", ParseInvalidEquation, "1:3"},
		{"x = 2 2", ParseTrailingTokens, "1:7"},
		{"x = 5)", ParseTrailingTokens, "1:6"},
		{`\foo(1) = 2`, ParseUnknownFunction, "1:1"},
		{`\Sqrt(1) = 2`, ParseUnknownFunction, "1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("ParseString() error = nil, want *ParseError")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error = %T (%v), want *ParseError", err, err)
			}
			if parseErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", parseErr.Kind, tt.kind)
			}
			if got := parseErr.Pos.String(); got != tt.pos {
				t.Errorf("Pos = %s, want %s", got, tt.pos)
			}
		})
	}
}

func TestParseEquationSides(t *testing.T) {
	eq, err := ParseString("2x = 10")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if _, ok := eq.Left.(*Binary); !ok {
		t.Errorf("Left = %T, want *Binary", eq.Left)
	}
	num, ok := eq.Right.(*Number)
	if !ok {
		t.Fatalf("Right = %T, want *Number", eq.Right)
	}
	if num.Value != 10 {
		t.Errorf("Right.Value = %v, want 10", num.Value)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := ParseString("")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T (%v), want *ParseError", err, err)
	}
	if parseErr.Kind != ParseMissingOperand {
		t.Errorf("Kind = %v, want %v", parseErr.Kind, ParseMissingOperand)
	}
}
