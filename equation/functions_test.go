package equation

import (
	"reflect"
	"testing"
)

func TestLookupFunction(t *testing.T) {
	for _, name := range []string{"sqrt", "ln", "exp", "abs"} {
		fn, ok := LookupFunction(name)
		if !ok {
			t.Errorf("LookupFunction(%q) not found", name)
			continue
		}
		if fn.Name != name {
			t.Errorf("LookupFunction(%q).Name = %q", name, fn.Name)
		}
	}
	if _, ok := LookupFunction("Sqrt"); ok {
		t.Error("LookupFunction(\"Sqrt\") found, lookup must be case-sensitive")
	}
	if _, ok := LookupFunction("sin"); ok {
		t.Error("LookupFunction(\"sin\") found, want unknown")
	}
}

func TestFunctionDomains(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"sqrt", 4, true},
		{"sqrt", 0, true},
		{"sqrt", -1, false},
		{"ln", 1, true},
		{"ln", 0, false},
		{"ln", -5, false},
		{"exp", -100, true},
		{"abs", -2, true},
	}

	for _, tt := range tests {
		fn, ok := LookupFunction(tt.name)
		if !ok {
			t.Fatalf("LookupFunction(%q) not found", tt.name)
		}
		if got := fn.Domain(tt.x); got != tt.want {
			t.Errorf("%s.Domain(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestFunctionNames(t *testing.T) {
	want := []string{"abs", "exp", "ln", "sqrt"}
	if got := FunctionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FunctionNames() = %v, want %v", got, want)
	}
}
