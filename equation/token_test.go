package equation

import (
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenError, "Error"},
		{TokenNumber, "Number"},
		{TokenIdent, "Identifier"},
		{TokenFunc, "Function"},
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenCaret, "^"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenEquals, "="},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Offset: 12, Line: 2, Column: 5}
	if got := pos.String(); got != "2:5" {
		t.Errorf("String() = %q, want %q", got, "2:5")
	}
}
