package equation

import "fmt"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenNumber
	TokenIdent
	TokenFunc

	// Operators and punctuation
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLParen
	TokenRParen
	TokenEquals
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenError:  "Error",
	TokenNumber: "Number",
	TokenIdent:  "Identifier",
	TokenFunc:   "Function",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenCaret:  "^",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenEquals: "=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexeme. For TokenFunc the literal holds the function
// name without the leading backslash.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
