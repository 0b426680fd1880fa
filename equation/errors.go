package equation

import "fmt"

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Pos  Position
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unrecognized character %q", e.Pos, e.Char)
}

type ParseErrorKind int

const (
	ParseUnclosedParen ParseErrorKind = iota
	ParseMissingOperand
	ParseInvalidEquation
	ParseTrailingTokens
	ParseUnknownFunction
)

var parseErrorKindNames = map[ParseErrorKind]string{
	ParseUnclosedParen:   "unclosed parenthesis",
	ParseMissingOperand:  "missing operand",
	ParseInvalidEquation: "invalid equation structure",
	ParseTrailingTokens:  "trailing tokens",
	ParseUnknownFunction: "unknown function",
}

func (k ParseErrorKind) String() string {
	if name, ok := parseErrorKindNames[k]; ok {
		return name
	}
	return "parse error"
}

// ParseError reports a structural violation of the equation grammar.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Position
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

type NonLinearReason int

const (
	NonLinearPower NonLinearReason = iota
	NonLinearProduct
	NonLinearDivisor
	NonLinearFunction
)

var nonLinearReasonNames = map[NonLinearReason]string{
	NonLinearPower:    "power of a variable",
	NonLinearProduct:  "product of variables",
	NonLinearDivisor:  "division by a variable",
	NonLinearFunction: "function of a variable",
}

func (r NonLinearReason) String() string {
	if name, ok := nonLinearReasonNames[r]; ok {
		return name
	}
	return "non-linear term"
}

// NonLinearError reports a well-formed equation that cannot be reduced
// to linear form. Expr is the offending subtree after simplification.
type NonLinearError struct {
	Reason NonLinearReason
	Expr   Expr
}

func (e *NonLinearError) Error() string {
	if e.Expr == nil {
		return fmt.Sprintf("equation is not linear: %s", e.Reason)
	}
	return fmt.Sprintf("equation is not linear: %s: %s", e.Reason, e.Expr)
}

// UndefinedError reports an arithmetic domain violation found while
// folding constants, such as division by zero or the square root of a
// negative number.
type UndefinedError struct {
	Reason string
}

func (e *UndefinedError) Error() string {
	if e.Reason == "" {
		return "expression has no defined value"
	}
	return "expression has no defined value: " + e.Reason
}
