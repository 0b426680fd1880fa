package equation

// SimplifyExpression is the composed entry point: it tokenizes and parses
// the input, simplifies both sides and reduces them to a LinearForm. The
// first failing stage wins; the returned error is one of *LexError,
// *ParseError, *NonLinearError or *UndefinedError, and no partial result
// ever accompanies it.
func SimplifyExpression(input string) (*LinearForm, error) {
	eq, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return Canonicalize(eq.Left, eq.Right)
}
