package equation

import (
	"bytes"
	_ "embed"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF description of the equation syntax.
// The notation is the one accepted by golang.org/x/exp/ebnf: lowercase
// names are syntactic productions, capitalized names are lexical ones.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

// Grammar parses and verifies the embedded grammar. The parser in this
// package is hand-written; the grammar is the reference description of
// what it accepts.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, "equation"); err != nil {
		return nil, err
	}
	return grammar, nil
}
