package main

import (
	"fmt"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <equation>",
		Short: "Tokenize an equation and print the token stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := equation.Tokenize(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Printf("%s\t%s\t%q\n", tok.Span.Start, tok.Kind, tok.Literal)
			}
			return nil
		},
	}
}
