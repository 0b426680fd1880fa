package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"
	"github.com/Diego-Ivan/proyecto-sel/format"
	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	var outputFormat string
	var simplified bool

	cmd := &cobra.Command{
		Use:   "ast <equation>",
		Short: "Parse an equation and dump its syntax tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eq, err := equation.ParseString(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if simplified {
				eq = &equation.Equation{
					Left:  equation.Simplify(eq.Left),
					Right: equation.Simplify(eq.Right),
				}
			}

			switch outputFormat {
			case "text":
				fmt.Println(eq)
			case "source":
				enc := format.NewSourceEncoder(os.Stdout)
				if err := enc.Encode(eq); err != nil {
					return fmt.Errorf("encode source: %w", err)
				}
				fmt.Println()
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.Encode(eq); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, source, json)")
	cmd.Flags().BoolVarP(&simplified, "simplify", "s", false, "dump the tree after simplification")

	return cmd
}
