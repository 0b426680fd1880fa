package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Diego-Ivan/proyecto-sel/equation"
	"github.com/Diego-Ivan/proyecto-sel/format"
	"github.com/spf13/cobra"
)

func newSimplifyCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "simplify [equation]",
		Short: "Reduce an equation to its canonical linear form",
		Long: `Reduce an equation to its canonical linear form.

The equation is taken from the arguments. Without arguments, equations
are read from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "latex":
				encoder = format.NewLaTeXEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			trailingNewline := outputFormat != "text"

			if len(args) > 0 {
				return simplifyOne(strings.Join(args, " "), encoder, trailingNewline)
			}
			return simplifyLines(os.Stdin, encoder, trailingNewline)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, latex)")

	return cmd
}

func simplifyOne(input string, encoder format.Encoder, trailingNewline bool) error {
	form, err := equation.SimplifyExpression(input)
	if err != nil {
		return err
	}
	if err := encoder.Encode(form); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if trailingNewline {
		fmt.Println()
	}
	return nil
}

func simplifyLines(r io.Reader, encoder format.Encoder, trailingNewline bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		form, err := equation.SimplifyExpression(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := encoder.Encode(form); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if trailingNewline {
			fmt.Println()
		}
	}
	return scanner.Err()
}
