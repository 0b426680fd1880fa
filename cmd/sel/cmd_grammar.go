package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/Diego-Ivan/proyecto-sel/equation"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the equation syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				if _, err := equation.Grammar(); err != nil {
					printErrors(err)
					return err
				}
				fmt.Println("grammar ok")
				return nil
			}
			_, err := os.Stdout.Write(equation.GrammarSource())
			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "parse and verify the grammar instead of printing it")

	return cmd
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
