package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morphqdd/yun/internal/diag"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/scanner"
)

// astCmd dumps the parsed (pre-module-resolution) AST's Lisp-ish
// String() form, mirroring sam-decook-lox/codecrafters's `parse` verb —
// a supplement over spec.md §6 for debugging the parser in isolation.
var astCmd = &cobra.Command{
	Use:   "ast <path>",
	Short: "Print the parsed AST for a Yun file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	toks, err := scanner.New(string(source)).Scan()
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}

	prog, err := parser.New(toks).Parse()
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}
	fmt.Println(prog.String())
	return nil
}
