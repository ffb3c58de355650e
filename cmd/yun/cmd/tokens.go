package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morphqdd/yun/internal/diag"
	"github.com/morphqdd/yun/internal/scanner"
)

// tokensCmd dumps the scanned token stream, mirroring
// sam-decook-lox/codecrafters's `tokenize` verb and
// CWBudde-go-dws/cmd/dwscript/cmd/lex.go's debugging-aid shape — a
// supplement over spec.md §6, which specifies only the `run`/REPL surface.
var tokensCmd = &cobra.Command{
	Use:   "tokens <path>",
	Short: "Print the scanned token stream for a Yun file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	toks, err := scanner.New(string(source)).Scan()
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}
	for _, tok := range toks {
		fmt.Println(tok.String())
	}
	return nil
}
