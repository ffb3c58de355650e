package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/morphqdd/yun/internal/ast"
	"github.com/morphqdd/yun/internal/diag"
	"github.com/morphqdd/yun/internal/interp"
	"github.com/morphqdd/yun/internal/modresolve"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/resolver"
	"github.com/morphqdd/yun/internal/scanner"
)

// runRoot implements `yun [path]`: file mode if a path was given, REPL mode
// otherwise, per spec.md §6.
func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runREPL()
}

// runFile reads, compiles, and executes path end-to-end, exiting 65 on any
// diagnostic — spec.md §6: "write the error to standard output and exit
// with code 65."
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog, err := compile(string(source), filepath.Dir(path))
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}

	depths, err := resolver.Resolve(prog)
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}

	ip := interp.New(depths, os.Stdout)
	if err := ip.Interpret(prog); err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(65)
	}
	return nil
}

// compile scans, parses, and module-resolves source, the shared front half
// of both file and REPL execution.
func compile(source, baseDir string) (*ast.Program, error) {
	toks, err := scanner.New(source).Scan()
	if err != nil {
		return nil, err
	}
	prog, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err
	}
	return modresolve.Resolve(prog, baseDir)
}
