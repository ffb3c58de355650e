package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/morphqdd/yun/internal/diag"
	"github.com/morphqdd/yun/internal/interp"
	"github.com/morphqdd/yun/internal/resolver"
)

// runREPL implements the `@> ` prompt loop spec.md §6 requires: read a
// line, evaluate it, print non-Void results, print errors without ending
// the loop. Grounded on original_source/src/interpreter/mod.rs::run_shell's
// prompt/read-line structure; that original never actually evaluates the
// line (it just echoes it back), so the evaluate-and-print body here is
// this implementation's own reading of spec.md §6's fuller contract.
//
// A single REPL session shares one Interpreter (and so one global
// environment and one resolver depth table) across lines, the way a real
// interactive session accumulates `let` bindings and function/class
// declarations turn over turn.
func runREPL() error {
	ip := interp.New(resolver.Depths{}, os.Stdout)
	reader := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(diag.Prompt())
		if !reader.Scan() {
			return nil
		}
		line := replLine(reader.Text())
		if line == "" {
			continue
		}

		prog, err := compile(line, ".")
		if err != nil {
			fmt.Println(diag.Format(err))
			continue
		}

		depths, err := resolver.Resolve(prog)
		if err != nil {
			fmt.Println(diag.Format(err))
			continue
		}
		for id, d := range depths {
			ip.Depths[id] = d
		}

		if err := ip.InterpretREPL(prog); err != nil {
			fmt.Println(diag.Format(err))
		}
	}
}

// replLine trims the input and, for the common case of a bare expression
// typed without its trailing `;`, appends one so the parser's exprStmt
// production accepts it — `1 + 2` works the same as `1 + 2;` at the prompt.
func replLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
		line += ";"
	}
	return line
}
