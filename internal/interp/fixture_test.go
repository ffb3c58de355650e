package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/morphqdd/yun/internal/errs"
	"github.com/morphqdd/yun/internal/interp"
	"github.com/morphqdd/yun/internal/modresolve"
	"github.com/morphqdd/yun/internal/parser"
	"github.com/morphqdd/yun/internal/resolver"
	"github.com/morphqdd/yun/internal/scanner"
)

// runFile drives a .yun fixture through the full
// scanner -> parser -> module resolver -> static resolver -> interpreter
// pipeline, the same stages cmd/yun's file mode (runFile) runs.
func runFile(t *testing.T, path string) (string, error) {
	t.Helper()

	source, err := os.ReadFile(path)
	require.NoError(t, err)

	toks, err := scanner.New(string(source)).Scan()
	require.NoError(t, err)

	prog, err := parser.New(toks).Parse()
	require.NoError(t, err)

	prog, err = modresolve.Resolve(prog, filepath.Dir(path))
	require.NoError(t, err)

	depths, err := resolver.Resolve(prog)
	require.NoError(t, err)

	var out bytes.Buffer
	ip := interp.New(depths, &out)
	return out.String(), ip.Interpret(prog)
}

// TestFixturesProduceStableOutput snapshot-tests every `.yun` program under
// testdata/ that is expected to run to completion, grounded on
// CWBudde-go-dws/internal/interp/fixture_test.go's table-of-fixtures/
// go-snaps shape, simplified to this language's much smaller surface: one
// flat directory instead of 64 categories, and a plain list of fixture names
// (the failing fixture gets its own test below) instead of a
// skip/requiresLibs/requiresCodegen matrix.
func TestFixturesProduceStableOutput(t *testing.T) {
	fixtures := []string{
		"closures",
		"fibonacci",
		"inheritance",
		"initializer_return",
		"for_desugaring",
		"lists",
	}

	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			out, err := runFile(t, filepath.Join("..", "..", "testdata", name+".yun"))
			require.NoError(t, err)
			snaps.MatchSnapshot(t, out)
		})
	}
}

// TestFixturesReportExpectedRuntimeErrors covers the `.yun` programs that
// are expected to fail, asserting both the error taxonomy code and the
// exact message text (spec.md §8 scenario 5's lowercase-quoted type-name
// format), rather than a snapshot.
func TestFixturesReportExpectedRuntimeErrors(t *testing.T) {
	_, err := runFile(t, filepath.Join("..", "..", "testdata", "arithmetic_type_error.yun"))
	require.Error(t, err)
	yunErr, ok := err.(*errs.Error)
	require.True(t, ok)
	require.Equal(t, errs.CodeCannotAddTypes, yunErr.Code)
	require.Contains(t, yunErr.Message, "Cannot add types 'number' and 'string'")
}

// TestFixtureModuleUseSplicesOnlyExportedDecls exercises the module
// resolver against testdata/modules, where main.yun `use`s lib.yun and only
// lib.yun's exported `square` function should become visible.
func TestFixtureModuleUseSplicesOnlyExportedDecls(t *testing.T) {
	out, err := runFile(t, filepath.Join("..", "..", "testdata", "modules", "main.yun"))
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}
