package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSplicesUsedModuleRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.yun"), []byte(`
		export fun square(n) { return n * n; }
	`), 0o644))

	prog, err := compile(`use "lib"; print square(4);`, dir)
	require.NoError(t, err)
	// the `use` statement is replaced by lib.yun's one exported declaration,
	// leaving it alongside the original print statement.
	assert.Len(t, prog.Stmts, 2)
}

func TestCompilePropagatesParseErrors(t *testing.T) {
	_, err := compile(`let = ;`, ".")
	require.Error(t, err)
}

func TestReplLineAppendsMissingSemicolon(t *testing.T) {
	assert.Equal(t, "1 + 2;", replLine("1 + 2"))
	assert.Equal(t, "1 + 2;", replLine("1 + 2;"))
	assert.Equal(t, `{ print 1; }`, replLine(`{ print 1; }`))
	assert.Equal(t, "", replLine("   "))
}
