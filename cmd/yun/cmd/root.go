package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd is the `yun` entry point. Grounded on
// CWBudde-go-dws/cmd/dwscript/cmd/root.go's minimal rootCmd + Execute()
// shape; generalized with no persistent --verbose flag since nothing in
// this package's subcommands consults one, per spec.md §6.
var rootCmd = &cobra.Command{
	Use:   "yun [path]",
	Short: "Yun interpreter",
	Long: `yun runs Yun scripts.

With a path, it reads and executes that file, exiting 0 on success or 65 on
any scanner, parser, module, or runtime error. Without a path, it starts a
REPL that reads one line at a time, evaluates it, and prints non-void
results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

// Execute runs the command tree; main calls this and reports its error.
func Execute() error {
	return rootCmd.Execute()
}
