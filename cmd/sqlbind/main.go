// Command sqlbind rewrites named-parameter SQL, binds typed values, and
// runs statements against PostgreSQL, MySQL, or SQLite.
//
// Configuration (env vars):
//
//	DATABASE_URL=<url>      (optional, the repl auto-connects if set)
//	SQLBIND_DIALECT=<name>  (optional, starting dialect for the repl)
//
// A .env file in the working directory is loaded at startup.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/corvid-labs/sqlbind/internal/debug"
)

var (
	// Version information (set by build)
	Version = "dev"
	Commit  = "unknown"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := run(); err != nil {
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var debugLog bool

	rootCmd := &cobra.Command{
		Use:     "sqlbind",
		Short:   "Flavor-aware SQL parameter tool",
		Long:    "sqlbind rewrites named-parameter SQL and binds typed values across database flavors.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugLog)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL("")
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "log binding decisions to stderr")

	rootCmd.AddCommand(newReplCommand())
	rootCmd.AddCommand(newExecCommand())
	rootCmd.AddCommand(newRewriteCommand())
	return rootCmd.Execute()
}
