package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/corvid-labs/sqlbind/dialects"
)

// newReplCommand creates the repl command.
func newReplCommand() *cobra.Command {
	var dialectName string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive session for rewriting and running statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(dialectName)
		},
	}

	cmd.Flags().StringVar(&dialectName, "dialect", "", "starting dialect (postgres, mysql, sqlite, oracle, ansi)")
	return cmd
}

func runREPL(dialectName string) error {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "sqlbind> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	d, err := loadDialect(dialectName)
	if err != nil {
		return err
	}
	sess := NewSession(d, rl)

	// Set up the completer now that we have a session.
	comp := &replCompleter{sess: sess}
	_ = rl.SetConfig(&readline.Config{
		Prompt:          "sqlbind> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    comp,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Printf("[Config] Connecting via DATABASE_URL...\n")
		if err := sess.Execute("connect " + dsn); err != nil {
			_, _ = errorColor.Fprintf(os.Stderr, "  Warning: DATABASE_URL connect failed: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Printf("sqlbind REPL (%s) - type 'help' for commands, 'exit' to quit\n", sess.dialect.Name())
	fmt.Println()

	rl.SetPrompt("sqlbind> ")
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			_, _ = errorColor.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if sess.conn != nil {
		_ = sess.conn.close()
	}
	fmt.Println()
	return nil
}

// loadDialect resolves the starting dialect from the flag, the environment,
// or the postgres default. An invalid flag is an error; an invalid env var
// only warns.
func loadDialect(flagName string) (dialects.Dialect, error) {
	if name := strings.TrimSpace(strings.ToLower(flagName)); name != "" {
		d, err := dialects.ForName(name)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	if name := strings.TrimSpace(strings.ToLower(os.Getenv("SQLBIND_DIALECT"))); name != "" {
		d, err := dialects.ForName(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid SQLBIND_DIALECT=%q, defaulting to postgres\n", name)
			return dialects.NewPostgres(), nil
		}
		fmt.Printf("[Config] Dialect: %s (from SQLBIND_DIALECT)\n", d.Name())
		return d, nil
	}

	return dialects.NewPostgres(), nil
}

// prompt prints a label with an optional default and returns the user's input
// (or the default if they press enter).
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s: ", label))
	}
	defer rl.SetPrompt("sqlbind> ")
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	val := strings.TrimSpace(line)
	if val == "" {
		return defaultVal
	}
	return val
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlbind_history")
}
