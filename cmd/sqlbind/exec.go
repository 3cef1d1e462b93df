package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/sqlbind/bind"
	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/rewrite"
	"github.com/corvid-labs/sqlbind/sqldb"
)

// newExecCommand creates the exec command.
func newExecCommand() *cobra.Command {
	var rawURL string
	var sqlText string
	var params []string

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Rewrite, bind, and execute one statement",
		Long: `Rewrite a named-parameter statement, bind the given values, and execute
it against the database. SELECT output is printed as a table; other
statements report the affected row count.`,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if rawURL == "" {
				rawURL = os.Getenv("DATABASE_URL")
			}
			return runExec(rawURL, sqlText, params)
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "connection URL (defaults to DATABASE_URL)")
	cmd.Flags().StringVar(&sqlText, "sql", "", "statement with :name placeholders")
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter value as name=value (repeatable)")
	return cmd
}

func runExec(rawURL, sqlText string, params []string) error {
	if rawURL == "" {
		return errors.New("no connection URL (use --url or DATABASE_URL)")
	}
	if strings.TrimSpace(sqlText) == "" {
		return errors.New("no statement (use --sql)")
	}

	values, err := parseParams(params)
	if err != nil {
		return err
	}

	stmt := rewrite.Parse(sqlText)
	argv, err := stmt.Args(values)
	if err != nil {
		return err
	}

	conn, err := connect(rawURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = conn.close() }()

	sink := &sqldb.StmtSink{}
	if err := bind.Values(sink, conn.d, argv); err != nil {
		return err
	}
	bound := dialects.Rebind(conn.d, stmt.SQL())

	if isSelect(bound) {
		result, err := conn.execQuery(bound, sink.Args())
		if err != nil {
			return err
		}
		fmt.Print(result)
		return nil
	}

	res, err := conn.db.ExecContext(context.Background(), bound, sink.Args()...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 1 {
		fmt.Println("(1 row affected)")
	} else {
		fmt.Printf("(%d rows affected)\n", n)
	}
	return nil
}

// isSelect reports whether the statement produces a row set.
func isSelect(sql string) bool {
	head := strings.ToLower(strings.TrimSpace(sql))
	return strings.HasPrefix(head, "select") || strings.HasPrefix(head, "with")
}

// newRewriteCommand creates the rewrite command.
func newRewriteCommand() *cobra.Command {
	var sqlText string
	var dialectName string

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Print the positional form of a named-parameter statement",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return runRewrite(sqlText, dialectName)
		},
	}

	cmd.Flags().StringVar(&sqlText, "sql", "", "statement with :name placeholders")
	cmd.Flags().StringVar(&dialectName, "dialect", "", "render markers for this dialect")
	return cmd
}

func runRewrite(sqlText, dialectName string) error {
	if strings.TrimSpace(sqlText) == "" {
		return errors.New("no statement (use --sql)")
	}

	stmt := rewrite.Parse(sqlText)
	out := stmt.SQL()
	if dialectName != "" {
		d, err := dialects.ForName(dialectName)
		if err != nil {
			return err
		}
		out = dialects.Rebind(d, out)
	}

	fmt.Println(out)
	if names := stmt.Names(); len(names) > 0 {
		fmt.Printf("params: %s\n", strings.Join(names, ", "))
	}
	return nil
}
