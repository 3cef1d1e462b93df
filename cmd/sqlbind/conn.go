package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/sqldb"
)

const maxRows = 1000

// dbConn is an open database handle plus the dialect its URL resolved to.
type dbConn struct {
	db  *sql.DB
	url string
	d   dialects.Dialect
}

func connect(rawURL string) (*dbConn, error) {
	db, d, err := sqldb.Open(rawURL)
	if err != nil {
		return nil, err
	}

	if d.Name() == "sqlite" {
		// A memory database lives and dies with its connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &dbConn{db: db, url: rawURL, d: d}, nil
}

func (c *dbConn) close() error {
	return c.db.Close()
}

func (c *dbConn) execQuery(sqlStr string, params []any) (string, error) {
	rows, err := c.db.Query(sqlStr, params...)
	if err != nil {
		return "", fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return renderRows(rows)
}

func renderRows(rows *sql.Rows) (string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("columns: %w", err)
	}

	// One scan buffer, copied out per row. Everything scans as a nullable
	// string; drivers stringify the rest.
	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}

	var data [][]string
	truncated := false
	for rows.Next() {
		if len(data) == maxRows {
			truncated = true
			break
		}
		if err := rows.Scan(dest...); err != nil {
			return "", fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(cols))
		for i, c := range cells {
			row[i] = "NULL"
			if c.Valid {
				row[i] = c.String
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("rows: %w", err)
	}

	out := renderTable(cols, data)
	if truncated {
		out += fmt.Sprintf("(truncated at %d rows)\n", maxRows)
	}
	return out, nil
}

// renderTable lays rows out psql-style: ruled, pipe-separated, left-aligned,
// with a trailing row count.
func renderTable(cols []string, data [][]string) string {
	if len(cols) == 0 {
		return "(0 rows)\n"
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, row := range data {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	rule(&b, widths)
	writeRow(&b, widths, cols)
	rule(&b, widths)
	for _, row := range data {
		writeRow(&b, widths, row)
	}
	rule(&b, widths)

	if n := len(data); n == 1 {
		b.WriteString("(1 row)\n")
	} else {
		fmt.Fprintf(&b, "(%d rows)\n", n)
	}
	return b.String()
}

func writeRow(b *strings.Builder, widths []int, cells []string) {
	b.WriteByte('|')
	for i, cell := range cells {
		fmt.Fprintf(b, " %-*s |", widths[i], cell)
	}
	b.WriteByte('\n')
}

func rule(b *strings.Builder, widths []int) {
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
}
