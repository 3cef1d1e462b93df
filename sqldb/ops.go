package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/bind"
	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/replay"
)

var (
	_ replay.InsertContext = (*InsertOp)(nil)
	_ replay.UpdateContext = (*UpdateOp)(nil)
	_ replay.SelectContext = (*SelectOp)(nil)
)

// field is one recorded column of a pending statement.
type field struct {
	col   string
	val   any  // args.Value or args.Null; nil when nowDB
	nowDB bool // column takes the database clock expression
}

// recorder accumulates replayed setter calls as fields. The operations
// embed it to satisfy the replay setter surface.
type recorder struct {
	fields []field
}

func (r *recorder) add(col string, v any) error {
	r.fields = append(r.fields, field{col: col, val: v})
	return nil
}

func (r *recorder) SetBool(col string, v bool) error           { return r.add(col, args.Bool(v).Named(col)) }
func (r *recorder) SetInteger(col string, v int32) error       { return r.add(col, args.Integer(v).Named(col)) }
func (r *recorder) SetLong(col string, v int64) error          { return r.add(col, args.Long(v).Named(col)) }
func (r *recorder) SetFloat(col string, v float32) error       { return r.add(col, args.Float(v).Named(col)) }
func (r *recorder) SetDouble(col string, v float64) error      { return r.add(col, args.Double(v).Named(col)) }
func (r *recorder) SetDecimal(col string, v string) error      { return r.add(col, args.Decimal(v).Named(col)) }
func (r *recorder) SetString(col string, v string) error       { return r.add(col, args.String(v).Named(col)) }
func (r *recorder) SetClobString(col string, v string) error   { return r.add(col, args.ClobString(v).Named(col)) }
func (r *recorder) SetBlobBytes(col string, v []byte) error    { return r.add(col, args.BlobBytes(v).Named(col)) }
func (r *recorder) SetTimestamp(col string, v time.Time) error { return r.add(col, args.Timestamp(v).Named(col)) }
func (r *recorder) SetDate(col string, v time.Time) error      { return r.add(col, args.Date(v).Named(col)) }
func (r *recorder) SetTimestampNow(col string) error           { return r.add(col, args.TimestampNow().Named(col)) }
func (r *recorder) SetNull(col string, kind args.Kind) error   { return r.add(col, args.NullOf(kind)) }

// SetTimestampNowDB records a column whose value is the database clock.
// It consumes no bind marker; the dialect's CurrentTimestamp expression is
// spliced into the SQL text instead.
func (r *recorder) SetTimestampNowDB(col string) error {
	r.fields = append(r.fields, field{col: col, nowDB: true})
	return nil
}

// --- insert ---

// keyPlan is the mechanism ExecReturningKey uses for the generated key.
type keyPlan int

const (
	keyReturning keyPlan = iota
	keySequence
	keyLastInsert
)

// InsertOp builds and executes one INSERT from replayed arguments. An op
// is single use: it accumulates columns while the buffer replays onto it
// and is spent after Exec.
type InsertOp struct {
	recorder
	dialect dialects.Dialect
	table   string
	keyCol  string
	seqName string
}

// NewInsert creates an insert operation for table.
func NewInsert(d dialects.Dialect, table string) *InsertOp {
	return &InsertOp{dialect: d, table: table}
}

// GeneratedKey declares the generated key column and, for dialects without
// INSERT ... RETURNING, the sequence producing the key. Pass sequence ""
// for auto-increment engines. ExecReturningKey consults both.
func (o *InsertOp) GeneratedKey(col, sequence string) *InsertOp {
	o.keyCol = col
	o.seqName = sequence
	return o
}

func (o *InsertOp) SetClobStream(col string, r io.Reader) error { return o.add(col, args.ClobStream(r).Named(col)) }
func (o *InsertOp) SetBlobStream(col string, r io.Reader) error { return o.add(col, args.BlobStream(r).Named(col)) }

// Exec replays buf onto the operation and runs the INSERT, returning the
// number of affected rows.
func (o *InsertOp) Exec(ctx context.Context, db *sql.DB, buf *replay.Buffer) (int64, error) {
	if err := replay.ReplayInsert(buf, o); err != nil {
		return 0, err
	}
	sqlText, argv, err := o.build(false)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, sqlText, argv...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", o.table, err)
	}
	return res.RowsAffected()
}

// ExecReturningKey runs the INSERT and returns the generated key through
// the dialect's best mechanism: INSERT ... RETURNING where supported, a
// sequence pre-read where one is configured, and the driver's LastInsertId
// otherwise.
func (o *InsertOp) ExecReturningKey(ctx context.Context, db *sql.DB, buf *replay.Buffer) (int64, error) {
	if o.keyCol == "" {
		return 0, fmt.Errorf("insert %s: no generated key column configured", o.table)
	}
	if err := replay.ReplayInsert(buf, o); err != nil {
		return 0, err
	}

	switch o.plan() {
	case keyReturning:
		sqlText, argv, err := o.build(true)
		if err != nil {
			return 0, err
		}
		var id int64
		if err := db.QueryRowContext(ctx, sqlText, argv...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert %s: %w", o.table, err)
		}
		return id, nil

	case keySequence:
		// Fetch the key first, then bind it as a plain column.
		var id int64
		if err := db.QueryRowContext(ctx, o.dialect.SequenceNextValQuery(o.seqName)).Scan(&id); err != nil {
			return 0, fmt.Errorf("read sequence %s: %w", o.seqName, err)
		}
		o.applyKey(id)
		sqlText, argv, err := o.build(false)
		if err != nil {
			return 0, err
		}
		if _, err := db.ExecContext(ctx, sqlText, argv...); err != nil {
			return 0, fmt.Errorf("insert %s: %w", o.table, err)
		}
		return id, nil

	default:
		sqlText, argv, err := o.build(false)
		if err != nil {
			return 0, err
		}
		res, err := db.ExecContext(ctx, sqlText, argv...)
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", o.table, err)
		}
		return res.LastInsertId()
	}
}

func (o *InsertOp) plan() keyPlan {
	switch {
	case o.dialect.SupportsInsertReturning():
		return keyReturning
	case o.seqName != "":
		return keySequence
	default:
		return keyLastInsert
	}
}

// applyKey appends the pre-read sequence value as an ordinary column.
func (o *InsertOp) applyKey(id int64) {
	o.fields = append(o.fields, field{col: o.keyCol, val: args.Long(id).Named(o.keyCol)})
}

// build renders the INSERT text and binds the pending arguments.
func (o *InsertOp) build(returning bool) (string, []any, error) {
	if len(o.fields) == 0 {
		return "", nil, fmt.Errorf("insert %s: no columns bound", o.table)
	}
	d := o.dialect
	cols := make([]string, 0, len(o.fields))
	exprs := make([]string, 0, len(o.fields))
	var pending []any
	for _, f := range o.fields {
		cols = append(cols, d.QuoteIdent(f.col))
		if f.nowDB {
			exprs = append(exprs, d.CurrentTimestamp())
			continue
		}
		pending = append(pending, f.val)
		exprs = append(exprs, d.BindMarker(len(pending)))
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(d.QuoteIdent(o.table))
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(exprs, ", "))
	b.WriteString(")")
	if returning {
		b.WriteString(" RETURNING ")
		b.WriteString(d.QuoteIdent(o.keyCol))
	}

	sink := &StmtSink{}
	if err := bind.Values(sink, d, pending); err != nil {
		return "", nil, err
	}
	return b.String(), sink.Args(), nil
}

// --- update ---

// UpdateOp builds and executes one UPDATE from replayed arguments. Columns
// named in keyCols become the WHERE clause; everything else becomes SET.
// Like InsertOp, an op is single use.
type UpdateOp struct {
	recorder
	dialect dialects.Dialect
	table   string
	keyCols map[string]bool
}

// NewUpdate creates an update operation keyed on keyCols. Declaring no key
// columns produces an unconditional UPDATE over the whole table.
func NewUpdate(d dialects.Dialect, table string, keyCols ...string) *UpdateOp {
	keys := make(map[string]bool, len(keyCols))
	for _, c := range keyCols {
		keys[c] = true
	}
	return &UpdateOp{dialect: d, table: table, keyCols: keys}
}

func (o *UpdateOp) SetClobStream(col string, r io.Reader) error { return o.add(col, args.ClobStream(r).Named(col)) }
func (o *UpdateOp) SetBlobStream(col string, r io.Reader) error { return o.add(col, args.BlobStream(r).Named(col)) }

// Exec replays buf onto the operation and runs the UPDATE, returning the
// number of affected rows.
func (o *UpdateOp) Exec(ctx context.Context, db *sql.DB, buf *replay.Buffer) (int64, error) {
	if err := replay.ReplayUpdate(buf, o); err != nil {
		return 0, err
	}
	sqlText, argv, err := o.build()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, sqlText, argv...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", o.table, err)
	}
	return res.RowsAffected()
}

// build renders the UPDATE text: SET fragments first, then WHERE, with
// markers numbered in that order regardless of replay order.
func (o *UpdateOp) build() (string, []any, error) {
	d := o.dialect
	var sets, wheres []string
	var pending []any

	for _, f := range o.fields {
		if o.keyCols[f.col] {
			continue
		}
		if f.nowDB {
			sets = append(sets, d.QuoteIdent(f.col)+" = "+d.CurrentTimestamp())
			continue
		}
		pending = append(pending, f.val)
		sets = append(sets, d.QuoteIdent(f.col)+" = "+d.BindMarker(len(pending)))
	}
	for _, f := range o.fields {
		if !o.keyCols[f.col] {
			continue
		}
		if f.nowDB {
			return "", nil, fmt.Errorf("update %s: key column %q cannot take a database clock marker", o.table, f.col)
		}
		if _, isNull := f.val.(args.Null); isNull {
			wheres = append(wheres, d.QuoteIdent(f.col)+" IS NULL")
			continue
		}
		pending = append(pending, f.val)
		wheres = append(wheres, d.QuoteIdent(f.col)+" = "+d.BindMarker(len(pending)))
	}

	if len(sets) == 0 {
		return "", nil, fmt.Errorf("update %s: no assignments", o.table)
	}
	if len(wheres) == 0 && len(o.keyCols) > 0 {
		return "", nil, fmt.Errorf("update %s: no key values bound", o.table)
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(d.QuoteIdent(o.table))
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	if len(wheres) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(wheres, " AND "))
	}

	sink := &StmtSink{}
	if err := bind.Values(sink, d, pending); err != nil {
		return "", nil, err
	}
	return b.String(), sink.Args(), nil
}

// --- select ---

// SelectOp builds and executes one SELECT whose WHERE clause is an AND
// conjunction of the replayed arguments. It exposes no stream setters;
// ReplaySelect rejects stream arguments before any setter runs.
type SelectOp struct {
	recorder
	dialect    dialects.Dialect
	table      string
	projection []string
}

// NewSelect creates a select operation projecting the named columns, or
// every column when none are given.
func NewSelect(d dialects.Dialect, table string, projection ...string) *SelectOp {
	return &SelectOp{dialect: d, table: table, projection: projection}
}

// Query replays buf onto the operation and runs the SELECT. The caller
// owns the returned rows.
func (o *SelectOp) Query(ctx context.Context, db *sql.DB, buf *replay.Buffer) (*sql.Rows, error) {
	if err := replay.ReplaySelect(buf, o); err != nil {
		return nil, err
	}
	sqlText, argv, err := o.build()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, sqlText, argv...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", o.table, err)
	}
	return rows, nil
}

func (o *SelectOp) build() (string, []any, error) {
	d := o.dialect
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(o.projection) == 0 {
		b.WriteString("*")
	} else {
		quoted := make([]string, len(o.projection))
		for i, c := range o.projection {
			quoted[i] = d.QuoteIdent(c)
		}
		b.WriteString(strings.Join(quoted, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(d.QuoteIdent(o.table))

	var wheres []string
	var pending []any
	for _, f := range o.fields {
		if f.nowDB {
			wheres = append(wheres, d.QuoteIdent(f.col)+" = "+d.CurrentTimestamp())
			continue
		}
		if _, isNull := f.val.(args.Null); isNull {
			wheres = append(wheres, d.QuoteIdent(f.col)+" IS NULL")
			continue
		}
		pending = append(pending, f.val)
		wheres = append(wheres, d.QuoteIdent(f.col)+" = "+d.BindMarker(len(pending)))
	}
	if len(wheres) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(wheres, " AND "))
	}

	sink := &StmtSink{}
	if err := bind.Values(sink, d, pending); err != nil {
		return "", nil, err
	}
	return b.String(), sink.Args(), nil
}
