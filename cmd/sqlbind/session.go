package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ergochat/readline"

	"github.com/corvid-labs/sqlbind/args"
	"github.com/corvid-labs/sqlbind/bind"
	"github.com/corvid-labs/sqlbind/cache"
	"github.com/corvid-labs/sqlbind/dialects"
	"github.com/corvid-labs/sqlbind/rewrite"
	"github.com/corvid-labs/sqlbind/sqldb"
)

var errNoStatement = errors.New("no statement defined (use 'sql <text>' first)")

// Session holds the REPL state: the active dialect, the current statement,
// the named parameter values, and the database connection.
type Session struct {
	dialect  dialects.Dialect
	stmts    *cache.RewriteCache
	stmt     *rewrite.Statement // nil until 'sql <text>'
	source   string             // statement text as typed
	values   map[string]any     // name -> args.Value or args.Null
	order    []string           // value names in first-set order
	commands []commandEntry     // command registry (sorted by prefix length desc)
	conn     *dbConn            // nil when disconnected
	lastURL  string             // remembers the previous URL for reconnect
	rl       *readline.Instance
	out      io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates a session with the given starting dialect.
func NewSession(d dialects.Dialect, rl *readline.Instance) *Session {
	s := &Session{
		dialect: d,
		stmts:   cache.New(cache.DefaultSize),
		values:  make(map[string]any),
		rl:      rl,
		out:     os.Stdout,
	}
	s.initCommands()
	return s
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// paramNames returns the current statement's placeholder names, deduplicated
// and sorted (for tab completion).
func (s *Session) paramNames() []string {
	if s.stmt == nil {
		return nil
	}
	names := dedup(s.stmt.Names())
	sort.Strings(names)
	return names
}

// setValue stores a parameter value, keeping first-set order for display.
func (s *Session) setValue(name string, v any) {
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = v
}

// buildStatement resolves the current statement and parameter values into
// dialect SQL plus driver arguments.
func (s *Session) buildStatement() (string, []any, error) {
	if s.stmt == nil {
		return "", nil, errNoStatement
	}
	argv, err := s.stmt.Args(s.values)
	if err != nil {
		return "", nil, err
	}
	sink := &sqldb.StmtSink{}
	if err := bind.Values(sink, s.dialect, argv); err != nil {
		return "", nil, err
	}
	return dialects.Rebind(s.dialect, s.stmt.SQL()), sink.Args(), nil
}

// --- Command handlers ---

func (s *Session) cmdSQL(argsStr string) error {
	text := strings.TrimSpace(argsStr)
	if text == "" {
		return errors.New("usage: sql <statement with :name placeholders>")
	}
	s.stmt = s.stmts.Get(text)
	s.source = text
	s.printStatement()
	return nil
}

func (s *Session) cmdShowSQL() error {
	if s.stmt == nil {
		return errNoStatement
	}
	s.printStatement()
	return nil
}

func (s *Session) printStatement() {
	_, _ = fmt.Fprintf(s.out, "  %s;\n", dialects.Rebind(s.dialect, s.stmt.SQL()))
	if names := s.stmt.Names(); len(names) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %s\n", strings.Join(names, ", "))
	}
}

func (s *Session) cmdDialect(argsStr string) error {
	arg := strings.TrimSpace(argsStr)
	if arg == "" {
		return errors.New("usage: dialect <name|url>")
	}

	var d dialects.Dialect
	var err error
	if strings.Contains(arg, "://") || strings.HasPrefix(strings.ToLower(arg), "file:") {
		d, err = dialects.ForURL(arg)
	} else {
		d, err = dialects.ForName(arg)
	}
	if err != nil {
		return err
	}

	s.dialect = d
	_, _ = fmt.Fprintf(s.out, "  Dialect set to %s\n", d.Name())
	return nil
}

func (s *Session) cmdSet(argsStr string) error {
	name, raw, err := splitNameValue(argsStr)
	if err != nil {
		return errors.New("usage: set <name> <value>")
	}
	v, err := parseValue(raw)
	if err != nil {
		return err
	}
	s.setValue(name, v.Named(name))
	_, _ = fmt.Fprintf(s.out, "  %s = %s (%s)\n", name, describeValue(v), v.Kind)
	return nil
}

// cmdSetTyped handles the typed setter commands; convert turns the raw
// token into a value of the command's kind.
func (s *Session) cmdSetTyped(usage, argsStr string, convert func(string) (args.Value, error)) error {
	name, raw, err := splitNameValue(argsStr)
	if err != nil {
		return errors.New(usage)
	}
	v, err := convert(raw)
	if err != nil {
		return err
	}
	s.setValue(name, v.Named(name))
	_, _ = fmt.Fprintf(s.out, "  %s = %s (%s)\n", name, describeValue(v), v.Kind)
	return nil
}

// cmdSetMarker handles the value-less setters (setnow, setnowdb).
func (s *Session) cmdSetMarker(usage, argsStr string, v args.Value) error {
	name := strings.TrimSpace(argsStr)
	if name == "" || strings.ContainsAny(name, " \t") {
		return errors.New(usage)
	}
	s.setValue(name, v.Named(name))
	_, _ = fmt.Fprintf(s.out, "  %s = %s (%s)\n", name, describeValue(v), v.Kind)
	return nil
}

func (s *Session) cmdSetNull(argsStr string) error {
	parts := strings.Fields(argsStr)
	if len(parts) != 2 {
		return errors.New("usage: setnull <name> <kind>")
	}
	k, err := parseKind(parts[1])
	if err != nil {
		return err
	}
	s.setValue(parts[0], args.NullOf(k))
	_, _ = fmt.Fprintf(s.out, "  %s = NULL (%s)\n", parts[0], k)
	return nil
}

func (s *Session) cmdArgs() error {
	if len(s.order) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No parameters set")
		return nil
	}
	rows := make([][]string, 0, len(s.order))
	for _, name := range s.order {
		rows = append(rows, []string{name, describeKind(s.values[name]), describeValue(s.values[name])})
	}
	_, _ = fmt.Fprint(s.out, renderTable([]string{"name", "kind", "value"}, rows))
	return nil
}

func (s *Session) cmdClear() error {
	s.values = make(map[string]any)
	s.order = nil
	_, _ = fmt.Fprintln(s.out, "  Parameters cleared")
	return nil
}

func (s *Session) cmdConnect(argsStr string) error {
	rawURL := strings.TrimSpace(argsStr)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sqldb.SanitizeDSN(s.conn.url))
	}

	if rawURL == "" {
		if s.lastURL == "" {
			return errors.New("usage: connect <url> (postgres://..., mysql://..., sqlite://...)")
		}
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n)", sqldb.SanitizeDSN(s.lastURL)), "y")
		if lower := strings.ToLower(choice); lower != "y" && lower != "yes" {
			_, _ = fmt.Fprintln(s.out, "  Connect cancelled")
			return nil
		}
		rawURL = s.lastURL
	}

	conn, err := connect(rawURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastURL = rawURL
	s.dialect = conn.d
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sqldb.SanitizeDSN(rawURL), conn.d.Name())
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	masked := sqldb.SanitizeDSN(s.conn.url)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", masked)
	return nil
}

// cmdExec executes the current statement as DML and reports the affected
// row count.
func (s *Session) cmdExec() error {
	sqlText, argv, err := s.prepareRun()
	if err != nil {
		return err
	}

	res, err := s.conn.db.ExecContext(context.Background(), sqlText, argv...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 1 {
		_, _ = fmt.Fprintln(s.out, "  (1 row affected)")
	} else {
		_, _ = fmt.Fprintf(s.out, "  (%d rows affected)\n", n)
	}
	return nil
}

// cmdQuery executes the current statement as a SELECT and prints the rows.
func (s *Session) cmdQuery() error {
	sqlText, argv, err := s.prepareRun()
	if err != nil {
		return err
	}

	result, err := s.conn.execQuery(sqlText, argv)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

// prepareRun gates on the connection, warns on a dialect override, and
// builds the statement.
func (s *Session) prepareRun() (string, []any, error) {
	if s.conn == nil {
		return "", nil, errors.New("not connected (use 'connect <url>' first)")
	}
	if s.conn.d.Name() != s.dialect.Name() {
		_, _ = fmt.Fprintf(s.out, "  Warning: connected to %s but dialect is set to %s\n", s.conn.d.Name(), s.dialect.Name())
	}
	sqlText, argv, err := s.buildStatement()
	if err != nil {
		return "", nil, err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", sqlText)
	return sqlText, argv, nil
}

func (s *Session) cmdSeq(argsStr string) error {
	parts := strings.Fields(argsStr)
	if len(parts) != 2 {
		return errors.New("usage: seq next|create|drop <name>")
	}
	if !s.dialect.SupportsSequences() {
		return fmt.Errorf("dialect %s has no sequences", s.dialect.Name())
	}

	action, name := strings.ToLower(parts[0]), parts[1]
	switch action {
	case "next":
		q := s.dialect.SequenceNextValQuery(name)
		if s.conn == nil {
			_, _ = fmt.Fprintf(s.out, "  %s;\n", q)
			return nil
		}
		var v int64
		if err := s.conn.db.QueryRowContext(context.Background(), q).Scan(&v); err != nil {
			return fmt.Errorf("seq next: %w", err)
		}
		_, _ = fmt.Fprintf(s.out, "  %d\n", v)
		return nil
	case "create":
		return s.runSequenceDDL(s.dialect.CreateSequence(name, dialects.SequenceOptions{}))
	case "drop":
		return s.runSequenceDDL(s.dialect.DropSequence(name))
	}
	return fmt.Errorf("unknown sequence action %q (choose: next, create, drop)", action)
}

// runSequenceDDL prints the DDL and executes it when connected.
func (s *Session) runSequenceDDL(ddl string) error {
	_, _ = fmt.Fprintf(s.out, "  %s;\n", ddl)
	if s.conn == nil {
		return nil
	}
	if _, err := s.conn.db.ExecContext(context.Background(), ddl); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	_, _ = fmt.Fprintln(s.out, "  OK")
	return nil
}

func (s *Session) cmdTypes() error {
	d := s.dialect
	rows := [][]string{
		{"bool", d.TypeBool()},
		{"integer", d.TypeInteger()},
		{"long", d.TypeLong()},
		{"float", d.TypeFloat()},
		{"double", d.TypeDouble()},
		{"decimal(19,4)", d.TypeDecimal(19, 4)},
		{"varchar(255)", d.TypeVarchar(255)},
		{"char(8)", d.TypeChar(8)},
		{"clob", d.TypeClob()},
		{"blob", d.TypeBlob()},
		{"timestamp", d.TypeTimestamp()},
	}
	_, _ = fmt.Fprintf(s.out, "  Types for %s:\n", d.Name())
	_, _ = fmt.Fprint(s.out, renderTable([]string{"kind", "sql type"}, rows))
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Statement:
    sql <text>                Set the statement (:name placeholders)
    sql                       Redisplay the current statement

  Parameters:
    set <name> <value>        Set a value ('quoted string', 42, 3.5, true)
    setint <name> <n>         Set a 32-bit integer
    setlong <name> <n>        Set a 64-bit integer
    setfloat <name> <x>       Set a 32-bit float
    setdouble <name> <x>      Set a 64-bit float
    setdec <name> <d>         Set an exact decimal (bound as its string form)
    setbool <name> <b>        Set a boolean
    setdate <name> <yyyy-mm-dd>  Set a date
    setnow <name>             Set the client clock at bind time
    setnowdb <name>           Set the database clock (expands into SQL text)
    setnull <name> <kind>     Set a typed NULL
    args                      Show the set parameters
    clear                     Drop all set parameters

  Execution:
    exec                      Run the statement as DML (alias: run)
    query                     Run the statement as a SELECT, print rows

  Dialect:
    dialect <name|url>        Switch dialect (postgres, mysql, sqlite, oracle, ansi)
    types                     Show the dialect's SQL type names
    seq next|create|drop <n>  Sequence operations (printed; executed when connected)

  Connection:
    connect <url>             Connect (postgres://..., mysql://..., sqlite://...)
    connect                   Reconnect to the previous URL
    disconnect                Close the database connection`)
}

// --- Value display ---

// describeValue renders a parameter value for the args table.
func describeValue(v any) string {
	switch val := v.(type) {
	case args.Null:
		return "NULL"
	case args.Value:
		switch val.Kind {
		case args.KindBool:
			return strconv.FormatBool(val.BoolVal())
		case args.KindInteger:
			return strconv.FormatInt(int64(val.Int32Val()), 10)
		case args.KindLong:
			return strconv.FormatInt(val.Int64Val(), 10)
		case args.KindFloat:
			return strconv.FormatFloat(float64(val.Float32Val()), 'g', -1, 32)
		case args.KindDouble:
			return strconv.FormatFloat(val.Float64Val(), 'g', -1, 64)
		case args.KindDecimal, args.KindString, args.KindClobString:
			return val.StringVal()
		case args.KindBlobBytes:
			return fmt.Sprintf("<%d bytes>", len(val.BytesVal()))
		case args.KindClobStream, args.KindBlobStream:
			return "<stream>"
		case args.KindTimestamp:
			return val.TimeVal().UTC().Format("2006-01-02 15:04:05.000")
		case args.KindDate:
			return val.TimeVal().Format("2006-01-02")
		case args.KindTimestampNow:
			return "<client clock>"
		case args.KindTimestampNowDB:
			return "<database clock>"
		}
	}
	return fmt.Sprintf("%v", v)
}

// describeKind renders a parameter's declared kind for the args table.
func describeKind(v any) string {
	switch val := v.(type) {
	case args.Null:
		return val.Kind.String()
	case args.Value:
		return val.Kind.String()
	}
	return "?"
}

// dateOf parses a yyyy-mm-dd token into a date argument.
func dateOf(raw string) (args.Value, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return args.Value{}, fmt.Errorf("cannot parse date: %s (want yyyy-mm-dd)", raw)
	}
	return args.Date(t), nil
}
