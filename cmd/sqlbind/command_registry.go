package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corvid-labs/sqlbind/args"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- statement ---
		{prefix: "sql ", handler: func(a string) error { return s.cmdSQL(a) }},
		{prefix: "sql", handler: func(_ string) error { return s.cmdShowSQL() }},

		// --- parameter values ---
		{prefix: "set ", handler: func(a string) error { return s.cmdSet(a) }, completer: completeParamArgs},
		{prefix: "setint ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setint <name> <value>", a, func(raw string) (args.Value, error) {
				i, err := strconv.ParseInt(raw, 10, 32)
				if err != nil {
					return args.Value{}, err
				}
				return args.Integer(int32(i)), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setlong ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setlong <name> <value>", a, func(raw string) (args.Value, error) {
				i, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return args.Value{}, err
				}
				return args.Long(i), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setfloat ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setfloat <name> <value>", a, func(raw string) (args.Value, error) {
				f, err := strconv.ParseFloat(raw, 32)
				if err != nil {
					return args.Value{}, err
				}
				return args.Float(float32(f)), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setdouble ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setdouble <name> <value>", a, func(raw string) (args.Value, error) {
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return args.Value{}, err
				}
				return args.Double(f), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setdec ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setdec <name> <value>", a, func(raw string) (args.Value, error) {
				// Syntax check only; the decimal binds as its string form.
				if _, err := strconv.ParseFloat(raw, 64); err != nil {
					return args.Value{}, err
				}
				return args.Decimal(raw), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setbool ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setbool <name> <true|false>", a, func(raw string) (args.Value, error) {
				b, err := strconv.ParseBool(raw)
				if err != nil {
					return args.Value{}, err
				}
				return args.Bool(b), nil
			})
		}, completer: completeParamArgs},
		{prefix: "setdate ", handler: func(a string) error {
			return s.cmdSetTyped("usage: setdate <name> <yyyy-mm-dd>", a, dateOf)
		}, completer: completeParamArgs},
		{prefix: "setnow ", handler: func(a string) error {
			return s.cmdSetMarker("usage: setnow <name>", a, args.TimestampNow())
		}, completer: completeParamArgs},
		{prefix: "setnowdb ", handler: func(a string) error {
			return s.cmdSetMarker("usage: setnowdb <name>", a, args.TimestampNowDB())
		}, completer: completeParamArgs},
		{prefix: "setnull ", handler: func(a string) error { return s.cmdSetNull(a) }, completer: completeNullArgs},
		{prefix: "args", handler: func(_ string) error { return s.cmdArgs() }},
		{prefix: "params", handler: func(_ string) error { return s.cmdArgs() }, hidden: true},
		{prefix: "clear", handler: func(_ string) error { return s.cmdClear() }},

		// --- dialect ---
		{prefix: "dialect ", handler: func(a string) error { return s.cmdDialect(a) }, completer: completeDialectArgs},
		{prefix: "types", handler: func(_ string) error { return s.cmdTypes() }},
		{prefix: "seq ", handler: func(a string) error { return s.cmdSeq(a) }},

		// --- database connectivity ---
		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdExec() }},
		{prefix: "run", handler: func(_ string) error { return s.cmdExec() }, hidden: true},
		{prefix: "query", handler: func(_ string) error { return s.cmdQuery() }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

// completeParamArgs handles completion for the set* commands: the first
// word is a placeholder name, the rest is free-form.
func completeParamArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") && !strings.HasSuffix(args, " ") {
		return contextParamName, arg
	}
	return contextNone, ""
}

// completeNullArgs handles completion for setnull: placeholder name, then
// a kind name.
func completeNullArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") && !strings.HasSuffix(args, " ") {
		return contextParamName, arg
	}
	parts := strings.Fields(arg)
	if strings.HasSuffix(args, " ") {
		if len(parts) == 1 {
			return contextKind, ""
		}
		return contextNone, ""
	}
	if len(parts) == 2 {
		return contextKind, parts[1]
	}
	return contextNone, ""
}

// completeDialectArgs handles completion for the dialect command.
func completeDialectArgs(args string) (completionContext, string) {
	return contextDialect, strings.TrimSpace(args)
}
