package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvid-labs/sqlbind/args"
)

// parseValue converts a literal token to a tagged argument value. Strings
// must be single-quoted ('' escapes a quote); bare integers bind as 64-bit,
// decimals as double.
func parseValue(token string) (args.Value, error) {
	lower := strings.ToLower(token)
	if lower == "true" {
		return args.Bool(true), nil
	}
	if lower == "false" {
		return args.Bool(false), nil
	}
	if lower == "null" {
		return args.Value{}, errors.New("null needs a declared kind (setnull <name> <kind>)")
	}
	if strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") && len(token) >= 2 {
		inner := token[1 : len(token)-1]
		return args.String(strings.ReplaceAll(inner, "''", "'")), nil
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return args.Long(i), nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return args.Double(f), nil
	}
	return args.Value{}, fmt.Errorf("cannot parse value: %s (quote strings like 'abc')", token)
}

// kindsByName resolves null kind declarations. Stream kinds are absent; a
// null stream has no meaning.
var kindsByName = map[string]args.Kind{
	"bool":      args.KindBool,
	"int":       args.KindInteger,
	"integer":   args.KindInteger,
	"long":      args.KindLong,
	"float":     args.KindFloat,
	"double":    args.KindDouble,
	"decimal":   args.KindDecimal,
	"string":    args.KindString,
	"clob":      args.KindClobString,
	"blob":      args.KindBlobBytes,
	"timestamp": args.KindTimestamp,
	"date":      args.KindDate,
}

func parseKind(name string) (args.Kind, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return args.KindUnknown, fmt.Errorf("unknown kind %q (choose: %s)", name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

// splitNameValue splits "name value..." at the first whitespace, returning
// the value part verbatim.
func splitNameValue(argsStr string) (name, value string, err error) {
	trimmed := strings.TrimSpace(argsStr)
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return "", "", errors.New("missing value")
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx:]), nil
}

// parseParams converts repeated name=value flags into a value map for
// statement argument resolution.
func parseParams(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid --param %q (want name=value)", pair)
		}
		name := pair[:idx]
		v, err := parseValue(pair[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		values[name] = v.Named(name)
	}
	return values, nil
}
