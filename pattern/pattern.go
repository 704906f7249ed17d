package pattern

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern is a recurrence notation split into its kind letter and its
// numeric arguments, e.g. "W62,2" has kind 'W' and arguments [62 2].
type Pattern struct {
	Kind rune
	Args []int
}

// Parse splits a textual recurrence notation into a Pattern. The kind is a
// single case-insensitive letter followed by one or more comma-separated
// integers. Whitespace around the tokens is ignored.
func Parse(expr string) (Pattern, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Pattern{}, patternParseError(expr, "empty pattern")
	}

	kind, size := utf8.DecodeRuneInString(trimmed)
	if !unicode.IsLetter(kind) {
		return Pattern{}, patternParseError(expr, "missing strategy letter")
	}

	fields := strings.Split(trimmed[size:], ",")
	args := make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return Pattern{}, patternParseError(expr, "missing argument")
		}
		arg, err := strconv.Atoi(field)
		if err != nil {
			return Pattern{}, patternParseError(expr, "invalid argument "+strconv.Quote(field))
		}
		args = append(args, arg)
	}

	return Pattern{Kind: unicode.ToUpper(kind), Args: args}, nil
}

// String returns the canonical notation of the pattern.
func (p Pattern) String() string {
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = strconv.Itoa(arg)
	}
	return string(p.Kind) + strings.Join(args, ",")
}
