package rules

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoMatch is returned when an operation requires a matching entry and
	// none of the predicates accept the arguments.
	ErrNoMatch = errors.New("no matching entry")

	// ErrAmbiguousMatch is returned when an operation requires at most one
	// matching entry and more than one predicate accepts the arguments. It
	// means the rule set is not mutually exclusive for that input.
	ErrAmbiguousMatch = errors.New("ambiguous match")
)

// MatchError reports a failed lookup. It wraps ErrNoMatch or ErrAmbiguousMatch,
// so callers can test for either with errors.Is and use errors.As when they
// need the positions of the conflicting entries.
type MatchError struct {
	// Table is the table name set with WithName.
	Table string

	// Op is the operation that failed.
	Op Op

	// Indexes holds the registration positions of the matching entries.
	// Empty for ErrNoMatch.
	Indexes []int

	// Entries holds the names of the matching entries, parallel to Indexes.
	// Unnamed entries are "".
	Entries []string

	err error
}

func (e *MatchError) Error() string {
	var b strings.Builder
	b.WriteString("rules: ")
	if e.Table != "" {
		b.WriteString(e.Table)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Op))
	b.WriteString(": ")
	b.WriteString(e.err.Error())
	if len(e.Indexes) > 0 {
		b.WriteString(" [entries ")
		for i, idx := range e.Indexes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(idx))
			if i < len(e.Entries) && e.Entries[i] != "" {
				b.WriteByte(' ')
				b.WriteString(strconv.Quote(e.Entries[i]))
			}
		}
		b.WriteString("]")
	}
	return b.String()
}

func (e *MatchError) Unwrap() error { return e.err }

func noMatch(table string, op Op) *MatchError {
	return &MatchError{Table: table, Op: op, err: ErrNoMatch}
}

func ambiguous(table string, op Op, indexes []int, entries []string) *MatchError {
	return &MatchError{Table: table, Op: op, Indexes: indexes, Entries: entries, err: ErrAmbiguousMatch}
}
