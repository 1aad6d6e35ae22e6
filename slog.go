package rules

import (
	"log/slog"
	"time"
)

// WithLogger logs table activity to l. Matches, dispatches, successes,
// fallbacks and missing matches are logged at debug level; ambiguous matches
// and handler failures at warn level. Errors are still returned to the caller.
//
// Records carry the table name, the operation and the entry position. Entries
// created with Named add an "entry" attribute.
//
// Tables log nothing unless this option is given.
func WithLogger(l *slog.Logger) Option {
	return WithOptions(
		WithOnMatch(func(table string, op Op, index int, entry string) {
			l.Debug("rules: match", entryAttrs(table, op, index, entry)...)
		}),
		WithOnDispatch(func(table string, op Op, index int, entry string) {
			l.Debug("rules: dispatch", entryAttrs(table, op, index, entry)...)
		}),
		WithOnSuccess(func(table string, op Op, index int, entry string, d time.Duration) {
			l.Debug("rules: handler succeeded",
				append(entryAttrs(table, op, index, entry), slog.Duration("duration", d))...,
			)
		}),
		WithOnFailure(func(table string, op Op, index int, entry string, err error, d time.Duration) {
			l.Warn("rules: handler failed",
				append(entryAttrs(table, op, index, entry),
					slog.Duration("duration", d),
					slog.Any("error", err),
				)...,
			)
		}),
		WithOnNoMatch(func(table string, op Op) {
			l.Debug("rules: no match",
				slog.String("table", table),
				slog.String("op", string(op)),
			)
		}),
		WithOnAmbiguous(func(table string, op Op, indexes []int, entries []string) {
			l.Warn("rules: ambiguous match",
				slog.String("table", table),
				slog.String("op", string(op)),
				slog.Any("indexes", indexes),
				slog.Any("entries", entries),
			)
		}),
		WithOnFallback(func(table string, op Op) {
			l.Debug("rules: fallback",
				slog.String("table", table),
				slog.String("op", string(op)),
			)
		}),
	)
}

func entryAttrs(table string, op Op, index int, entry string) []any {
	attrs := []any{
		slog.String("table", table),
		slog.String("op", string(op)),
		slog.Int("index", index),
	}
	if entry != "" {
		attrs = append(attrs, slog.String("entry", entry))
	}
	return attrs
}
