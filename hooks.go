package rules

import (
	"slices"
	"time"
)

// OnMatchFunc is called when a lookup settles on an entry, whether or not its
// handler is then invoked. CallAll reports every matching entry. entry is the
// name given with Named, or "".
type OnMatchFunc func(table string, op Op, index int, entry string)

// OnDispatchFunc is called just before a handler runs. index is the entry's
// registration position, or FallbackIndex for a fallback handler, whose entry
// name is always "".
type OnDispatchFunc func(table string, op Op, index int, entry string)

// OnSuccessFunc is called after a handler returns without error.
type OnSuccessFunc func(table string, op Op, index int, entry string, duration time.Duration)

// OnFailureFunc is called after a handler returns an error. The error is
// still returned to the caller unchanged.
type OnFailureFunc func(table string, op Op, index int, entry string, err error, duration time.Duration)

// OnNoMatchFunc is called when an operation that requires a match finds none.
// Operations that accept zero matches (CallOr, CallAll, SingleOrDefault, ...)
// do not call it.
type OnNoMatchFunc func(table string, op Op)

// OnAmbiguousFunc is called when an operation that requires at most one match
// finds several. indexes holds the positions of all matching entries and
// entries their names.
type OnAmbiguousFunc func(table string, op Op, indexes []int, entries []string)

// OnFallbackFunc is called when nothing matches and the caller's fallback is
// about to run.
type OnFallbackFunc func(table string, op Op)

// hooks holds all configured hook functions.
type hooks struct {
	onMatch     []OnMatchFunc
	onDispatch  []OnDispatchFunc
	onSuccess   []OnSuccessFunc
	onFailure   []OnFailureFunc
	onNoMatch   []OnNoMatchFunc
	onAmbiguous []OnAmbiguousFunc
	onFallback  []OnFallbackFunc
}

// config is the construction-time configuration of a table.
type config struct {
	name  string
	hooks hooks
}

// Option configures a table at construction.
type Option func(*config)

// WithName names the table. The name prefixes MatchError messages and is
// passed to every hook.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithOptions groups several options into one. Useful for packages that hand
// out a bundle of hooks, such as the metrics collector.
func WithOptions(opts ...Option) Option {
	return func(c *config) {
		for _, opt := range opts {
			opt(c)
		}
	}
}

// WithOnMatch adds a hook called when a lookup finds its entry.
// Multiple hooks are called in order.
func WithOnMatch(fn OnMatchFunc) Option {
	return func(c *config) {
		c.hooks.onMatch = append(c.hooks.onMatch, fn)
	}
}

// WithOnDispatch adds a hook called just before a handler runs.
// Multiple hooks are called in order.
//
// Example:
//
//	rules.WithOnDispatch(func(table string, op rules.Op, index int, entry string) {
//	    logger.Debug("rule matched", "table", table, "entry", entry)
//	})
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnSuccess adds a hook called after a handler succeeds.
// Multiple hooks are called in order.
//
// Example:
//
//	rules.WithOnSuccess(func(table string, op rules.Op, index int, entry string, d time.Duration) {
//	    metrics.Timing("rules.success", d, "table:"+table)
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.hooks.onSuccess = append(c.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after a handler fails.
// Multiple hooks are called in order.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(c *config) {
		c.hooks.onFailure = append(c.hooks.onFailure, fn)
	}
}

// WithOnNoMatch adds a hook called when a strict operation finds no match.
// Multiple hooks are called in order.
func WithOnNoMatch(fn OnNoMatchFunc) Option {
	return func(c *config) {
		c.hooks.onNoMatch = append(c.hooks.onNoMatch, fn)
	}
}

// WithOnAmbiguous adds a hook called when an operation finds more than one
// match where at most one is allowed. Multiple hooks are called in order.
//
// Example:
//
//	rules.WithOnAmbiguous(func(table string, op rules.Op, indexes []int, entries []string) {
//	    logger.Warn("overlapping rules", "table", table, "entries", entries)
//	})
func WithOnAmbiguous(fn OnAmbiguousFunc) Option {
	return func(c *config) {
		c.hooks.onAmbiguous = append(c.hooks.onAmbiguous, fn)
	}
}

// WithOnFallback adds a hook called when a fallback handler is about to run.
// Multiple hooks are called in order.
func WithOnFallback(fn OnFallbackFunc) Option {
	return func(c *config) {
		c.hooks.onFallback = append(c.hooks.onFallback, fn)
	}
}

// entryName returns the name of the entry at index, or "" for FallbackIndex.
func (t *Table[A, R]) entryName(index int) string {
	if index < 0 {
		return ""
	}
	return t.entries[index].Name
}

func (t *Table[A, R]) callOnMatch(op Op, index int) {
	for _, fn := range t.hooks.onMatch {
		fn(t.name, op, index, t.entryName(index))
	}
}

func (t *Table[A, R]) callOnDispatch(op Op, index int) {
	for _, fn := range t.hooks.onDispatch {
		fn(t.name, op, index, t.entryName(index))
	}
}

func (t *Table[A, R]) callOnSuccess(op Op, index int, duration time.Duration) {
	for _, fn := range t.hooks.onSuccess {
		fn(t.name, op, index, t.entryName(index), duration)
	}
}

func (t *Table[A, R]) callOnFailure(op Op, index int, err error, duration time.Duration) {
	for _, fn := range t.hooks.onFailure {
		fn(t.name, op, index, t.entryName(index), err, duration)
	}
}

func (t *Table[A, R]) callOnNoMatch(op Op) {
	for _, fn := range t.hooks.onNoMatch {
		fn(t.name, op)
	}
}

// callOnAmbiguous passes each hook its own copies of indexes and entries so a
// hook cannot alter the slices carried by the returned MatchError.
func (t *Table[A, R]) callOnAmbiguous(op Op, indexes []int, entries []string) {
	for _, fn := range t.hooks.onAmbiguous {
		fn(t.name, op, slices.Clone(indexes), slices.Clone(entries))
	}
}

func (t *Table[A, R]) callOnFallback(op Op) {
	for _, fn := range t.hooks.onFallback {
		fn(t.name, op)
	}
}
