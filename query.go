package rules

import "time"

// Op names a query operation. It appears in MatchError and is passed to hooks.
type Op string

// Operations reported in errors and hooks.
const (
	OpSingle          Op = "single"
	OpSingleOrDefault Op = "single_or_default"
	OpFirst           Op = "first"
	OpFirstOrDefault  Op = "first_or_default"
	OpIndexOf         Op = "index_of"
	OpCall            Op = "call"
	OpCallOr          Op = "call_or"
	OpCallAll         Op = "call_all"
	OpCallAllOr       Op = "call_all_or"
)

// FallbackIndex is the index passed to OnDispatch, OnSuccess and OnFailure
// hooks when the fallback handler runs instead of a registered entry.
const FallbackIndex = -1

// Single returns the handler of the one entry that matches args.
//
// Returns an error wrapping ErrNoMatch when nothing matches and
// ErrAmbiguousMatch when more than one entry matches.
func (t *Table[A, R]) Single(args A) (Handler[A, R], error) {
	_, e, err := t.single(OpSingle, args)
	if err != nil {
		return nil, err
	}
	return e.Handler, nil
}

// SingleOrDefault returns the handler of the matching entry, or nil and false
// when nothing matches. More than one match is still an error wrapping
// ErrAmbiguousMatch.
func (t *Table[A, R]) SingleOrDefault(args A) (Handler[A, R], bool, error) {
	_, e, ok, err := t.singleOrNone(OpSingleOrDefault, args)
	if !ok {
		return nil, false, err
	}
	return e.Handler, true, nil
}

// First returns the handler of the earliest registered entry that matches
// args, ignoring any later matches. Use this when the table is an if/else-if
// chain whose predicates are allowed to overlap.
//
// Returns an error wrapping ErrNoMatch when nothing matches.
func (t *Table[A, R]) First(args A) (Handler[A, R], error) {
	i, e, ok := t.first(args)
	if !ok {
		t.callOnNoMatch(OpFirst)
		return nil, noMatch(t.name, OpFirst)
	}
	t.callOnMatch(OpFirst, i)
	return e.Handler, nil
}

// FirstOrDefault is First without the error: it returns nil and false when
// nothing matches.
func (t *Table[A, R]) FirstOrDefault(args A) (Handler[A, R], bool) {
	i, e, ok := t.first(args)
	if !ok {
		return nil, false
	}
	t.callOnMatch(OpFirstOrDefault, i)
	return e.Handler, true
}

// Call invokes the handler of the one entry that matches args and returns its
// result.
//
// Lookup failures are reported as by Single. Errors from the handler are
// returned unchanged.
func (t *Table[A, R]) Call(args A) (R, error) {
	i, e, err := t.single(OpCall, args)
	if err != nil {
		var zero R
		return zero, err
	}
	return t.invoke(OpCall, i, e.Handler, args)
}

// CallOr invokes the handler of the matching entry, or fallback when nothing
// matches. The fallback never resolves ambiguity: more than one match is an
// error wrapping ErrAmbiguousMatch and no handler runs.
//
// Example:
//
//	discount, err := discounts.CallOr(order, rules.Value[Order](0.0))
func (t *Table[A, R]) CallOr(args A, fallback Handler[A, R]) (R, error) {
	i, e, ok, err := t.singleOrNone(OpCallOr, args)
	if err != nil {
		var zero R
		return zero, err
	}
	if !ok {
		t.callOnFallback(OpCallOr)
		return t.invoke(OpCallOr, FallbackIndex, fallback, args)
	}
	return t.invoke(OpCallOr, i, e.Handler, args)
}

// CallAll invokes every matching handler once, in registration order, and
// returns their results in the same order. No match is not an error: the
// result is empty.
//
// The results are not combined; aggregating them is up to the caller. For
// action-style tables the slice holds one Void per invoked handler.
//
// If a handler fails, CallAll stops and returns the results collected so far
// together with that handler's error.
func (t *Table[A, R]) CallAll(args A) ([]R, error) {
	return t.callAll(OpCallAll, args)
}

// CallAllOr behaves like CallAll, except that when nothing matches it invokes
// fallback once and returns its single result.
func (t *Table[A, R]) CallAllOr(args A, fallback Handler[A, R]) ([]R, error) {
	results, err := t.callAll(OpCallAllOr, args)
	// callAll returns a nil slice only when nothing matched.
	if err != nil || results != nil {
		return results, err
	}

	t.callOnFallback(OpCallAllOr)
	r, err := t.invoke(OpCallAllOr, FallbackIndex, fallback, args)
	if err != nil {
		return nil, err
	}
	return []R{r}, nil
}

func (t *Table[A, R]) callAll(op Op, args A) ([]R, error) {
	// All predicates run before the first handler.
	idx := t.matchIndexes(args)
	if len(idx) == 0 {
		return nil, nil
	}

	for _, i := range idx {
		t.callOnMatch(op, i)
	}

	results := make([]R, 0, len(idx))
	for _, i := range idx {
		r, err := t.invoke(op, i, t.entries[i].Handler, args)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// invoke runs h and reports it to the dispatch, success and failure hooks.
func (t *Table[A, R]) invoke(op Op, index int, h Handler[A, R], args A) (R, error) {
	t.callOnDispatch(op, index)

	start := time.Now()
	r, err := h(args)
	duration := time.Since(start)

	if err != nil {
		t.callOnFailure(op, index, err, duration)
		return r, err
	}
	t.callOnSuccess(op, index, duration)
	return r, nil
}
