package rules

import "iter"

// scan yields the position and entry of every entry whose predicate accepts
// args, in registration order. Predicates run as the sequence is consumed, so
// a consumer that stops early skips the remaining predicates.
func (t *Table[A, R]) scan(args A) iter.Seq2[int, Entry[A, R]] {
	return func(yield func(int, Entry[A, R]) bool) {
		for i, e := range t.entries {
			if !e.Predicate(args) {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// matchIndexes returns the positions of all matching entries.
func (t *Table[A, R]) matchIndexes(args A) []int {
	var idx []int
	for i := range t.scan(args) {
		idx = append(idx, i)
	}
	return idx
}

// Where returns the handlers whose predicates accept args, in registration
// order.
//
// The sequence is lazy: predicates are evaluated while it is iterated, and
// again on every new iteration. Nothing is cached, so a predicate that reads
// external state sees that state as of the iteration. Handlers are not
// invoked.
//
//	for h := range table.Where(order) {
//	    ...
//	}
func (t *Table[A, R]) Where(args A) iter.Seq[Handler[A, R]] {
	return func(yield func(Handler[A, R]) bool) {
		for _, e := range t.scan(args) {
			if !yield(e.Handler) {
				return
			}
		}
	}
}

// CountOf returns how many entries match args. It never fails and always
// equals the number of handlers produced by Where(args).
func (t *Table[A, R]) CountOf(args A) int {
	n := 0
	for range t.scan(args) {
		n++
	}
	return n
}

// IndexOf returns the registration position (0-based) of the single entry
// that matches args.
//
// Returns an error wrapping ErrNoMatch when nothing matches and
// ErrAmbiguousMatch when more than one entry matches.
func (t *Table[A, R]) IndexOf(args A) (int, error) {
	i, _, err := t.single(OpIndexOf, args)
	return i, err
}

// first returns the earliest entry that matches args. Predicates after it are
// not evaluated.
func (t *Table[A, R]) first(args A) (int, Entry[A, R], bool) {
	next, stop := iter.Pull2(t.scan(args))
	defer stop()
	i, e, ok := next()
	return i, e, ok
}

// entryNames returns the names of the entries at idx.
func (t *Table[A, R]) entryNames(idx []int) []string {
	names := make([]string, len(idx))
	for i, n := range idx {
		names[i] = t.entries[n].Name
	}
	return names
}

// single finds the one entry matching args. Every predicate is evaluated so
// that an ambiguity report lists all conflicting entries.
func (t *Table[A, R]) single(op Op, args A) (int, Entry[A, R], error) {
	i, e, ok, err := t.singleOrNone(op, args)
	if err != nil {
		return -1, Entry[A, R]{}, err
	}
	if !ok {
		t.callOnNoMatch(op)
		return -1, Entry[A, R]{}, noMatch(t.name, op)
	}
	return i, e, nil
}

// singleOrNone is single with the zero-match case reported as found == false
// instead of an error.
func (t *Table[A, R]) singleOrNone(op Op, args A) (int, Entry[A, R], bool, error) {
	idx := t.matchIndexes(args)
	switch len(idx) {
	case 0:
		return -1, Entry[A, R]{}, false, nil
	case 1:
		t.callOnMatch(op, idx[0])
		return idx[0], t.entries[idx[0]], true, nil
	default:
		names := t.entryNames(idx)
		t.callOnAmbiguous(op, idx, names)
		return -1, Entry[A, R]{}, false, ambiguous(t.name, op, idx, names)
	}
}
