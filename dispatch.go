package rules

// Predicate decides whether the paired handler applies to args.
//
// Predicates should be deterministic for a fixed args value. They are evaluated
// afresh on every query, so a predicate reading external state sees that state
// as of the query.
type Predicate[A any] func(args A) bool

// Handler runs when its predicate matches. The type parameter A is the
// argument type (a tuple such as Args2 for multi-argument tables) and R is the
// result type. Action-style tables use Void for R.
//
// Errors returned by a handler are passed back to the caller unchanged.
type Handler[A, R any] func(args A) (R, error)

// Void is the result type of action-style tables, whose handlers produce no
// value.
type Void struct{}

// Proc adapts a function without a result into a Handler for an action-style
// table:
//
//	r.Register(isOverdue, rules.Proc(func(inv Invoice) error {
//	    return mailer.SendReminder(inv)
//	}))
func Proc[A any](fn func(args A) error) Handler[A, Void] {
	return func(args A) (Void, error) {
		return Void{}, fn(args)
	}
}

// Value returns a Handler that always produces v. Useful for rules whose
// outcome is a constant:
//
//	r.Register(isCharity, rules.Value[Customer](0.16))
func Value[A, R any](v R) Handler[A, R] {
	return func(A) (R, error) {
		return v, nil
	}
}

// Entry pairs a predicate with the handler it guards.
//
// Tables keep their own copy of every entry, so modifying an Entry value after
// registration has no effect on the table.
type Entry[A, R any] struct {
	// Name optionally identifies the entry in ambiguity errors, hooks and
	// logs. It plays no part in matching.
	Name string

	Predicate Predicate[A]
	Handler   Handler[A, R]
}

// When creates an unnamed Entry.
func When[A, R any](p Predicate[A], h Handler[A, R]) Entry[A, R] {
	return Entry[A, R]{Predicate: p, Handler: h}
}

// Named creates an Entry with a name.
func Named[A, R any](name string, p Predicate[A], h Handler[A, R]) Entry[A, R] {
	return Entry[A, R]{Name: name, Predicate: p, Handler: h}
}
