package rules

import "github.com/tidwall/match"

// All returns a Predicate that matches when every predicate matches.
// Evaluation stops at the first predicate that does not match. With no
// predicates, All always matches.
func All[A any](ps ...Predicate[A]) Predicate[A] {
	return func(args A) bool {
		for _, p := range ps {
			if !p(args) {
				return false
			}
		}
		return true
	}
}

// Any returns a Predicate that matches when at least one predicate matches.
// Evaluation stops at the first match. With no predicates, Any never matches.
func Any[A any](ps ...Predicate[A]) Predicate[A] {
	return func(args A) bool {
		for _, p := range ps {
			if p(args) {
				return true
			}
		}
		return false
	}
}

// Not returns a Predicate that matches when p does not.
func Not[A any](p Predicate[A]) Predicate[A] {
	return func(args A) bool {
		return !p(args)
	}
}

// Always returns a Predicate that matches everything. Registered last, it
// turns First into an if/else-if chain with a final else.
func Always[A any]() Predicate[A] {
	return func(A) bool { return true }
}

// Never returns a Predicate that matches nothing.
func Never[A any]() Predicate[A] {
	return func(A) bool { return false }
}

// HasFields returns a Predicate over a View that matches when all paths exist.
// Paths use gjson syntax ("detail.userId", "items.#").
func HasFields(paths ...string) Predicate[View] {
	return func(v View) bool {
		for _, p := range paths {
			if !v.HasField(p) {
				return false
			}
		}
		return true
	}
}

// FieldEquals returns a Predicate over a View that matches when the path
// exists, holds a string, and equals value.
func FieldEquals(path, value string) Predicate[View] {
	return func(v View) bool {
		s, ok := v.GetString(path)
		return ok && s == value
	}
}

// FieldNumber returns a Predicate over a View that matches when the path holds
// a number accepted by cmp.
//
//	rules.FieldNumber("order.total", func(n float64) bool { return n > 50000 })
func FieldNumber(path string, cmp func(float64) bool) Predicate[View] {
	return func(v View) bool {
		n, ok := v.GetFloat(path)
		return ok && cmp(n)
	}
}

// FieldRaw returns a Predicate over a View that matches when the path exists
// and accept approves its raw encoding. JSON strings keep their quotes, so
// FieldRaw suits booleans, nulls, arrays and objects:
//
//	rules.FieldRaw("order.express", func(raw []byte) bool { return string(raw) == "true" })
func FieldRaw(path string, accept func(raw []byte) bool) Predicate[View] {
	return func(v View) bool {
		raw, ok := v.GetBytes(path)
		return ok && accept(raw)
	}
}

// FieldMatches returns a Predicate over a View that matches when the path
// holds a string matching the wildcard pattern. "*" matches any run of
// characters and "?" a single character.
//
//	rules.FieldMatches("customer.email", "*@example.com")
func FieldMatches(path, pattern string) Predicate[View] {
	return func(v View) bool {
		s, ok := v.GetString(path)
		return ok && match.Match(s, pattern)
	}
}
