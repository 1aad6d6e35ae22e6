package rules

import "iter"

// Pred2 adapts a two-argument predicate to Predicate[Args2].
func Pred2[T1, T2 any](fn func(T1, T2) bool) Predicate[Args2[T1, T2]] {
	return func(a Args2[T1, T2]) bool { return fn(a.V1, a.V2) }
}

// Pred3 adapts a three-argument predicate to Predicate[Args3].
func Pred3[T1, T2, T3 any](fn func(T1, T2, T3) bool) Predicate[Args3[T1, T2, T3]] {
	return func(a Args3[T1, T2, T3]) bool { return fn(a.V1, a.V2, a.V3) }
}

// Pred4 adapts a four-argument predicate to Predicate[Args4].
func Pred4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) bool) Predicate[Args4[T1, T2, T3, T4]] {
	return func(a Args4[T1, T2, T3, T4]) bool { return fn(a.V1, a.V2, a.V3, a.V4) }
}

// Func2 adapts a two-argument function to Handler[Args2, R].
func Func2[T1, T2, R any](fn func(T1, T2) (R, error)) Handler[Args2[T1, T2], R] {
	return func(a Args2[T1, T2]) (R, error) { return fn(a.V1, a.V2) }
}

// Func3 adapts a three-argument function to Handler[Args3, R].
func Func3[T1, T2, T3, R any](fn func(T1, T2, T3) (R, error)) Handler[Args3[T1, T2, T3], R] {
	return func(a Args3[T1, T2, T3]) (R, error) { return fn(a.V1, a.V2, a.V3) }
}

// Func4 adapts a four-argument function to Handler[Args4, R].
func Func4[T1, T2, T3, T4, R any](fn func(T1, T2, T3, T4) (R, error)) Handler[Args4[T1, T2, T3, T4], R] {
	return func(a Args4[T1, T2, T3, T4]) (R, error) { return fn(a.V1, a.V2, a.V3, a.V4) }
}

// Proc2 adapts a two-argument procedure to an action handler.
func Proc2[T1, T2 any](fn func(T1, T2) error) Handler[Args2[T1, T2], Void] {
	return Proc(func(a Args2[T1, T2]) error { return fn(a.V1, a.V2) })
}

// Proc3 adapts a three-argument procedure to an action handler.
func Proc3[T1, T2, T3 any](fn func(T1, T2, T3) error) Handler[Args3[T1, T2, T3], Void] {
	return Proc(func(a Args3[T1, T2, T3]) error { return fn(a.V1, a.V2, a.V3) })
}

// Proc4 adapts a four-argument procedure to an action handler.
func Proc4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) error) Handler[Args4[T1, T2, T3, T4], Void] {
	return Proc(func(a Args4[T1, T2, T3, T4]) error { return fn(a.V1, a.V2, a.V3, a.V4) })
}

// Table2 is a Table over two arguments. It embeds the tuple-keyed table, so
// every Table method remains available with an Args2 argument; the methods
// below add positional forms of the common queries.
//
// Example:
//
//	discounts := rules.New2(func(r *rules.Registry[rules.Args2[Customer, []Order], float64]) {
//	    r.Register(
//	        rules.Pred2(func(c Customer, o []Order) bool { return c.Type == "Charity" }),
//	        rules.Func2(func(c Customer, o []Order) (float64, error) { return 0.16, nil }),
//	    )
//	})
//	d, err := discounts.CallOr(customer, orders, func(Customer, []Order) (float64, error) {
//	    return 0, nil
//	})
type Table2[T1, T2, R any] struct {
	*Table[Args2[T1, T2], R]
}

// New2 builds a Table2 by running register once, as New does.
func New2[T1, T2, R any](register func(r *Registry[Args2[T1, T2], R]), opts ...Option) Table2[T1, T2, R] {
	return Bind2(New(register, opts...))
}

// Bind2 wraps an existing two-argument table.
func Bind2[T1, T2, R any](t *Table[Args2[T1, T2], R]) Table2[T1, T2, R] {
	return Table2[T1, T2, R]{t}
}

// Call is Table.Call with positional arguments.
func (t Table2[T1, T2, R]) Call(v1 T1, v2 T2) (R, error) {
	return t.Table.Call(Pack2(v1, v2))
}

// CallOr is Table.CallOr with positional arguments and a plain fallback function.
func (t Table2[T1, T2, R]) CallOr(v1 T1, v2 T2, fallback func(T1, T2) (R, error)) (R, error) {
	return t.Table.CallOr(Pack2(v1, v2), Func2(fallback))
}

// CallAll is Table.CallAll with positional arguments.
func (t Table2[T1, T2, R]) CallAll(v1 T1, v2 T2) ([]R, error) {
	return t.Table.CallAll(Pack2(v1, v2))
}

// CallAllOr is Table.CallAllOr with positional arguments and a plain fallback function.
func (t Table2[T1, T2, R]) CallAllOr(v1 T1, v2 T2, fallback func(T1, T2) (R, error)) ([]R, error) {
	return t.Table.CallAllOr(Pack2(v1, v2), Func2(fallback))
}

// IndexOf is Table.IndexOf with positional arguments.
func (t Table2[T1, T2, R]) IndexOf(v1 T1, v2 T2) (int, error) {
	return t.Table.IndexOf(Pack2(v1, v2))
}

// CountOf is Table.CountOf with positional arguments.
func (t Table2[T1, T2, R]) CountOf(v1 T1, v2 T2) int {
	return t.Table.CountOf(Pack2(v1, v2))
}

// Where is Table.Where with positional arguments.
func (t Table2[T1, T2, R]) Where(v1 T1, v2 T2) iter.Seq[Handler[Args2[T1, T2], R]] {
	return t.Table.Where(Pack2(v1, v2))
}

// Table3 is a Table over three arguments. See Table2.
type Table3[T1, T2, T3, R any] struct {
	*Table[Args3[T1, T2, T3], R]
}

// New3 builds a Table3 by running register once, as New does.
func New3[T1, T2, T3, R any](register func(r *Registry[Args3[T1, T2, T3], R]), opts ...Option) Table3[T1, T2, T3, R] {
	return Bind3(New(register, opts...))
}

// Bind3 wraps an existing three-argument table.
func Bind3[T1, T2, T3, R any](t *Table[Args3[T1, T2, T3], R]) Table3[T1, T2, T3, R] {
	return Table3[T1, T2, T3, R]{t}
}

// Call is Table.Call with positional arguments.
func (t Table3[T1, T2, T3, R]) Call(v1 T1, v2 T2, v3 T3) (R, error) {
	return t.Table.Call(Pack3(v1, v2, v3))
}

// CallOr is Table.CallOr with positional arguments and a plain fallback function.
func (t Table3[T1, T2, T3, R]) CallOr(v1 T1, v2 T2, v3 T3, fallback func(T1, T2, T3) (R, error)) (R, error) {
	return t.Table.CallOr(Pack3(v1, v2, v3), Func3(fallback))
}

// CallAll is Table.CallAll with positional arguments.
func (t Table3[T1, T2, T3, R]) CallAll(v1 T1, v2 T2, v3 T3) ([]R, error) {
	return t.Table.CallAll(Pack3(v1, v2, v3))
}

// CallAllOr is Table.CallAllOr with positional arguments and a plain fallback function.
func (t Table3[T1, T2, T3, R]) CallAllOr(v1 T1, v2 T2, v3 T3, fallback func(T1, T2, T3) (R, error)) ([]R, error) {
	return t.Table.CallAllOr(Pack3(v1, v2, v3), Func3(fallback))
}

// IndexOf is Table.IndexOf with positional arguments.
func (t Table3[T1, T2, T3, R]) IndexOf(v1 T1, v2 T2, v3 T3) (int, error) {
	return t.Table.IndexOf(Pack3(v1, v2, v3))
}

// CountOf is Table.CountOf with positional arguments.
func (t Table3[T1, T2, T3, R]) CountOf(v1 T1, v2 T2, v3 T3) int {
	return t.Table.CountOf(Pack3(v1, v2, v3))
}

// Where is Table.Where with positional arguments.
func (t Table3[T1, T2, T3, R]) Where(v1 T1, v2 T2, v3 T3) iter.Seq[Handler[Args3[T1, T2, T3], R]] {
	return t.Table.Where(Pack3(v1, v2, v3))
}

// Table4 is a Table over four arguments. See Table2.
type Table4[T1, T2, T3, T4, R any] struct {
	*Table[Args4[T1, T2, T3, T4], R]
}

// New4 builds a Table4 by running register once, as New does.
func New4[T1, T2, T3, T4, R any](register func(r *Registry[Args4[T1, T2, T3, T4], R]), opts ...Option) Table4[T1, T2, T3, T4, R] {
	return Bind4(New(register, opts...))
}

// Bind4 wraps an existing four-argument table.
func Bind4[T1, T2, T3, T4, R any](t *Table[Args4[T1, T2, T3, T4], R]) Table4[T1, T2, T3, T4, R] {
	return Table4[T1, T2, T3, T4, R]{t}
}

// Call is Table.Call with positional arguments.
func (t Table4[T1, T2, T3, T4, R]) Call(v1 T1, v2 T2, v3 T3, v4 T4) (R, error) {
	return t.Table.Call(Pack4(v1, v2, v3, v4))
}

// CallOr is Table.CallOr with positional arguments and a plain fallback function.
func (t Table4[T1, T2, T3, T4, R]) CallOr(v1 T1, v2 T2, v3 T3, v4 T4, fallback func(T1, T2, T3, T4) (R, error)) (R, error) {
	return t.Table.CallOr(Pack4(v1, v2, v3, v4), Func4(fallback))
}

// CallAll is Table.CallAll with positional arguments.
func (t Table4[T1, T2, T3, T4, R]) CallAll(v1 T1, v2 T2, v3 T3, v4 T4) ([]R, error) {
	return t.Table.CallAll(Pack4(v1, v2, v3, v4))
}

// CallAllOr is Table.CallAllOr with positional arguments and a plain fallback function.
func (t Table4[T1, T2, T3, T4, R]) CallAllOr(v1 T1, v2 T2, v3 T3, v4 T4, fallback func(T1, T2, T3, T4) (R, error)) ([]R, error) {
	return t.Table.CallAllOr(Pack4(v1, v2, v3, v4), Func4(fallback))
}

// IndexOf is Table.IndexOf with positional arguments.
func (t Table4[T1, T2, T3, T4, R]) IndexOf(v1 T1, v2 T2, v3 T3, v4 T4) (int, error) {
	return t.Table.IndexOf(Pack4(v1, v2, v3, v4))
}

// CountOf is Table.CountOf with positional arguments.
func (t Table4[T1, T2, T3, T4, R]) CountOf(v1 T1, v2 T2, v3 T3, v4 T4) int {
	return t.Table.CountOf(Pack4(v1, v2, v3, v4))
}

// Where is Table.Where with positional arguments.
func (t Table4[T1, T2, T3, T4, R]) Where(v1 T1, v2 T2, v3 T3, v4 T4) iter.Seq[Handler[Args4[T1, T2, T3, T4], R]] {
	return t.Table.Where(Pack4(v1, v2, v3, v4))
}
