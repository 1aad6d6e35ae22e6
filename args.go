package rules

// Args2 through Args8 bundle several arguments into the single argument type
// A of a Table. A one-argument table uses the argument type directly.
//
// Build them with the Pack functions and take them apart with Unpack:
//
//	t := rules.New(func(r *rules.Registry[rules.Args2[Customer, []Order], float64]) {
//	    r.Register(func(a rules.Args2[Customer, []Order]) bool {
//	        c, orders := a.Unpack()
//	        ...
//	    }, ...)
//	})
//	discount, err := t.Call(rules.Pack2(customer, orders))
//
// The Pred, Func and Proc adapters in arity.go and the Table2..Table4
// wrappers remove most of the packing for two to four arguments.
type Args2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Args3 bundles three arguments.
type Args3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Args4 bundles four arguments.
type Args4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Args5 bundles five arguments.
type Args5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Args6 bundles six arguments.
type Args6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Args7 bundles seven arguments.
type Args7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// Args8 bundles eight arguments.
type Args8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

// Pack2 bundles two arguments into an Args2.
func Pack2[T1, T2 any](v1 T1, v2 T2) Args2[T1, T2] {
	return Args2[T1, T2]{v1, v2}
}

// Pack3 bundles three arguments into an Args3.
func Pack3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Args3[T1, T2, T3] {
	return Args3[T1, T2, T3]{v1, v2, v3}
}

// Pack4 bundles four arguments into an Args4.
func Pack4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Args4[T1, T2, T3, T4] {
	return Args4[T1, T2, T3, T4]{v1, v2, v3, v4}
}

// Pack5 bundles five arguments into an Args5.
func Pack5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Args5[T1, T2, T3, T4, T5] {
	return Args5[T1, T2, T3, T4, T5]{v1, v2, v3, v4, v5}
}

// Pack6 bundles six arguments into an Args6.
func Pack6[T1, T2, T3, T4, T5, T6 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Args6[T1, T2, T3, T4, T5, T6] {
	return Args6[T1, T2, T3, T4, T5, T6]{v1, v2, v3, v4, v5, v6}
}

// Pack7 bundles seven arguments into an Args7.
func Pack7[T1, T2, T3, T4, T5, T6, T7 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Args7[T1, T2, T3, T4, T5, T6, T7] {
	return Args7[T1, T2, T3, T4, T5, T6, T7]{v1, v2, v3, v4, v5, v6, v7}
}

// Pack8 bundles eight arguments into an Args8.
func Pack8[T1, T2, T3, T4, T5, T6, T7, T8 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Args8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Args8[T1, T2, T3, T4, T5, T6, T7, T8]{v1, v2, v3, v4, v5, v6, v7, v8}
}

// Unpack returns the two arguments in order.
func (a Args2[T1, T2]) Unpack() (T1, T2) { return a.V1, a.V2 }

// Unpack returns the three arguments in order.
func (a Args3[T1, T2, T3]) Unpack() (T1, T2, T3) { return a.V1, a.V2, a.V3 }

// Unpack returns the four arguments in order.
func (a Args4[T1, T2, T3, T4]) Unpack() (T1, T2, T3, T4) { return a.V1, a.V2, a.V3, a.V4 }

// Unpack returns the five arguments in order.
func (a Args5[T1, T2, T3, T4, T5]) Unpack() (T1, T2, T3, T4, T5) {
	return a.V1, a.V2, a.V3, a.V4, a.V5
}

// Unpack returns the six arguments in order.
func (a Args6[T1, T2, T3, T4, T5, T6]) Unpack() (T1, T2, T3, T4, T5, T6) {
	return a.V1, a.V2, a.V3, a.V4, a.V5, a.V6
}

// Unpack returns the seven arguments in order.
func (a Args7[T1, T2, T3, T4, T5, T6, T7]) Unpack() (T1, T2, T3, T4, T5, T6, T7) {
	return a.V1, a.V2, a.V3, a.V4, a.V5, a.V6, a.V7
}

// Unpack returns the eight arguments in order.
func (a Args8[T1, T2, T3, T4, T5, T6, T7, T8]) Unpack() (T1, T2, T3, T4, T5, T6, T7, T8) {
	return a.V1, a.V2, a.V3, a.V4, a.V5, a.V6, a.V7, a.V8
}
