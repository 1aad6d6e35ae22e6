package rules

// Table is an ordered, read-only set of predicate/handler entries.
//
// Usage:
//  1. Create a table with New (registration callback) or FromEntries
//  2. Query it with Call, CallOr, CallAll, CallAllOr, Single, IndexOf, ...
//
// Registration order is the only source of priority and of ordinal index. It
// is fixed when the constructor returns; no operation reorders or removes
// entries.
//
// Table is safe for concurrent queries once construction has returned, as long
// as the predicates, handlers and hooks are. The caller must make the
// constructed table visible to other goroutines through normal synchronization
// (channel send, mutex, sync.Once, ...).
type Table[A, R any] struct {
	name    string
	entries []Entry[A, R]
	hooks   hooks
}

// Registry collects entries during table construction. It is only valid
// inside the callback passed to New; using it after New returns panics.
type Registry[A, R any] struct {
	entries []Entry[A, R]
	sealed  bool
}

// Register appends an entry. Entries are matched in the order they are
// registered.
//
// Panics if p or h is nil, or if called after the table has been built.
func (r *Registry[A, R]) Register(p Predicate[A], h Handler[A, R]) {
	r.Add(When(p, h))
}

// Add appends prebuilt entries, typically created with When or Named.
//
// Panics under the same conditions as Register.
func (r *Registry[A, R]) Add(entries ...Entry[A, R]) {
	if r.sealed {
		panic("rules: Register called after table construction")
	}
	for _, e := range entries {
		checkEntry(e)
		r.entries = append(r.entries, e)
	}
}

// Len returns the number of entries registered so far.
func (r *Registry[A, R]) Len() int {
	return len(r.entries)
}

// New builds a table by running register exactly once. The callback populates
// the table through the Registry; once it returns, the table is sealed.
//
// Example:
//
//	discounts := rules.New(func(r *rules.Registry[Order, float64]) {
//	    r.Register(func(o Order) bool { return o.Total > 50000 }, rules.Value[Order](0.18))
//	    r.Register(func(o Order) bool { return o.Total > 500 }, rules.Value[Order](0.10))
//	}, rules.WithName("discounts"))
//
// A nil register produces an empty table.
func New[A, R any](register func(r *Registry[A, R]), opts ...Option) *Table[A, R] {
	reg := &Registry[A, R]{}
	if register != nil {
		register(reg)
	}
	reg.sealed = true

	return build(reg.entries, opts)
}

// FromEntries builds a table from a finished list of entries. The slice is
// copied; later changes to it do not affect the table.
//
// Panics if any entry has a nil predicate or handler.
func FromEntries[A, R any](entries []Entry[A, R], opts ...Option) *Table[A, R] {
	cp := make([]Entry[A, R], 0, len(entries))
	for _, e := range entries {
		checkEntry(e)
		cp = append(cp, e)
	}
	return build(cp, opts)
}

func build[A, R any](entries []Entry[A, R], opts []Option) *Table[A, R] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table[A, R]{
		name:    cfg.name,
		entries: entries,
		hooks:   cfg.hooks,
	}
}

func checkEntry[A, R any](e Entry[A, R]) {
	if e.Predicate == nil {
		panic("rules: nil predicate")
	}
	if e.Handler == nil {
		panic("rules: nil handler")
	}
}

// Name returns the name given with WithName, or "" if none was set.
func (t *Table[A, R]) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table[A, R]) Len() int {
	return len(t.entries)
}

// Names returns the entry names in registration order. Unnamed entries yield "".
func (t *Table[A, R]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}
