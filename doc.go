// Package rules provides predicate-keyed dispatch tables for "if condition
// then behavior" rule sets.
//
// A Table is an ordered list of entries, each pairing a predicate with a
// handler. Querying a table with some arguments finds the entries whose
// predicates accept them and, depending on the operation, returns or invokes
// their handlers. Rule sets written as tables replace long if/else-if chains.
//
// # Quick Start
//
// Build a table once, registering entries in priority order:
//
//	type Order struct {
//	    CustomerType string
//	    Total        float64
//	}
//
//	discounts := rules.New(func(r *rules.Registry[Order, float64]) {
//	    r.Register(
//	        func(o Order) bool { return o.Total > 50000 },
//	        rules.Value[Order](0.18),
//	    )
//	    r.Register(
//	        func(o Order) bool { return o.CustomerType == "Individual" && o.Total > 500 },
//	        rules.Value[Order](0.10),
//	    )
//	}, rules.WithName("discounts"))
//
// Then query it:
//
//	d, err := discounts.Call(order)                          // exactly one rule must apply
//	d, err := discounts.CallOr(order, rules.Value[Order](0)) // zero or one; fallback otherwise
//	ds, err := discounts.CallAll(order)                      // every rule that applies
//
// # Design Philosophy
//
// A table has three layers:
//
//   - Entries: a predicate and a handler sharing one argument type
//   - Matching: a linear scan of the entries in registration order
//   - Queries: the success, ambiguity and fallback policy of each operation
//
// Predicates are arbitrary functions, so matching always evaluates them in
// order; there is no index. Registration order is the only source of priority
// and of the ordinal returned by IndexOf.
//
// # Registration
//
// New runs its registration callback exactly once, then seals the table:
//
//	t := rules.New(func(r *rules.Registry[Args, Result]) {
//	    r.Register(pred, handler)
//	    r.Add(rules.Named("vip", isVIP, vipHandler))
//	})
//
// FromEntries builds a table from a finished slice instead:
//
//	t := rules.FromEntries([]rules.Entry[Args, Result]{
//	    rules.When(pred1, handler1),
//	    rules.When(pred2, handler2),
//	})
//
// Neither exposes a way to add, remove or reorder entries afterwards.
//
// # Queries
//
// Strict operations require exactly one match:
//
//   - Single: the matching handler
//   - IndexOf: the registration position of the match
//   - Call: invoke the matching handler
//
// Tolerant operations accept zero matches:
//
//   - SingleOrDefault: the matching handler, or false
//   - CallOr: invoke the match, or the fallback when nothing matches
//   - First, FirstOrDefault: the earliest match, ignoring later ones
//
// Cardinality operations never fail on matching:
//
//   - Where: a lazy sequence of matching handlers
//   - CountOf: the number of matches
//   - CallAll: invoke every match in order, returning all results
//   - CallAllOr: as CallAll, but invoke the fallback when nothing matches
//
// A fallback runs only when nothing matches. It never resolves ambiguity.
//
// CallAll does not combine results. It returns them in registration order and
// leaves aggregation to the caller.
//
// # Arguments
//
// A Table has a single argument type. Tables over several arguments use the
// tuple types Args2 through Args8:
//
//	t := rules.New(func(r *rules.Registry[rules.Args2[Customer, []Order], float64]) {
//	    r.Register(rules.Pred2(isCharity), rules.Func2(charityDiscount))
//	})
//	d, err := t.Call(rules.Pack2(customer, orders))
//
// For two to four arguments, New2..New4 return wrappers with positional
// methods:
//
//	t := rules.New2(func(r *rules.Registry[rules.Args2[Customer, []Order], float64]) { ... })
//	d, err := t.Call(customer, orders)
//
// Action-style tables, whose handlers return nothing, use Void as the result
// type and Proc (or Proc2..Proc4) to adapt handlers:
//
//	alerts := rules.New(func(r *rules.Registry[Reading, rules.Void]) {
//	    r.Register(isTooHot, rules.Proc(notifyOps))
//	})
//	_, err := alerts.CallAll(reading)
//
// # JSON Documents
//
// Tables keyed on View match documents by field, using gjson paths:
//
//	tiers := rules.New(func(r *rules.Registry[rules.View, string]) {
//	    r.Register(
//	        rules.All(
//	            rules.FieldEquals("customer.type", "Business"),
//	            rules.FieldNumber("order.total", func(n float64) bool { return n > 20000 }),
//	        ),
//	        rules.Value[rules.View]("gold"),
//	    )
//	})
//
//	v, err := rules.InspectJSON(raw)
//	if err != nil {
//	    return err
//	}
//	tier, err := tiers.CallOr(v, rules.Value[rules.View]("standard"))
//
// Predicates provided for View: HasFields, FieldEquals, FieldNumber and
// FieldMatches. All, Any and Not compose predicates of any argument type.
//
// # Error Handling
//
// Lookup failures are *MatchError values wrapping one of two sentinels:
//
//   - ErrNoMatch: nothing matched where a match was required
//   - ErrAmbiguousMatch: several entries matched where at most one was allowed
//
//	if errors.Is(err, rules.ErrAmbiguousMatch) {
//	    var me *rules.MatchError
//	    errors.As(err, &me)
//	    log.Printf("overlapping rules: %v", me.Indexes)
//	}
//
// Errors returned by handlers are passed back unchanged. Panics in predicates
// or handlers propagate to the caller. Nothing is retried.
//
// # Hooks
//
// Hooks observe table activity without changing it:
//
//	t := rules.New(register,
//	    rules.WithName("discounts"),
//	    rules.WithOnAmbiguous(func(table string, op rules.Op, indexes []int, entries []string) {
//	        logger.Warn("overlapping rules", "table", table, "entries", entries)
//	    }),
//	    rules.WithOnSuccess(func(table string, op rules.Op, index int, entry string, d time.Duration) {
//	        metrics.Timing("rules.success", d, "table:"+table)
//	    }),
//	)
//
// Available hooks:
//   - WithOnMatch: called when a lookup finds its entry
//   - WithOnDispatch: called just before a handler runs
//   - WithOnSuccess: called after a handler succeeds
//   - WithOnFailure: called after a handler fails
//   - WithOnNoMatch: called when a strict operation finds no match
//   - WithOnAmbiguous: called when several entries match where one is allowed
//   - WithOnFallback: called before a fallback runs
//
// WithLogger installs hooks that log to a *slog.Logger. The metrics
// sub-package provides hooks that record Prometheus metrics.
//
// Hooks that concern a single entry receive its name as given to Named.
// Where and CountOf report nothing.
//
// Multiple hooks of the same type are called in order.
//
// # Thread Safety
//
// A Table is safe for concurrent queries once its constructor has returned,
// provided its predicates, handlers and hooks are. Publish the table to other
// goroutines with ordinary synchronization.
package rules
