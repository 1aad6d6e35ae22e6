package rules

import (
	"testing"
)

func TestHasFields(t *testing.T) {
	view, err := JSONInspector().Inspect([]byte(`{
		"customer": {"type": "Individual", "id": 7},
		"orders": [{"total": 600}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("matches when all fields present", func(t *testing.T) {
		if !HasFields("customer.type", "orders")(view) {
			t.Error("expected match")
		}
	})

	t.Run("matches array paths", func(t *testing.T) {
		if !HasFields("orders.0.total")(view) {
			t.Error("expected match")
		}
	})

	t.Run("fails when any field missing", func(t *testing.T) {
		if HasFields("customer.type", "missing")(view) {
			t.Error("expected no match")
		}
	})

	t.Run("matches with no fields (vacuous truth)", func(t *testing.T) {
		if !HasFields()(view) {
			t.Error("expected match for empty field list")
		}
	})
}

func TestFieldEquals(t *testing.T) {
	view, err := JSONInspector().Inspect([]byte(`{"type": "Individual", "count": 42}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		path  string
		value string
		want  bool
	}{
		"exact string value": {"type", "Individual", true},
		"wrong value":        {"type", "Business", false},
		"missing field":      {"missing", "Individual", false},
		"non-string field":   {"count", "42", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FieldEquals(tt.path, tt.value)(view); got != tt.want {
				t.Errorf("FieldEquals(%q, %q) = %v, want %v", tt.path, tt.value, got, tt.want)
			}
		})
	}
}

func TestFieldNumber(t *testing.T) {
	view, err := JSONInspector().Inspect([]byte(`{"total": 60000, "label": "60000"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	over50k := func(n float64) bool { return n > 50000 }

	t.Run("matches when comparison holds", func(t *testing.T) {
		if !FieldNumber("total", over50k)(view) {
			t.Error("expected match")
		}
	})

	t.Run("fails when comparison does not hold", func(t *testing.T) {
		if FieldNumber("total", func(n float64) bool { return n > 100000 })(view) {
			t.Error("expected no match")
		}
	})

	t.Run("fails on string field", func(t *testing.T) {
		if FieldNumber("label", over50k)(view) {
			t.Error("expected no match for string field")
		}
	})

	t.Run("fails on missing field without calling comparison", func(t *testing.T) {
		called := false
		p := FieldNumber("missing", func(float64) bool {
			called = true
			return true
		})
		if p(view) {
			t.Error("expected no match")
		}
		if called {
			t.Error("comparison called for missing field")
		}
	})
}

func TestFieldMatches(t *testing.T) {
	view, err := JSONInspector().Inspect([]byte(`{"email": "ops@example.com", "code": 12}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		path    string
		pattern string
		want    bool
	}{
		"suffix wildcard":     {"email", "*@example.com", true},
		"single char":         {"email", "op?@example.com", true},
		"no match":            {"email", "*@example.org", false},
		"non-string field":    {"code", "*", false},
		"missing field":       {"missing", "*", false},
		"literal exact match": {"email", "ops@example.com", true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FieldMatches(tt.path, tt.pattern)(view); got != tt.want {
				t.Errorf("FieldMatches(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFieldRaw(t *testing.T) {
	view, err := InspectJSON([]byte(`{"express": true, "gift": null, "tags": ["fragile"], "note": "true"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equals := func(want string) func([]byte) bool {
		return func(raw []byte) bool { return string(raw) == want }
	}

	tests := map[string]struct {
		path string
		want string
		ok   bool
	}{
		"boolean":             {"express", "true", true},
		"null":                {"gift", "null", true},
		"array":               {"tags", `["fragile"]`, true},
		"string keeps quotes": {"note", `"true"`, true},
		"string is not bool":  {"note", "true", false},
		"missing field":       {"missing", "", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FieldRaw(tt.path, equals(tt.want))(view); got != tt.ok {
				t.Errorf("FieldRaw(%q) = %v, want %v", tt.path, got, tt.ok)
			}
		})
	}
}

func TestAll(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	even := func(n int) bool { return n%2 == 0 }

	t.Run("matches when all match", func(t *testing.T) {
		if !All[int](positive, even)(4) {
			t.Error("expected match")
		}
	})

	t.Run("fails when any fails", func(t *testing.T) {
		if All[int](positive, even)(3) {
			t.Error("expected no match")
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		calls := 0
		counting := func(int) bool {
			calls++
			return true
		}
		All[int](Never[int](), counting)(1)
		if calls != 0 {
			t.Errorf("calls = %d, want 0", calls)
		}
	})

	t.Run("matches with no predicates (vacuous truth)", func(t *testing.T) {
		if !All[int]()(1) {
			t.Error("expected match for empty All")
		}
	})
}

func TestAny(t *testing.T) {
	negative := func(n int) bool { return n < 0 }
	even := func(n int) bool { return n%2 == 0 }

	t.Run("matches when any matches", func(t *testing.T) {
		if !Any[int](negative, even)(4) {
			t.Error("expected match")
		}
	})

	t.Run("fails when none match", func(t *testing.T) {
		if Any[int](negative, even)(3) {
			t.Error("expected no match")
		}
	})

	t.Run("fails with no predicates", func(t *testing.T) {
		if Any[int]()(1) {
			t.Error("expected no match for empty Any")
		}
	})
}

func TestNot(t *testing.T) {
	if Not(Always[string]())("x") {
		t.Error("Not(Always) matched")
	}
	if !Not(Never[string]())("x") {
		t.Error("Not(Never) did not match")
	}
}

func TestComposedPredicates(t *testing.T) {
	individualOver500 := All(
		FieldEquals("customer.type", "Individual"),
		FieldNumber("order.total", func(n float64) bool { return n > 500 }),
	)

	tests := map[string]struct {
		raw  string
		want bool
	}{
		"individual over threshold":  {`{"customer": {"type": "Individual"}, "order": {"total": 600}}`, true},
		"individual under threshold": {`{"customer": {"type": "Individual"}, "order": {"total": 10}}`, false},
		"business over threshold":    {`{"customer": {"type": "Business"}, "order": {"total": 600}}`, false},
		"missing order":              {`{"customer": {"type": "Individual"}}`, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			view, err := InspectJSON([]byte(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := individualOver500(view); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
