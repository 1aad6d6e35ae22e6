package rules

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a document is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Inspector turns a raw document into a View. Each document format has its own
// Inspector.
type Inspector interface {
	Inspect(raw []byte) (View, error)
}

// View is read-only field access to a document, so that rule sets can be keyed
// on documents instead of Go values. A Table[View, R] is such a rule set:
//
//	shipping := rules.New(func(r *rules.Registry[rules.View, string]) {
//	    r.Register(rules.FieldEquals("address.country", "US"), rules.Value[rules.View]("domestic"))
//	    r.Register(rules.Not(rules.FieldEquals("address.country", "US")), rules.Value[rules.View]("international"))
//	})
//	v, err := rules.InspectJSON(raw)
//	...
//	zone, err := shipping.Call(v)
//
// Paths use gjson syntax ("customer.type", "order.lines.0.sku", "order.lines.#").
type View interface {
	// HasField reports whether path exists.
	HasField(path string) bool

	// GetString returns the string at path. ok is false when the path is
	// missing or holds another type.
	GetString(path string) (s string, ok bool)

	// GetFloat returns the number at path. ok is false when the path is
	// missing or holds another type.
	GetFloat(path string) (n float64, ok bool)

	// GetBytes returns the encoded value at path as it appears in the
	// document. ok is false when the path is missing.
	GetBytes(path string) (raw []byte, ok bool)
}

// JSONInspector returns an Inspector for JSON documents, backed by gjson.
func JSONInspector() Inspector {
	return jsonInspector{}
}

// InspectJSON validates raw and returns a View over it.
func InspectJSON(raw []byte) (View, error) {
	return jsonInspector{}.Inspect(raw)
}

type jsonInspector struct{}

func (jsonInspector) Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView(raw), nil
}

// jsonView is a validated JSON document. Fields are looked up on demand; the
// document is never decoded as a whole.
type jsonView []byte

func (v jsonView) lookup(path string) (gjson.Result, bool) {
	r := gjson.GetBytes(v, path)
	return r, r.Exists()
}

func (v jsonView) HasField(path string) bool {
	_, ok := v.lookup(path)
	return ok
}

func (v jsonView) GetString(path string) (string, bool) {
	if r, ok := v.lookup(path); ok && r.Type == gjson.String {
		return r.Str, true
	}
	return "", false
}

func (v jsonView) GetFloat(path string) (float64, bool) {
	if r, ok := v.lookup(path); ok && r.Type == gjson.Number {
		return r.Num, true
	}
	return 0, false
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	r, ok := v.lookup(path)
	if !ok {
		return nil, false
	}
	return []byte(r.Raw), true
}
