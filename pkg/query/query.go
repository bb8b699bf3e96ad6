// Package query builds the JSON query strings accepted by list and get
// endpoints, e.g. {"method":"equal","attribute":"title","values":["Hello"]}.
package query

import (
	"encoding/json"
)

type query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func (q query) String() string {
	// A query only holds strings and caller-supplied scalars.
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// Parsed is a decoded query string.
type Parsed struct {
	Method    string
	Attribute string
	Values    []any
}

// Parse decodes a query string produced by this package or by hand.
func Parse(s string) (Parsed, error) {
	var q query
	if err := json.Unmarshal([]byte(s), &q); err != nil {
		return Parsed{}, err
	}
	return Parsed{Method: q.Method, Attribute: q.Attribute, Values: q.Values}, nil
}

func build(method, attribute string, values ...any) string {
	return query{Method: method, Attribute: attribute, Values: values}.String()
}

func Equal(attribute string, values ...any) string {
	return build("equal", attribute, values...)
}

func NotEqual(attribute string, values ...any) string {
	return build("notEqual", attribute, values...)
}

func LessThan(attribute string, value any) string {
	return build("lessThan", attribute, value)
}

func LessThanEqual(attribute string, value any) string {
	return build("lessThanEqual", attribute, value)
}

func GreaterThan(attribute string, value any) string {
	return build("greaterThan", attribute, value)
}

func GreaterThanEqual(attribute string, value any) string {
	return build("greaterThanEqual", attribute, value)
}

// Search runs a full-text search; the attribute needs a fulltext index.
func Search(attribute, value string) string {
	return build("search", attribute, value)
}

func IsNull(attribute string) string {
	return build("isNull", attribute)
}

func IsNotNull(attribute string) string {
	return build("isNotNull", attribute)
}

// Between matches start <= attribute <= end.
func Between(attribute string, start, end any) string {
	return build("between", attribute, start, end)
}

func StartsWith(attribute, value string) string {
	return build("startsWith", attribute, value)
}

func EndsWith(attribute, value string) string {
	return build("endsWith", attribute, value)
}

func Contains(attribute string, values ...any) string {
	return build("contains", attribute, values...)
}

// Select limits the returned attributes.
func Select(attributes ...string) string {
	values := make([]any, len(attributes))
	for i, a := range attributes {
		values[i] = a
	}
	return build("select", "", values...)
}

func OrderAsc(attribute string) string {
	return build("orderAsc", attribute)
}

func OrderDesc(attribute string) string {
	return build("orderDesc", attribute)
}

func Limit(limit int) string {
	return build("limit", "", limit)
}

func Offset(offset int) string {
	return build("offset", "", offset)
}

// CursorAfter pages forward from the document with the given id.
func CursorAfter(documentID string) string {
	return build("cursorAfter", "", documentID)
}

func CursorBefore(documentID string) string {
	return build("cursorBefore", "", documentID)
}
