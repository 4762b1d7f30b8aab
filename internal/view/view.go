package view

import (
	"fmt"
	"strings"
)

// View formats a single resource as ordered key/value pairs.
// Keys and Values always have the same length and order.
type View interface {
	// Name is the canonical name the view is registered under.
	Name() string
	// Keys returns the column names. They depend only on the view type.
	Keys() []string
	// Values returns the stringified values for the wrapped resource.
	Values() []string
}

// listSeparator joins list values into a single cell.
const listSeparator = ", "

// Stringify converts a field value to its display form.
// Nested records collapse to their label, lists are joined, and absent
// values become the empty string.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Labeled:
		return v.Label()
	case []string:
		return strings.Join(v, listSeparator)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, listSeparator)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// lookupPath resolves a dotted field path ("site.name") against a resource.
// Intermediate values must themselves expose fields.
func lookupPath(r HasFields, path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")
	value, ok := r.Field(head)
	if !ok || !nested {
		return value, ok
	}
	child, ok := value.(HasFields)
	if !ok {
		return nil, false
	}
	return lookupPath(child, rest)
}

// Lookup returns the display value at path, or "" when the path is absent.
func Lookup(r HasFields, path string) string {
	value, _ := lookupPath(r, path)
	return Stringify(value)
}
