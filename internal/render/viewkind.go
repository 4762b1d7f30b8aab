package render

import (
	"fmt"
	"strings"
)

// ViewKind selects the output path.
type ViewKind string

const (
	// ViewTable renders an aligned table through the resolved views.
	ViewTable ViewKind = "table"
	// ViewDetail renders every field of each resource as field/value rows.
	ViewDetail ViewKind = "detail"
	// ViewJSON dumps the raw resources as JSON.
	ViewJSON ViewKind = "json"
	// ViewYAML dumps the raw resources as YAML.
	ViewYAML ViewKind = "yaml"
)

// ViewKinds lists every accepted kind, in help order.
var ViewKinds = []ViewKind{ViewTable, ViewDetail, ViewJSON, ViewYAML}

// ParseViewKind validates s.
func ParseViewKind(s string) (ViewKind, error) {
	for _, k := range ViewKinds {
		if string(k) == s {
			return k, nil
		}
	}
	names := make([]string, len(ViewKinds))
	for i, k := range ViewKinds {
		names[i] = string(k)
	}
	return "", fmt.Errorf("unsupported view %q (valid: %s)", s, strings.Join(names, ", "))
}

// String implements pflag.Value.
func (k *ViewKind) String() string {
	if *k == "" {
		return string(ViewTable)
	}
	return string(*k)
}

// Set implements pflag.Value.
func (k *ViewKind) Set(s string) error {
	parsed, err := ParseViewKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type implements pflag.Value.
func (k *ViewKind) Type() string {
	return "view"
}
