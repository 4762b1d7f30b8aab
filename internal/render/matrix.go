package render

import (
	"reflect"
	"slices"
	"strings"

	"nbcli/internal/view"
)

// Matrix is a header row followed by data rows of display strings.
type Matrix [][]string

// BuildMatrix lays out result, which must be a single view.Resource or a
// non-empty []view.Resource whose elements share one concrete type and one
// type locator. A view is resolved per resource through reg.
//
// When cols is non-empty it replaces the header. Each value is taken from the
// view column with the same name (case-insensitive), or else from the raw
// resource field at that path.
func BuildMatrix(reg *view.Registry, result any, cols []string) (Matrix, error) {
	var m Matrix

	switch res := result.(type) {
	case view.Resource:
		v := reg.Resolve(res)
		m = Matrix{header(v, cols), row(v, res, cols)}

	case []view.Resource:
		if len(res) == 0 {
			return nil, &ShapeError{Err: ErrEmptyResult}
		}

		for i, r := range res {
			if r == nil {
				return nil, shapeError(ErrUnsupportedResult, "item %d is nil", i)
			}
		}

		first := res[0]
		firstType := reflect.TypeOf(first)
		firstLocator, _ := first.TypeLocator()
		firstView := reg.Resolve(first)
		firstKeys := firstView.Keys()

		m = make(Matrix, 0, len(res)+1)
		m = append(m, header(firstView, cols))
		for i, r := range res {
			if t := reflect.TypeOf(r); t != firstType {
				return nil, shapeError(ErrMixedTypes, "item %d is %v, item 0 is %v", i, t, firstType)
			}
			if locator, _ := r.TypeLocator(); locator != firstLocator {
				return nil, shapeError(ErrMixedTypes, "item %d is %q, item 0 is %q", i, locator, firstLocator)
			}
			v := reg.Resolve(r)
			if v.Name() != firstView.Name() {
				return nil, shapeError(ErrMixedTypes, "item %d resolves to %s, item 0 to %s", i, v.Name(), firstView.Name())
			}
			// Without a column override the header comes from item 0, so
			// every row must expose the same columns in the same order.
			if len(cols) == 0 && !slices.Equal(v.Keys(), firstKeys) {
				return nil, shapeError(ErrRaggedMatrix, "item %d has columns %v, header has %v", i, v.Keys(), firstKeys)
			}
			m = append(m, row(v, r, cols))
		}

	default:
		return nil, shapeError(ErrUnsupportedResult, "%T", result)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func header(v view.View, cols []string) []string {
	if len(cols) > 0 {
		return append([]string(nil), cols...)
	}
	return v.Keys()
}

func row(v view.View, r view.HasFields, cols []string) []string {
	if len(cols) == 0 {
		return v.Values()
	}

	keys, values := v.Keys(), v.Values()
	out := make([]string, len(cols))
	for i, col := range cols {
		if j := indexFold(keys, col); j >= 0 {
			out[i] = values[j]
			continue
		}
		out[i] = view.Lookup(r, col)
	}
	return out
}

func indexFold(keys []string, name string) int {
	for i, k := range keys {
		if strings.EqualFold(k, name) {
			return i
		}
	}
	return -1
}

// validate checks that every row has the header's length.
func (m Matrix) validate() error {
	if len(m) == 0 {
		return &ShapeError{Err: ErrNoDataRows}
	}
	width := len(m[0])
	for i, r := range m[1:] {
		if len(r) != width {
			return shapeError(ErrRaggedMatrix, "row %d has %d cells, header has %d", i+1, len(r), width)
		}
	}
	return nil
}
