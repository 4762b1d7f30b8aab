package render

import (
	"bytes"
	"io"

	"nbcli/internal/view"
)

// detailHeader heads the field/value table of the detail view.
var detailHeader = []string{"Field", "Value"}

// WriteDetail prints each resource as a two-column field/value table built
// from the fallback RecordView, so every field is shown. When cols is set only
// those fields are printed. Resources are separated by a blank line.
func WriteDetail(w io.Writer, result any, cols []string, header bool) error {
	var resources []view.Resource
	switch res := result.(type) {
	case view.Resource:
		resources = []view.Resource{res}
	case []view.Resource:
		if len(res) == 0 {
			return &ShapeError{Err: ErrEmptyResult}
		}
		resources = res
	default:
		return shapeError(ErrUnsupportedResult, "%T", result)
	}

	var buf bytes.Buffer
	for i, r := range resources {
		if r == nil {
			return shapeError(ErrUnsupportedResult, "item %d is nil", i)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := RenderTable(&buf, detailMatrix(r, cols), header); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func detailMatrix(r view.Resource, cols []string) Matrix {
	m := Matrix{detailHeader}
	if len(cols) > 0 {
		for _, col := range cols {
			m = append(m, []string{col, view.Lookup(r, col)})
		}
		return m
	}

	v := view.NewRecordView(r)
	keys, values := v.Keys(), v.Values()
	for i := range keys {
		m = append(m, []string{keys[i], values[i]})
	}
	return m
}
