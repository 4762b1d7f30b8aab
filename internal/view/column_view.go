package view

// Column is one curated column of a ColumnView.
type Column struct {
	// Header is the key shown in the header row.
	Header string
	// Path is the field to read, optionally dotted into nested records.
	Path string
}

// ColumnView shows a fixed, ordered subset of a resource's fields.
type ColumnView struct {
	name     string
	columns  []Column
	resource HasFields
}

func (v *ColumnView) Name() string { return v.name }

func (v *ColumnView) Keys() []string {
	keys := make([]string, len(v.columns))
	for i, c := range v.columns {
		keys[i] = c.Header
	}
	return keys
}

func (v *ColumnView) Values() []string {
	values := make([]string, len(v.columns))
	for i, c := range v.columns {
		values[i] = Lookup(v.resource, c.Path)
	}
	return values
}

// Columns returns a Definition for a curated view named name.
// The column list is shared by every instance.
func Columns(name string, columns ...Column) Definition {
	cols := append([]Column(nil), columns...)
	return Definition{
		Name: name,
		New: func(r Resource) View {
			return &ColumnView{name: name, columns: cols, resource: r}
		},
	}
}
