package view

// RecordViewName is the name of the fallback view.
const RecordViewName = "RecordView"

// RecordView is the fallback view. It exposes every field of the resource in
// the resource's own order.
type RecordView struct {
	resource HasFields
}

// NewRecordView wraps r without copying it.
func NewRecordView(r HasFields) *RecordView {
	return &RecordView{resource: r}
}

func (v *RecordView) Name() string { return RecordViewName }

func (v *RecordView) Keys() []string {
	fields := v.resource.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Name
	}
	return keys
}

func (v *RecordView) Values() []string {
	fields := v.resource.Fields()
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = Stringify(f.Value)
	}
	return values
}
