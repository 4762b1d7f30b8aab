package view

// Field is one named value of a resource, in the resource's natural order.
type Field struct {
	Name  string
	Value any
}

// HasTypeLocator is implemented by resources that know their schema path.
// The second return value is false when no locator is available.
type HasTypeLocator interface {
	TypeLocator() (string, bool)
}

// HasFields is implemented by resources exposing ordered named fields.
type HasFields interface {
	Fields() []Field
	Field(name string) (any, bool)
}

// Resource is the capability set a record must satisfy to be rendered.
type Resource interface {
	HasTypeLocator
	HasFields
}

// Labeled is implemented by nested records that have a short identifying
// label used in place of their full contents.
type Labeled interface {
	Label() string
}
