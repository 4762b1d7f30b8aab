package view

import "fmt"

// Constructor builds a view around a resource.
type Constructor func(Resource) View

// Definition registers a Constructor under its canonical name.
type Definition struct {
	Name string
	New  Constructor
}

// Registry maps canonical view names to constructors. It is populated once by
// NewRegistry and is safe for concurrent reads afterwards.
type Registry struct {
	views map[string]Constructor
}

// NewRegistry builds a registry from defs. Empty or duplicate names are
// rejected.
func NewRegistry(defs ...Definition) (*Registry, error) {
	views := make(map[string]Constructor, len(defs))
	for _, def := range defs {
		if def.Name == "" || def.New == nil {
			return nil, fmt.Errorf("invalid view definition %q", def.Name)
		}
		if def.Name == RecordViewName {
			return nil, fmt.Errorf("view name %q is reserved for the fallback view", def.Name)
		}
		if _, exists := views[def.Name]; exists {
			return nil, fmt.Errorf("view %q registered twice", def.Name)
		}
		views[def.Name] = def.New
	}
	return &Registry{views: views}, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid definition list.
func MustNewRegistry(defs ...Definition) *Registry {
	reg, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Resolve returns the view registered for r's type locator, or a RecordView
// when r has no locator or no view matches it.
func (reg *Registry) Resolve(r Resource) View {
	locator, ok := r.TypeLocator()
	if !ok || locator == "" {
		return NewRecordView(r)
	}
	if ctor, found := reg.views[CanonicalName(locator)]; found {
		return ctor(r)
	}
	return NewRecordView(r)
}

// Has reports whether a view is registered under name.
func (reg *Registry) Has(name string) bool {
	_, ok := reg.views[name]
	return ok
}

// ViewName returns the name of the view that Resolve would pick for locator.
func (reg *Registry) ViewName(locator string) string {
	if locator == "" {
		return RecordViewName
	}
	if name := CanonicalName(locator); reg.Has(name) {
		return name
	}
	return RecordViewName
}

var defaultRegistry = MustNewRegistry(builtinViews()...)

// Default returns the registry holding the built-in views.
func Default() *Registry {
	return defaultRegistry
}
