package netbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"nbcli/internal/view"
)

// labelFields is the order in which fields are tried when a nested record is
// collapsed to a single cell.
var labelFields = []string{"name", "label", "display", "address", "prefix", "cid", "vid", "value", "id"}

// Record is one API object with its fields in document order.
type Record struct {
	locator string
	fields  []view.Field
	index   map[string]int
}

// NewRecord builds a record from ordered fields. When locator is empty it is
// derived from a "url" field, if any.
func NewRecord(locator string, fields ...view.Field) *Record {
	r := &Record{fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		r.index[f.Name] = i
	}
	if locator == "" {
		if u, ok := r.Field("url"); ok {
			if s, ok := u.(string); ok {
				locator, _ = LocatorFromURL(s)
			}
		}
	}
	r.locator = locator
	return r
}

// TypeLocator implements view.HasTypeLocator.
func (r *Record) TypeLocator() (string, bool) {
	return r.locator, r.locator != ""
}

// Fields implements view.HasFields.
func (r *Record) Fields() []view.Field {
	return r.fields
}

// Field implements view.HasFields.
func (r *Record) Field(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Label returns the identifying value used when the record is nested inside
// another one.
func (r *Record) Label() string {
	for _, name := range labelFields {
		if v, ok := r.Field(name); ok && v != nil {
			if s := view.Stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func (r *Record) String() string {
	return r.Label()
}

// DecodeRecord parses a single JSON object. Numbers are kept as json.Number
// so documents can be dumped without changing their values.
func DecodeRecord(data []byte, locator string) (*Record, error) {
	dec := newDecoder(data)
	tok, err := firstToken(dec)
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected a JSON object, got %s", tokenKind(tok))
	}
	r, err := decodeObject(dec, locator)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	return r, nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func firstToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode response: empty document")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return tok, nil
}

func expectEnd(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: unexpected data after the document")
	}
	return nil
}

// decodeObject reads the members of an object whose opening brace has
// already been consumed.
func decodeObject(dec *json.Decoder, locator string) (*Record, error) {
	var fields []view.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, view.Field{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewRecord(locator, fields...), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		return decodeObject(dec, "")
	case json.Delim('['):
		items := make([]any, 0)
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return tok, nil
}

// decodeRecords reads an array of objects whose opening bracket has already
// been consumed.
func decodeRecords(dec *json.Decoder, locator string) ([]*Record, error) {
	records := make([]*Record, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if tok != json.Delim('{') {
			return nil, fmt.Errorf("expected list items to be objects, got %s", tokenKind(tok))
		}
		r, err := decodeObject(dec, locator)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return records, nil
}

func tokenKind(tok json.Token) string {
	switch tok {
	case json.Delim('['):
		return "array"
	case json.Delim('{'):
		return "object"
	default:
		return "scalar"
	}
}

// Resources converts records to the interface the rendering pipeline expects.
func Resources(records []*Record) []view.Resource {
	out := make([]view.Resource, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
