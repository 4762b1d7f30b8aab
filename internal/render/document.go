package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"nbcli/internal/view"

	"gopkg.in/yaml.v3"
)

// jsonIndent matches the four-space indentation of the YAML encoder.
const jsonIndent = "    "

// WriteJSON dumps result (a resource, a list of resources, or any plain
// value) as indented JSON. Nested resources become objects with their fields
// in original order. Views are not consulted.
func WriteJSON(w io.Writer, result any) error {
	var compact bytes.Buffer
	if err := writeJSONValue(&compact, normalize(result)); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", jsonIndent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONValue(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case view.HasFields:
		buf.WriteByte('{')
		for i, f := range v.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONValue(buf, f.Value); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.Number:
		if !json.Valid([]byte(v)) {
			return fmt.Errorf("invalid number %q", string(v))
		}
		buf.WriteString(string(v))
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return nil
}

// WriteYAML dumps result as a YAML document with the same structure as
// WriteJSON.
func WriteYAML(w io.Writer, result any) error {
	node, err := yamlNode(normalize(result))
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(4)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

func yamlNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case view.HasFields:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields() {
			child, err := yamlNode(f.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}, child)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case json.Number:
		// Untagged plain scalars keep the literal, which still resolves as
		// an int or a float.
		return &yaml.Node{Kind: yaml.ScalarNode, Value: string(v)}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// normalize turns a []view.Resource into the []any the encoders walk.
func normalize(result any) any {
	if list, ok := result.([]view.Resource); ok {
		items := make([]any, len(list))
		for i, r := range list {
			items[i] = r
		}
		return items
	}
	return result
}
