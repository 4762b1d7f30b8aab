package render

import (
	"bytes"
	"io"

	"nbcli/internal/view"
)

// Options carries the per-command output settings.
type Options struct {
	// Kind selects the output path. Empty means ViewTable.
	Kind ViewKind
	// Columns overrides the displayed columns.
	Columns []string
	// NoHeader suppresses the header row.
	NoHeader bool
}

// Printer renders results with fixed Options.
type Printer struct {
	registry *view.Registry
	options  Options
}

// NewPrinter returns a Printer resolving views through reg.
func NewPrinter(reg *view.Registry, options Options) *Printer {
	if reg == nil {
		reg = view.Default()
	}
	return &Printer{registry: reg, options: options}
}

// Options returns the settings the printer was built with.
func (p *Printer) Options() Options {
	return p.options
}

// Print writes result to w. Nothing is written when rendering fails.
func (p *Printer) Print(w io.Writer, result any) error {
	switch p.options.Kind {
	case ViewJSON:
		return WriteJSON(w, result)
	case ViewYAML:
		return WriteYAML(w, result)
	case ViewDetail:
		return WriteDetail(w, result, p.options.Columns, !p.options.NoHeader)
	default:
		m, err := BuildMatrix(p.registry, result, p.options.Columns)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := RenderTable(&buf, m, !p.options.NoHeader); err != nil {
			return err
		}
		_, err = w.Write(buf.Bytes())
		return err
	}
}
