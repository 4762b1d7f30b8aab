package render

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// ColumnPadding is added to the widest cell of every column.
const ColumnPadding = 2

// ColumnWidths returns, per column, the widest cell in rows plus ColumnPadding.
func ColumnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, r := range rows {
		for c, cell := range r {
			if n := utf8.RuneCountInString(cell); n > widths[c] {
				widths[c] = n
			}
		}
	}
	for c := range widths {
		widths[c] += ColumnPadding
	}
	return widths
}

// RenderTable writes m as aligned, left-justified columns, one row per line.
// When header is false the first row is dropped and widths are computed over
// the remaining rows only. m must hold a header and at least one data row.
func RenderTable(w io.Writer, m Matrix, header bool) error {
	if len(m) < 2 {
		return &ShapeError{Err: ErrNoDataRows}
	}
	if err := m.validate(); err != nil {
		return err
	}

	rows := [][]string(m)
	if !header {
		rows = rows[1:]
	}
	widths := ColumnWidths(rows)

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for _, r := range rows {
		line.Reset()
		for c, cell := range r {
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", widths[c]-utf8.RuneCountInString(cell)))
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
