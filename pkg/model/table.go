package model

// Table is a 2D cell matrix with an optional header row. Cells can be any
// value; they are stringified and escaped at render time.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Width reports the widest row, headers included.
func (t Table) Width() int {
	width := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Normalized pads short rows (and a short header row, when one is present)
// with empty cells so every row matches Width(). Nothing is ever truncated;
// ragged input is repaired rather than rejected.
func (t Table) Normalized() Table {
	width := t.Width()
	out := Table{}

	if len(t.Headers) > 0 {
		out.Headers = make([]string, width)
		copy(out.Headers, t.Headers)
	}

	out.Rows = make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		padded := make([]any, width)
		for i := range padded {
			if i < len(row) {
				padded[i] = row[i]
			} else {
				padded[i] = ""
			}
		}
		out.Rows = append(out.Rows, padded)
	}
	return out
}
