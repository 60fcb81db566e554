package domain

// RawRow maps a header, exactly as it appeared in the source file (surrounding
// whitespace removed), to the cell value found under it. Values may be empty.
type RawRow map[string]string

// Matrix is a decoded file: an ordered list of rows of cells. Row 0 holds the
// headers.
type Matrix [][]string

// Headers returns the header row, or nil for an empty matrix.
func (m Matrix) Headers() []string {
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

// DataRows returns every row after the header row.
func (m Matrix) DataRows() [][]string {
	if len(m) < 2 {
		return nil
	}
	return m[1:]
}
