package table

// Table is an ordered set of named columns holding string cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NumRows returns the number of data rows (header excluded).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Headers)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of the named column in row order. Rows too short
// to reach the column contribute nothing. Returns nil for unknown names.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	cells := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			cells = append(cells, row[idx])
		}
	}
	return cells
}

// DropColumns returns a new Table without the named columns. Names not
// present are skipped silently. Row count, row order, and the cells of
// retained columns are unchanged; short rows stay short.
func (t *Table) DropColumns(names []string) *Table {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		if idx := t.ColumnIndex(name); idx >= 0 {
			drop[idx] = true
		}
	}

	keep := make([]int, 0, len(t.Headers))
	headers := make([]string, 0, len(t.Headers))
	for i, h := range t.Headers {
		if !drop[i] {
			keep = append(keep, i)
			headers = append(headers, h)
		}
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]string, 0, len(keep))
		for _, i := range keep {
			if i < len(row) {
				out = append(out, row[i])
			}
		}
		rows[r] = out
	}
	return &Table{Headers: headers, Rows: rows}
}

// Select returns a new Table restricted to the named columns, in the order
// given. Unknown names are skipped.
func (t *Table) Select(names []string) *Table {
	idxs := make([]int, 0, len(names))
	headers := make([]string, 0, len(names))
	for _, name := range names {
		if idx := t.ColumnIndex(name); idx >= 0 {
			idxs = append(idxs, idx)
			headers = append(headers, name)
		}
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]string, 0, len(idxs))
		for _, i := range idxs {
			if i < len(row) {
				out = append(out, row[i])
			} else {
				out = append(out, "")
			}
		}
		rows[r] = out
	}
	return &Table{Headers: headers, Rows: rows}
}

// Head returns a new Table holding at most n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	rows := make([][]string, n)
	copy(rows, t.Rows[:n])
	headers := make([]string, len(t.Headers))
	copy(headers, t.Headers)
	return &Table{Headers: headers, Rows: rows}
}
