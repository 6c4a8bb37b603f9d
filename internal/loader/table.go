package loader

// Table is a parsed tabular file: a header row plus data rows normalized to
// the header width. Column names are kept verbatim, including surrounding
// whitespace, because survey exports use them as labels.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table, padding short rows and truncating long ones.
func NewTable(name string, header []string, rows [][]string) *Table {
	t := &Table{Name: name, Header: append([]string(nil), header...)}
	ncol := len(header)
	t.Rows = make([][]string, 0, len(rows))
	for _, rec := range rows {
		row := make([]string, ncol)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	t.reindex()
	return t
}

// Empty returns a table with no columns and no rows.
func Empty(name string) *Table {
	return &Table{Name: name, index: map[string]int{}}
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		// first occurrence wins for duplicated headers
		if _, ok := t.index[h]; !ok {
			t.index[h] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table has neither columns nor rows.
func (t *Table) IsEmpty() bool {
	return t == nil || (len(t.Header) == 0 && len(t.Rows) == 0)
}

// Has reports whether a column with the exact name exists.
func (t *Table) Has(col string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[col]
	return ok
}

// Cell returns the value at row i for the named column.
func (t *Table) Cell(i int, col string) (string, bool) {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return "", false
	}
	j, ok := t.index[col]
	if !ok {
		return "", false
	}
	return t.Rows[i][j], true
}

// Column returns every value of the named column, or nil when absent.
func (t *Table) Column(col string) []string {
	if !t.Has(col) {
		return nil
	}
	j := t.index[col]
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out
}

// Where returns a new table holding the rows whose value in col satisfies keep.
// Rows are dropped entirely when the column does not exist.
func (t *Table) Where(col string, keep func(string) bool) *Table {
	if t == nil {
		return Empty("")
	}
	out := &Table{Name: t.Name, Header: t.Header, index: t.index}
	j, ok := t.index[col]
	if !ok {
		return out
	}
	for _, row := range t.Rows {
		if keep(row[j]) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
