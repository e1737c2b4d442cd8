package dataset

// Column describes one column of a Table.
type Column struct {
	Ordinal int
	Name    string
	Type    string // database type name, e.g. VARCHAR, BIGINT, TIMESTAMP
}

// Table is an in-memory dataset. It is not modified after loading.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnNames returns the column names in source order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Head returns a table sharing the first n rows. Negative n is treated as 0.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{
		Columns: t.Columns,
		Rows:    t.Rows[:n:n],
	}
}
