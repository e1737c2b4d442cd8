package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable(n int) *Table {
	t := &Table{
		Columns: []Column{
			{Ordinal: 0, Name: "customer_id", Type: "VARCHAR"},
			{Ordinal: 1, Name: "amount", Type: "DOUBLE"},
		},
	}
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, []any{"C" + string(rune('A'+i)), float64(i)})
	}
	return t
}

func TestHead(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  int
	}{
		{"fewer than n", 3, 10, 3},
		{"exactly n", 10, 10, 10},
		{"more than n", 25, 10, 10},
		{"zero", 5, 0, 0},
		{"negative", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := sampleTable(tt.total)
			head := table.Head(tt.n)
			assert.Equal(t, tt.want, head.NumRows())
			assert.Equal(t, table.Columns, head.Columns)
			assert.Equal(t, tt.total, table.NumRows(), "source table must not change")
		})
	}
}

func TestHeadDoesNotAliasAppends(t *testing.T) {
	table := sampleTable(5)
	head := table.Head(2)
	head.Rows = append(head.Rows, []any{"X", 9.0})

	assert.Equal(t, "CC", table.Rows[2][0])
}

func TestColumnNames(t *testing.T) {
	table := sampleTable(1)
	assert.Equal(t, []string{"customer_id", "amount"}, table.ColumnNames())

	empty := &Table{}
	assert.Empty(t, empty.ColumnNames())
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "'/tmp/a.parquet'", quoteLiteral("/tmp/a.parquet"))
	assert.Equal(t, "'/tmp/o''brien.parquet'", quoteLiteral("/tmp/o'brien.parquet"))
}
