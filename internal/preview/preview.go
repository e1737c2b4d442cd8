// Package preview renders a dataset head and its column listing as plain text.
package preview

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rickgao/energy-billing/internal/dataset"
)

// MaxCellWidth is the longest cell printed before truncation.
const MaxCellWidth = 50

// Render writes the first n rows of table followed by every column name.
func Render(w io.Writer, table *dataset.Table, n int) error {
	if err := RenderHead(w, table, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return RenderColumns(w, table)
}

// RenderHead writes up to n rows as an aligned table with a leading row index,
// then a shape line.
func RenderHead(w io.Writer, table *dataset.Table, n int) error {
	head := table.Head(n)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(head.Columns)+1)
	header = append(header, "")
	header = append(header, head.ColumnNames()...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	cells := make([]string, 0, len(head.Columns)+1)
	for i, row := range head.Rows {
		cells = cells[:0]
		cells = append(cells, strconv.Itoa(i))
		for _, v := range row {
			cells = append(cells, FormatValue(v))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "\n[%d rows x %d columns]\n", table.NumRows(), len(table.Columns))
	return err
}

// RenderColumns writes every column name, one per line, with its type.
func RenderColumns(w io.Writer, table *dataset.Table) error {
	if _, err := fmt.Fprintf(w, "Columns (%d):\n", len(table.Columns)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range table.Columns {
		fmt.Fprintf(tw, "  %s\t%s\n", col.Name, col.Type)
	}
	return tw.Flush()
}

// FormatValue renders a single cell on one line.
func FormatValue(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		return "None"
	case string:
		s = v
	default:
		s = formatNested(v)
	}

	s = cleanCell(s)

	if utf8.RuneCountInString(s) > MaxCellWidth {
		r := []rune(s)
		s = string(r[:MaxCellWidth-3]) + "..."
	}
	return s
}

// formatNested renders v, quoting strings that sit inside lists and structs.
func formatNested(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case string:
		return v
	case []byte:
		return formatBytes(v)
	case uuid.UUID:
		return v.String()
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return formatTime(v)
	case bool:
		return strconv.FormatBool(v)
	case duckdb.Interval:
		return formatInterval(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatElem(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = "'" + k + "': " + formatElem(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case duckdb.Map:
		parts := make([]string, 0, len(v))
		for k, e := range v {
			parts = append(parts, formatElem(k)+"="+formatElem(e))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

func formatElem(v any) string {
	if s, ok := v.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
	}
	return formatNested(v)
}

// formatBytes prints a blob as b'...', escaping everything outside printable ASCII.
func formatBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteString("b'")
	for _, c := range b {
		switch {
		case c == '\\' || c == '\'':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

// formatInterval prints the non-zero parts, e.g. "1 year 2 months 3 days 04:05:06".
func formatInterval(iv duckdb.Interval) string {
	var parts []string
	unit := func(n int64, name string) {
		switch {
		case n == 0:
		case n == 1 || n == -1:
			parts = append(parts, fmt.Sprintf("%d %s", n, name))
		default:
			parts = append(parts, fmt.Sprintf("%d %ss", n, name))
		}
	}
	unit(int64(iv.Months/12), "year")
	unit(int64(iv.Months%12), "month")
	unit(int64(iv.Days), "day")

	if iv.Micros != 0 || len(parts) == 0 {
		d := time.Duration(iv.Micros) * time.Microsecond
		sign := ""
		if d < 0 {
			sign = "-"
			d = -d
		}
		clock := fmt.Sprintf("%s%02d:%02d:%02d", sign, int64(d/time.Hour), int64(d/time.Minute)%60, int64(d/time.Second)%60)
		if us := int64(d/time.Microsecond) % 1e6; us != 0 {
			clock += fmt.Sprintf(".%06d", us)
		}
		parts = append(parts, clock)
	}
	return strings.Join(parts, " ")
}

// cleanCell replaces control characters and invalid UTF-8 with spaces so
// tabwriter never sees a cell or line break inside a value.
func cleanCell(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	if t.Nanosecond() == 0 {
		return t.Format(time.DateTime)
	}
	return t.Format("2006-01-02 15:04:05.000000")
}
