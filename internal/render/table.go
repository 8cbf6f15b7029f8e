package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tablelab/sqltour/internal/relation"
)

// printer groups integers per English locale conventions.
var printer = message.NewPrinter(language.English)

// Table writes rel as an aligned text table: a header row of column
// names, then one line per row.
func Table(w io.Writer, rel *relation.Relation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(rel.Schema.Names(), "\t"))

	for _, row := range rel.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = Cell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Cell formats a single value for table display.
func Cell(v relation.Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return printer.Sprintf("%d", val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
