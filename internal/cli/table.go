package cli

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// lastPingLayout renders timestamps in RFC 2822 form,
// e.g. "Tue, 24 Mar 2020 14:02:03 +0000".
const lastPingLayout = time.RFC1123Z

// renderTable writes a borderless table with a separator line under the
// titles and after every row.
func renderTable(w io.Writer, titles []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(titles)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetRowLine(true)
	t.SetCenterSeparator("+")
	t.SetColumnSeparator("|")
	t.SetRowSeparator("-")
	t.AppendBulk(rows)
	t.Render()
}
