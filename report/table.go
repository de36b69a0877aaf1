package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// NewListTable builds a table with a header row and right-aligned numbers.
func NewListTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	return t
}

// NewDetailsTable builds a borderless two-column label/value table.
func NewDetailsTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetBorder(false)
	t.SetColumnSeparator(" ")
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)

	return t
}

// NewMatrixTable builds a borderless grid for an augmented matrix; the
// caller inserts the "|" column before b.
func NewMatrixTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetBorder(false)
	t.SetColumnSeparator(" ")
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	return t
}
