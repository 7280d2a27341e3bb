package library

import (
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// EmptyNotice is the whole report for a catalog with no items.
const EmptyNotice = "No items in the library."

const reportRule = "========================================"

// WriteReport writes the inventory report to w: every item's Describe output
// in insertion order followed by the total count, or EmptyNotice when the
// catalog is empty. It does not modify the catalog.
func (c *Catalog) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, FormatReport(c.Items()))
	return err
}

// Report returns the inventory report as a string.
func (c *Catalog) Report() string {
	return FormatReport(c.Items())
}

// FormatReport renders items as an inventory report.
func FormatReport(items []types.Item) string {
	if len(items) == 0 {
		return EmptyNotice + "\n"
	}

	var b strings.Builder
	b.WriteString(reportRule + "\n")
	b.WriteString("        LIBRARY INVENTORY\n")
	b.WriteString(reportRule + "\n")
	for _, item := range items {
		b.WriteString(item.Describe())
		b.WriteByte('\n')
	}
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Total Items: %d\n", len(items))
	b.WriteString(reportRule + "\n")
	return b.String()
}
