package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders doc as aligned plain text for terminals.
func WriteText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n%s\n%s\n", doc.Title, doc.Subtitle, doc.GeneratedOn())
	for _, s := range doc.Sections {
		fmt.Fprintf(tw, "\n%s\n", s.Title)
		for _, r := range s.Rows {
			mark := ""
			if r.Highlight {
				mark = " *"
			}
			fmt.Fprintf(tw, "  %s\t%s%s\n", r.Label, r.Value, mark)
		}
	}
	if doc.URL != "" {
		fmt.Fprintf(tw, "\n%s\n", doc.URL)
	}
	if doc.Disclaimer != "" {
		fmt.Fprintf(tw, "\nImportant Disclaimer: %s\n", doc.Disclaimer)
	}
	return tw.Flush()
}
