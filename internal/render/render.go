// Package render turns collected batch results into report text. It is
// deliberately free of git knowledge: input order and field contents
// are taken as-is, only layout and coloring happen here.
package render

import (
	"fmt"
	"strings"

	"github.com/hgranberg/mgit/internal/git"
	"github.com/hgranberg/mgit/internal/ui/styles"
)

// NoReposMessage is printed when discovery finds nothing to do.
const NoReposMessage = "No Git repos found..."

// PullReport renders one block per pull result, preserving the order of
// results (completion order: the interleaving reflects real fetch
// durations and is kept on purpose).
func PullReport(results []git.PullResult, pal styles.Palette) string {
	var b strings.Builder
	for _, res := range results {
		b.WriteString("\n")
		b.WriteString(pal.Header.Render(res.Name + ":"))
		b.WriteString("\n")

		if res.Err != nil {
			b.WriteString(pal.Dirty.Render(res.Err.Error()))
			b.WriteString("\n")
			continue
		}
		if out := strings.TrimRight(res.Stdout, " \t\r\n"); out != "" {
			b.WriteString(out)
			b.WriteString("\n")
		}
		if errOut := strings.TrimRight(res.Stderr, " \t\r\n"); errOut != "" {
			b.WriteString(errOut)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// StatusReport renders the aligned status table. Statuses must already
// be sorted by name; the column width is derived from the longest name.
func StatusReport(root string, statuses []git.Status, pal styles.Palette) string {
	if len(statuses) == 0 {
		return NoReposMessage + "\n"
	}

	width := 0
	for _, st := range statuses {
		if len(st.Name) > width {
			width = len(st.Name)
		}
	}
	width += 2

	var b strings.Builder
	b.WriteString(pal.Header.Render(root + ":"))
	b.WriteString("\n")
	for _, st := range statuses {
		fmt.Fprintf(&b, "%-*s", width, st.Name)
		b.WriteString(statusCell(st, pal))
		b.WriteString("\n")
	}
	return b.String()
}

// statusCell picks the branch cell: dirty dominates unpushed, both
// false means clean.
func statusCell(st git.Status, pal styles.Palette) string {
	switch {
	case st.Err != nil:
		return pal.Dirty.Render("error: " + st.Err.Error())
	case st.Dirty:
		return pal.Dirty.Render(st.Branch + "*")
	case st.Unpushed:
		return pal.Unpushed.Render(st.Branch + "+")
	default:
		return pal.Clean.Render(st.Branch)
	}
}
