package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"jsxform/internal/moduleimports"
)

// writeExplainTable prints one row per registry entry, in emission order.
func writeExplainTable(out io.Writer, entries []moduleimports.Entry) {
	rows := [][]string{{"#", "kind", "source", "bindings"}}
	for i, e := range entries {
		rows = append(rows, []string{fmt.Sprint(i), e.Kind.String(), e.Source, bindingList(e)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[c]))
			b.WriteString("  ")
		}
		fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
}

func bindingList(e moduleimports.Entry) string {
	names := make([]string, len(e.Specifiers))
	for i, s := range e.Specifiers {
		if s.Local != "" && s.Local != s.Imported {
			names[i] = s.Imported + " as " + s.Local
		} else {
			names[i] = s.Imported
		}
	}
	return strings.Join(names, ", ")
}
