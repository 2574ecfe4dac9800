package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-dimsync/internal/scene"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

type reportOptions struct {
	color   bool
	verbose bool
}

func (o reportOptions) paint(code, s string) string {
	if !o.color || code == "" {
		return s
	}
	return code + s + ansiReset
}

// writeReport prints one line per named node, then the root size. Columns
// are padded before they are colored so escape codes never count as width.
func writeReport(w io.Writer, res scene.Result, opts reportOptions) {
	header := []string{"NAME", "KIND", "WIDTH", "HEIGHT"}
	if opts.verbose {
		header = append(header, "PASSES")
	}
	rows := [][]string{header}
	for _, p := range res.Probes {
		row := []string{p.Name, p.Kind, fmtNum(p.Size.Width), fmtNum(p.Size.Height)}
		if opts.verbose {
			passes := "-"
			if p.Kind == "scope" {
				passes = strconv.Itoa(p.Passes)
			}
			row = append(row, passes)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for r, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			text := cell
			if i < len(row)-1 {
				text = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString(opts.paint(cellColor(r, i), text))
		}
		fmt.Fprintln(w, b.String())
	}

	fmt.Fprintf(w, "root %sx%s after %d frame(s)\n", fmtNum(res.Root.Width), fmtNum(res.Root.Height), res.Frames)
}

func cellColor(row, col int) string {
	switch {
	case row == 0:
		return ansiBold
	case col == 0:
		return ansiCyan
	case col == 4:
		return ansiDim
	}
	return ""
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
