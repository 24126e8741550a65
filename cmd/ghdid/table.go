package main

import (
	"fmt"
	"io"
	"strings"
)

// TableWriter provides simple table formatting
type TableWriter struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableWriter creates a new table writer
func NewTableWriter(headers []string) *TableWriter {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &TableWriter{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *TableWriter) AddRow(row []string) {
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
}

// Print writes the table with borders to w
func (t *TableWriter) Print(w io.Writer) {
	t.printSeparator(w, "┌", "┬", "┐")
	t.printRow(w, t.headers)
	t.printSeparator(w, "├", "┼", "┤")
	for _, row := range t.rows {
		t.printRow(w, row)
	}
	t.printSeparator(w, "└", "┴", "┘")
}

func (t *TableWriter) printSeparator(w io.Writer, left, mid, right string) {
	fmt.Fprint(w, left)
	for i, width := range t.widths {
		fmt.Fprint(w, strings.Repeat("─", width+2))
		if i < len(t.widths)-1 {
			fmt.Fprint(w, mid)
		}
	}
	fmt.Fprintln(w, right)
}

func (t *TableWriter) printRow(w io.Writer, row []string) {
	fmt.Fprint(w, "│")
	for i, cell := range row {
		if i < len(t.widths) {
			fmt.Fprintf(w, " %-*s │", t.widths[i], cell)
		}
	}
	fmt.Fprintln(w)
}
