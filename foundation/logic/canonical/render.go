// File: render.go
// Title: Truth Table Rendering
// Description: Plain text rendering of a truth table: one tab-separated
//              column per variable followed by the Result column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial rendering

package canonical

import (
	"bufio"
	"io"
	"strconv"
)

// EmptyTableMessage is printed for a table without rows
const EmptyTableMessage = "Table is empty!"

// Render writes the table as tab-separated text
func Render(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	if t == nil || len(t.Rows) == 0 {
		bw.WriteString(EmptyTableMessage + "\n")
		return bw.Flush()
	}

	for _, name := range t.Variables {
		bw.WriteString(name)
		bw.WriteByte('\t')
	}
	bw.WriteString("Result\n")

	for _, row := range t.Rows {
		for _, name := range t.Variables {
			bw.WriteString(strconv.FormatBool(row.Assignment[name]))
			bw.WriteByte('\t')
		}
		bw.WriteString(strconv.FormatBool(row.Result))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
