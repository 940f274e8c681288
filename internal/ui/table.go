package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table whose first row is the header.
// Rows are written tab-separated if the table cannot be rendered.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Warning.Printfln("Failed to render table: %s", err.Error())

		for _, row := range data {
			fmt.Fprintln(writer, strings.Join(row, "\t"))
		}

		return
	}

	fmt.Fprintln(writer, str)
}
