package formaters

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

func newTable(w io.Writer, columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(columns...).WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	return tbl
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
