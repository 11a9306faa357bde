package printer

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"github.com/slok/tasklist/internal/model"
)

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTaskList prints tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks iter.Seq2[int, model.Task]) error {
	return t.printTable(tasks)
}

// PrintCompletedTaskList prints completed tasks in a table format.
func (t *TablePrinter) PrintCompletedTaskList(tasks iter.Seq2[int, model.Task]) error {
	return t.printTable(tasks)
}

func (t *TablePrinter) printTable(tasks iter.Seq2[int, model.Task]) error {
	var tw *tabwriter.Writer
	for i, task := range tasks {
		if tw == nil {
			tw = tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

			// Print header.
			fmt.Fprintln(tw, "#\tDONE\tTITLE")
		}

		done := "no"
		if task.Completed {
			done = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, done, task.Title)
	}

	if tw == nil {
		return nil
	}

	return tw.Flush()
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
