package printer

import (
	"fmt"
	"io"
	"iter"

	"github.com/slok/tasklist/internal/model"
)

// TextPrinter prints tasks as numbered human readable lines using a message catalog.
type TextPrinter struct {
	writer io.Writer
	msgs   Messages
}

// NewTextPrinter creates a new text printer.
func NewTextPrinter(w io.Writer, msgs Messages) *TextPrinter {
	return &TextPrinter{writer: w, msgs: msgs}
}

// PrintTaskList prints a header and one `<position>. <status> <title>` line per task,
// positions are one based. An empty list only prints the empty list message.
func (t *TextPrinter) PrintTaskList(tasks iter.Seq2[int, model.Task]) error {
	empty := true
	for i, task := range tasks {
		if empty {
			empty = false
			fmt.Fprintf(t.writer, "\n%s\n", t.msgs.TaskListHeader)
		}
		fmt.Fprintf(t.writer, "%d. %s\n", i+1, task.DescribeWith(t.msgs.Labels))
	}

	if empty {
		return t.PrintMessage(t.msgs.EmptyList)
	}

	return nil
}

// PrintCompletedTaskList prints the header followed by the task descriptions.
// The header is printed even when there are no tasks, unlike PrintTaskList this
// never prints the empty list message.
func (t *TextPrinter) PrintCompletedTaskList(tasks iter.Seq2[int, model.Task]) error {
	fmt.Fprintf(t.writer, "\n%s\n", t.msgs.CompletedListHeader)
	for _, task := range tasks {
		fmt.Fprintln(t.writer, task.DescribeWith(t.msgs.Labels))
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TextPrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
