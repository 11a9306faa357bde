package printer

import (
	"iter"

	"github.com/slok/tasklist/internal/model"
)

// Printer knows how to print task information in different formats.
// Task sequences are keyed by the zero based store position of each task.
type Printer interface {
	PrintTaskList(tasks iter.Seq2[int, model.Task]) error
	PrintCompletedTaskList(tasks iter.Seq2[int, model.Task]) error
	PrintMessage(msg string) error
}
