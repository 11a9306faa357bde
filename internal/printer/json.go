package printer

import (
	"encoding/json"
	"io"
	"iter"

	"github.com/slok/tasklist/internal/model"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskItem represents a task in the list output.
type taskItem struct {
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintTaskList prints tasks as a JSON array, positions are one based.
func (j *JSONPrinter) PrintTaskList(tasks iter.Seq2[int, model.Task]) error {
	items := []taskItem{}
	for i, t := range tasks {
		items = append(items, taskItem{
			Position:  i + 1,
			Title:     t.Title,
			Completed: t.Completed,
		})
	}

	return j.encode(items)
}

// PrintCompletedTaskList prints completed tasks as a JSON array.
func (j *JSONPrinter) PrintCompletedTaskList(tasks iter.Seq2[int, model.Task]) error {
	return j.PrintTaskList(tasks)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
