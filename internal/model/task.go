package model

// StatusLabels are the prefixes used when rendering a task status.
type StatusLabels struct {
	Done    string
	NotDone string
}

// DefaultStatusLabels are the english status labels.
var DefaultStatusLabels = StatusLabels{
	Done:    "[Done]",
	NotDone: "[Not done]",
}

// Task is a titled unit of work.
type Task struct {
	// Title is opaque, it can be anything including empty.
	Title     string
	Completed bool
}

// NewTask returns a new not completed task.
func NewTask(title string) Task {
	return Task{Title: title}
}

// MarkComplete marks the task as completed, there is no way back.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// Describe renders the task with the default status labels.
func (t Task) Describe() string {
	return t.DescribeWith(DefaultStatusLabels)
}

// DescribeWith renders the task status prefix followed by the title.
func (t Task) DescribeWith(labels StatusLabels) string {
	prefix := labels.NotDone
	if t.Completed {
		prefix = labels.Done
	}
	return prefix + " " + t.Title
}
