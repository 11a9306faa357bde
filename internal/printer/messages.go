package printer

import (
	"fmt"

	"github.com/slok/tasklist/internal/model"
)

// Messages is the catalog of user facing texts. Fields ending in F are format strings.
type Messages struct {
	Labels model.StatusLabels

	MenuTitle         string
	MenuAdd           string
	MenuRemove        string
	MenuComplete      string
	MenuListAll       string
	MenuListCompleted string
	MenuSave          string
	MenuLoad          string
	MenuExit          string

	PromptChoice   string
	PromptTitle    string
	PromptRemove   string
	PromptComplete string
	PromptSave     string
	PromptLoad     string

	TaskAddedF     string
	TaskRemovedF   string
	TaskCompletedF string
	FileErrorF     string

	InvalidIndex        string
	EmptyList           string
	TaskListHeader      string
	CompletedListHeader string
	Saved               string
	Loaded              string
	InputError          string
	InvalidChoice       string
	Farewell            string
}

// EnglishMessages is the default catalog.
var EnglishMessages = Messages{
	Labels: model.DefaultStatusLabels,

	MenuTitle:         "Menu:",
	MenuAdd:           "Add task",
	MenuRemove:        "Remove task",
	MenuComplete:      "Mark task as completed",
	MenuListAll:       "Show all tasks",
	MenuListCompleted: "Show completed tasks",
	MenuSave:          "Save tasks to file",
	MenuLoad:          "Load tasks from file",
	MenuExit:          "Exit",

	PromptChoice:   "Choose an action: ",
	PromptTitle:    "Enter task title: ",
	PromptRemove:   "Enter the number of the task to remove: ",
	PromptComplete: "Enter the number of the task to mark as completed: ",
	PromptSave:     "Enter the file name to save to: ",
	PromptLoad:     "Enter the file name to load from: ",

	TaskAddedF:     "Task added: %s",
	TaskRemovedF:   "Task removed: %s",
	TaskCompletedF: "Task marked as completed: %s",
	FileErrorF:     "File error: %s",

	InvalidIndex:        "Invalid task index.",
	EmptyList:           "Task list is empty.",
	TaskListHeader:      "Task list:",
	CompletedListHeader: "Completed tasks:",
	Saved:               "Task list saved to file.",
	Loaded:              "Task list loaded from file.",
	InputError:          "Input error. Please enter valid data.",
	InvalidChoice:       "Invalid choice. Please choose an action from the menu.",
	Farewell:            "Exiting the program.",
}

// RussianMessages is the russian catalog.
var RussianMessages = Messages{
	Labels: model.StatusLabels{
		Done:    "[Выполнено]",
		NotDone: "[Не выполнено]",
	},

	MenuTitle:         "Меню:",
	MenuAdd:           "Добавить задачу",
	MenuRemove:        "Удалить задачу",
	MenuComplete:      "Отметить задачу как выполненную",
	MenuListAll:       "Показать все задачи",
	MenuListCompleted: "Показать выполненные задачи",
	MenuSave:          "Сохранить задачи в файл",
	MenuLoad:          "Загрузить задачи из файла",
	MenuExit:          "Выход",

	PromptChoice:   "Выберите действие: ",
	PromptTitle:    "Введите название задачи: ",
	PromptRemove:   "Введите номер задачи для удаления: ",
	PromptComplete: "Введите номер задачи для отметки как выполненной: ",
	PromptSave:     "Введите имя файла для сохранения: ",
	PromptLoad:     "Введите имя файла для загрузки: ",

	TaskAddedF:     "Задача добавлена: %s",
	TaskRemovedF:   "Задача удалена: %s",
	TaskCompletedF: "Задача помечена как выполненная: %s",
	FileErrorF:     "Ошибка при работе с файлом: %s",

	InvalidIndex:        "Некорректный индекс задачи.",
	EmptyList:           "Список задач пуст.",
	TaskListHeader:      "Список задач:",
	CompletedListHeader: "Список выполненных задач:",
	Saved:               "Список задач сохранен в файл.",
	Loaded:              "Список задач загружен из файла.",
	InputError:          "Ошибка ввода. Пожалуйста, введите корректные данные.",
	InvalidChoice:       "Некорректный выбор. Пожалуйста, выберите действие из меню.",
	Farewell:            "Выход из программы.",
}

// MessagesFor returns the catalog of a language, empty means english.
func MessagesFor(language string) (Messages, error) {
	switch language {
	case "", model.LanguageEnglish:
		return EnglishMessages, nil
	case model.LanguageRussian:
		return RussianMessages, nil
	}

	return Messages{}, fmt.Errorf("unknown language %q: %w", language, model.ErrNotValid)
}
