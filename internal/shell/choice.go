package shell

// Choice is a menu option.
type Choice int

const (
	ChoiceExit Choice = iota
	ChoiceAdd
	ChoiceRemove
	ChoiceComplete
	ChoiceListAll
	ChoiceListCompleted
	ChoiceSave
	ChoiceLoad

	// ChoiceUnknown is any number that is not on the menu.
	ChoiceUnknown Choice = -1
)

// menuOrder is the order options are shown in the menu, exit goes last.
var menuOrder = []Choice{
	ChoiceAdd,
	ChoiceRemove,
	ChoiceComplete,
	ChoiceListAll,
	ChoiceListCompleted,
	ChoiceSave,
	ChoiceLoad,
	ChoiceExit,
}

// ParseChoice decodes a menu number.
func ParseChoice(n int) Choice {
	if n < int(ChoiceExit) || n > int(ChoiceLoad) {
		return ChoiceUnknown
	}
	return Choice(n)
}
