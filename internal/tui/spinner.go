package tui

import (
	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action under a spinner titled title. Outside an
// interactive terminal the action runs directly.
func RunWithSpinner(title string, action func() error) error {
	if !IsInteractive() {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() { actionErr = action() }).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
