package selection

import (
	"errors"

	"github.com/ishaan812/linecounter/internal/prompt"
)

// Menu holds the text shown around the list.
type Menu struct {
	Title  string
	Prompt string
}

// Run renders f and applies user input until an empty line is entered.
// Invalid input is reported and the list shown again. Errors from the
// Lister, including prompt.ErrCanceled, end the loop.
func Run(ui prompt.Lister, f *Filter, menu Menu) error {
	for {
		ui.Clear()
		ui.Title(menu.Title)
		for i := 0; i < f.Len(); i++ {
			ui.Item(i+1, f.Label(i), f.Included(i))
		}

		input, err := ui.ReadLine(menu.Prompt)
		if err != nil {
			return err
		}

		done, err := f.Apply(input)
		if done {
			return nil
		}

		var inputErr *InputError
		if errors.As(err, &inputErr) {
			ui.Warn(inputErr.Error())
			if err := ui.WaitKey(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
}
