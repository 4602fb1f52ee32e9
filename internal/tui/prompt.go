package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// Prompter pauses the workflow between optical-channel steps so the user
// can get the signing device ready before the camera opens.
type Prompter interface {
	// Confirm asks the user to proceed with the described step.
	// Returns ErrPromptDeclined when the user answers no or aborts.
	Confirm(title string) error
}

// HuhPrompter presents confirmation prompts with Charm Huh forms.
type HuhPrompter struct{}

// NewPrompter creates the default interactive prompter.
func NewPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Confirm presents a yes/no prompt defaulting to yes.
//
// Without a terminal on stdin there is nobody to ask; the workflow
// proceeds directly to the camera, matching scripted usage.
func (p *HuhPrompter) Confirm(title string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	CheckNoColor()

	confirmed := true
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Scan").
		Negative("Abort").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(ksignerTheme()).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ksignererrors.ErrPromptDeclined
		}
		return ksignererrors.Wrap(err, "confirm prompt failed")
	}

	if !confirmed {
		return ksignererrors.ErrPromptDeclined
	}
	return nil
}

// ksignerTheme maps the package colors onto Huh form states.
func ksignerTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}
