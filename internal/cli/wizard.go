package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// intakeHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func intakeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// questionForm builds a single-field huh form for one question, writing
// the getter returns the typed answer after the form has run.
func questionForm(q contract.QuestionView) (*huh.Form, func() any) {
	var field huh.Field
	var getter func() any

	switch q.Input.Kind {
	case domain.InputSingleChoice:
		options := make([]huh.Option[string], 0, len(q.Input.Options))
		for _, opt := range q.Input.Options {
			options = append(options, huh.NewOption(opt.Label, opt.ID))
		}
		value := new(string)
		field = huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Help).
			Options(options...).
			Value(value)
		getter = func() any { return *value }

	case domain.InputMultiChoice:
		options := make([]huh.Option[string], 0, len(q.Input.Options))
		for _, opt := range q.Input.Options {
			options = append(options, huh.NewOption(opt.Label, opt.ID))
		}
		value := new([]string)
		field = huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Help).
			Options(options...).
			Value(value)
		getter = func() any { return *value }

	case domain.InputYesNo:
		value := new(bool)
		field = huh.NewConfirm().
			Title(q.Title).
			Description(q.Help).
			Affirmative("Yes").
			Negative("No").
			Value(value)
		getter = func() any { return *value }

	case domain.InputNumber, domain.InputScale:
		value := new(string)
		title := q.Title
		if q.Input.Unit != "" {
			title = fmt.Sprintf("%s (%s)", title, q.Input.Unit)
		}
		field = huh.NewInput().
			Title(title).
			Description(q.Help).
			Value(value).
			Validate(validateIntInRange(q.Input.Min, q.Input.Max))
		getter = func() any {
			n, _ := strconv.Atoi(*value)
			return n
		}

	default:
		value := new(string)
		field = huh.NewInput().
			Title(q.Title).
			Description(q.Help).
			Value(value)
		getter = func() any { return *value }
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(intakeHuhTheme()).
		WithShowHelp(false)
	return form, getter
}

// validateIntInRange accepts an integer, optionally bounded.
func validateIntInRange(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if max > min && (v < min || v > max) {
			return fmt.Errorf("enter a number between %d and %d", min, max)
		}
		return nil
	}
}
