package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/hiit/internal/domain"
)

// QuickStartForm asks for the quick start parameters
type QuickStartForm struct {
	form *huh.Form
	rest string
	sets string
	skip bool
	work string
}

// NewQuickStartForm creates the form prefilled with current
func NewQuickStartForm(current domain.QuickStartParams) *QuickStartForm {
	f := &QuickStartForm{
		rest: strconv.Itoa(current.RestSec),
		sets: strconv.Itoa(current.Sets),
		skip: current.SkipLastRest,
		work: strconv.Itoa(current.WorkSec),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sets").
				Value(&f.sets).
				Validate(positiveInt("sets")),
			huh.NewInput().
				Title("Work (seconds)").
				Value(&f.work).
				Validate(positiveInt("work")),
			huh.NewInput().
				Title("Rest (seconds)").
				Value(&f.rest).
				Validate(nonNegativeInt("rest")),
			huh.NewConfirm().
				Title("Skip the rest after the last set?").
				Value(&f.skip),
		),
	)
	return f
}

// Run shows the form and blocks until it is submitted or aborted.
// Returns huh.ErrUserAborted when the user cancels.
func (f *QuickStartForm) Run() (domain.QuickStartParams, error) {
	if err := f.form.Run(); err != nil {
		return domain.QuickStartParams{}, err
	}
	return f.Params()
}

// Params converts the current field values
func (f *QuickStartForm) Params() (domain.QuickStartParams, error) {
	sets, err := strconv.Atoi(f.sets)
	if err != nil {
		return domain.QuickStartParams{}, fmt.Errorf("invalid sets: %w", err)
	}
	work, err := strconv.Atoi(f.work)
	if err != nil {
		return domain.QuickStartParams{}, fmt.Errorf("invalid work: %w", err)
	}
	rest, err := strconv.Atoi(f.rest)
	if err != nil {
		return domain.QuickStartParams{}, fmt.Errorf("invalid rest: %w", err)
	}
	return domain.QuickStartParams{
		RestSec:      rest,
		Sets:         sets,
		SkipLastRest: f.skip,
		WorkSec:      work,
	}, nil
}

func positiveInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}

func nonNegativeInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be zero or more", field)
		}
		return nil
	}
}
