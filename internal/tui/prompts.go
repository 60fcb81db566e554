// Package tui holds the interactive prompts and full-window asset views
// shown when assetctl runs in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// Accessible reports whether prompts should run in accessible mode.
func Accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// ConfirmImport shows the import summary and asks whether the accepted
// records should be saved.
func ConfirmImport(summary string, accepted int) (bool, error) {
	confirm := false
	note := huh.NewNote().
		Title("Import summary").
		Description(summary)
	confirmField := huh.NewConfirm().
		Title(fmt.Sprintf("Save %d record(s)?", accepted)).
		Affirmative("Yes, save").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(Accessible(), huh.NewGroup(note, confirmField)); err != nil {
		return false, err
	}
	return confirm, nil
}

// PromptProjectName asks for the name of a new project.
func PromptProjectName() (string, error) {
	var name string
	input := huh.NewInput().
		Title("Project name").
		Placeholder("Finance").
		Value(&name).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name cannot be empty")
			}
			return nil
		})

	if err := runForm(Accessible(), huh.NewGroup(input)); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// PromptToken asks for an API token without echoing it.
func PromptToken(provider string) (string, error) {
	var token string
	input := huh.NewInput().
		Title(fmt.Sprintf("API token for %s", provider)).
		EchoMode(huh.EchoModePassword).
		Value(&token).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("token cannot be empty")
			}
			return nil
		})

	if err := runForm(Accessible(), huh.NewGroup(input)); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// WithSpinner runs fn while a spinner titled title is shown on out.
func WithSpinner(ctx context.Context, out io.Writer, title string, fn func(ctx context.Context) error) error {
	var actionErr error
	err := spinner.New().
		Title(title).
		Accessible(Accessible()).
		Output(out).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			actionErr = fn(ctx)
			return nil
		}).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return actionErr
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
