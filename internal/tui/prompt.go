package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter abstracts the confirmation prompt for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// NewPrompter returns a huh-based prompter on an interactive terminal and a
// line prompter reading in otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if IsInteractive() {
		return &TUIPrompter{}
	}
	return &LinePrompter{In: in, Out: out}
}

// TUIPrompter shows a huh confirm form.
type TUIPrompter struct{}

// Confirm shows a yes/no confirmation prompt. Aborting (ctrl+c) counts as no.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}

// LinePrompter asks on Out and reads one line from In.
// Only "y" and "yes" (any case) confirm.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints "title [y/N] " and reads the answer. An empty answer or EOF
// declines.
func (p *LinePrompter) Confirm(title, _ string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "%s [y/N] ", title); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
