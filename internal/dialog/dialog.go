// Package dialog presents a modal yes/no question to the user. The rendering
// technology is an opaque collaborator; callers only see Confirm.
package dialog

import (
	"context"

	"voicebox/internal/execx"
)

// Prompter asks the user a yes/no question and blocks until answered.
type Prompter interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// New returns the platform prompter backed by the given runner.
func New(runner execx.Runner) Prompter {
	return newPlatformPrompter(runner)
}

// Scripted is a test prompter replaying canned answers.
type Scripted struct {
	Answers []bool
	Errs    []error
	Calls   int
	Titles  []string
}

func (s *Scripted) Confirm(_ context.Context, title, _ string) (bool, error) {
	idx := s.Calls
	s.Calls++
	s.Titles = append(s.Titles, title)
	var err error
	if idx < len(s.Errs) {
		err = s.Errs[idx]
	}
	answer := false
	if idx < len(s.Answers) {
		answer = s.Answers[idx]
	}
	return answer, err
}

var _ Prompter = (*Scripted)(nil)
