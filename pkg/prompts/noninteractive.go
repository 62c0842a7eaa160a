// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
// Commands should catch this error and provide actionable guidance.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter implements Prompter but fails fast on any prompt attempt.
type NonInteractivePrompter struct{}

var _ Prompter = (*NonInteractivePrompter)(nil)

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (*NonInteractivePrompter) fail(operation string) error {
	return fmt.Errorf("%w: %s - use flags to provide required values, or unset %s",
		ErrNonInteractive, operation, EnvNonInteractive)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureNoYes(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CapturePrivateKey(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}
