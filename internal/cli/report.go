// Package cli provides the command-line interface for ksigner.
package cli

import (
	stderrors "errors"

	"github.com/selfcustody/ksigner/internal/errors"
	"github.com/selfcustody/ksigner/internal/tui"
)

// reportError prints a user-facing description of a workflow failure,
// followed by a suggested action when one exists. The raw error still
// travels up to main for the exit code.
func reportError(out tui.Output, err error) {
	if err == nil {
		return
	}

	out.Error(stderrors.New(errors.UserMessage(err)))

	if action := errors.Actionable(err); action != "" {
		out.Info(action)
	}
}
