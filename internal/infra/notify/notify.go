// Package notify delivers desktop notifications through an external
// notifier command (notify-send by default).
package notify

import (
	"fmt"
	"os/exec"

	"github.com/daybook-app/daybook/internal/domain"
)

// Ensure Notifier implements domain.Notifier.
var _ domain.Notifier = (*Notifier)(nil)

// Notifier shells out to the configured notifier command.
type Notifier struct {
	command string
	enabled bool
}

// New creates a Notifier for the given command. An empty command
// disables delivery.
func New(command string, enabled bool) *Notifier {
	return &Notifier{command: command, enabled: enabled}
}

// Available reports whether the notifier command exists on PATH.
func (n *Notifier) Available() bool {
	if !n.enabled || n.command == "" {
		return false
	}
	_, err := exec.LookPath(n.command)
	return err == nil
}

// Notify sends a notification with the given title and body.
func (n *Notifier) Notify(title, body string) error {
	if !n.Available() {
		return fmt.Errorf("notifier %q not available", n.command)
	}
	cmd := exec.Command(n.command, title, body) //nolint:gosec // Command comes from user config
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", n.command, err)
	}
	return nil
}
