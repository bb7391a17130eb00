// Package notify provides cross-platform desktop notifications.
// It uses github.com/gen2brain/beeep for cross-platform notification support.
package notify

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/calweek/calweek/internal/logging"
)

// Notifier handles desktop notifications.
type Notifier struct {
	logger  *logging.Logger
	enabled bool
	mu      sync.RWMutex
}

// New creates an enabled notifier.
func New(logger *logging.Logger) *Notifier {
	return &Notifier{logger: logger, enabled: true}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// AlreadyRunning tells the user a redundant launch was ignored and the
// active instance was asked to show itself.
func (n *Notifier) AlreadyRunning() {
	if !n.IsEnabled() {
		return
	}

	title := "CalWeek"
	message := "CalWeek is already running.\nOpening the calendar of the active instance."

	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Msg("failed to send already-running notification")
	}
}

// StartupChanged tells the user the start-at-login state after a toggle.
func (n *Notifier) StartupChanged(registered bool) {
	if !n.IsEnabled() {
		return
	}

	title := "CalWeek"
	message := "CalWeek will no longer start at login."
	if registered {
		message = "CalWeek will start at login."
	}

	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Msg("failed to send startup notification")
	}
}

// StartupError surfaces a failed start-at-login toggle.
func (n *Notifier) StartupError(err error) {
	if !n.IsEnabled() {
		return
	}

	title := "CalWeek"
	message := fmt.Sprintf("Could not update the start-at-login entry:\n%s", truncate(err.Error(), 100))

	if sendErr := n.send(title, message); sendErr != nil {
		n.logger.Warn().Err(sendErr).Msg("failed to send startup error notification")
	}
}

// send is the internal method that actually sends the notification.
func (n *Notifier) send(title, message string) error {
	// beeep.Notify is cross-platform:
	// - Windows: toast notifications
	// - macOS: notification center
	// - Linux: D-Bus notifications
	return beeep.Notify(title, message, "")
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
