//go:build !linux && !darwin && !windows

package autostart

import (
	"errors"

	"github.com/calweek/calweek/internal/logging"
)

// ErrUnsupported is returned when the platform has no autostart backend.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

type unsupportedManager struct{}

func newManager(logger *logging.Logger) Manager {
	logger.Warn().Msg("start-at-login is not supported on this platform")
	return unsupportedManager{}
}

func (unsupportedManager) IsRegistered() bool { return false }

func (unsupportedManager) RegisteredPath() string { return "" }

func (unsupportedManager) Register(execPath string) error { return ErrUnsupported }

func (unsupportedManager) Unregister() error { return ErrUnsupported }
