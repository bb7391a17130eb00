//go:build windows

package autostart

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/calweek/calweek/internal/logging"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// registryManager persists the startup entry as a string value under the
// per-user Run key.
type registryManager struct {
	logger *logging.Logger
}

func newManager(logger *logging.Logger) Manager {
	return &registryManager{logger: logger}
}

func (r *registryManager) IsRegistered() bool {
	return r.RegisteredPath() != ""
}

func (r *registryManager) RegisteredPath() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	value, _, err := key.GetStringValue(AppName)
	if err != nil {
		return ""
	}
	return value
}

func (r *registryManager) Register(execPath string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(AppName, execPath); err != nil {
		return fmt.Errorf("failed to write startup value: %w", err)
	}
	r.logger.Debug().Str("value", AppName).Msg("startup registry value written")
	return nil
}

func (r *registryManager) Unregister() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(AppName); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("failed to delete startup value: %w", err)
	}
	return nil
}
