// Package tray puts the action menu in the system tray.
package tray

import (
	"log/slog"

	"github.com/taodev/dragster/internal/autostart"
	"github.com/taodev/dragster/internal/config"
)

// Host receives the commands chosen in the tray menu. Its methods are
// called from the tray goroutine.
type Host interface {
	Invoke(index int)
	Clear()
	Quit()
}

// Tray mirrors the action list of the drop window.
type Tray struct {
	host    Host
	actions []config.Action
	entry   autostart.Entry
	logger  *slog.Logger
}

// New creates a Tray. entry is toggled by the "Start at login" item.
func New(host Host, actions []config.Action, entry autostart.Entry, logger *slog.Logger) *Tray {
	return &Tray{
		host:    host,
		actions: actions,
		entry:   entry,
		logger:  logger,
	}
}
