// Package launcher runs a menu action against the content of the drop
// window.
package launcher

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/taodev/dragster/internal/config"
	"github.com/taodev/dragster/internal/drop"
	"github.com/taodev/dragster/internal/expand"
	"github.com/taodev/dragster/internal/invoke"
)

// ErrNoFileURI aborts a file action when nothing dropped is a file URI.
// The dropped content is kept in that case.
var ErrNoFileURI = errors.New("no file URI found")

// Notifier shows one-shot messages to the user.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// Dispatcher expands action templates and hands them to a Runner.
type Dispatcher struct {
	expander *expand.Expander
	runner   invoke.Runner
	fs       afero.Fs
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Dispatcher. fs is used to check that dropped files exist.
func New(expander *expand.Expander, runner invoke.Runner, fs afero.Fs, notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		expander: expander,
		runner:   runner,
		fs:       fs,
		notifier: notifier,
		logger:   logger,
	}
}

// Dispatch runs action against dc. It returns ErrNoFileURI when a file
// action was aborted; every other outcome, including commands that fail
// to start, returns nil.
func (d *Dispatcher) Dispatch(action config.Action, dc drop.Context) error {
	log := d.logger.With("action", action.Name, "type", action.Kind.String(), "drop", dc.ID.String())

	switch action.Kind {
	case config.KindText:
		d.run(log, d.expander.Expand(action.Command, expand.Text(dc.Raw())))
	case config.KindURL:
		d.run(log, d.expander.Expand(action.Command, expand.URL(dc.Raw())))
	case config.KindFile:
		return d.dispatchFiles(log, action, dc)
	case config.KindSeparator:
	default:
		return fmt.Errorf("%w: %s", config.ErrUnknownKind, action.Kind)
	}
	return nil
}

// Invoke dispatches action against dc and reports whether the drop was
// consumed. Only an aborted file action keeps it; the caller clears the
// display otherwise.
func (d *Dispatcher) Invoke(action config.Action, dc drop.Context) bool {
	err := d.Dispatch(action, dc)
	if errors.Is(err, ErrNoFileURI) {
		return false
	}
	if err != nil {
		d.logger.Error("dispatch failed", "action", action.Name, "err", err)
	}
	return true
}

func (d *Dispatcher) dispatchFiles(log *slog.Logger, action config.Action, dc drop.Context) error {
	if !dc.HasFileURI() {
		log.Info("file action without file URI")
		d.notifier.Info("Info", "No file URI found.")
		return ErrNoFileURI
	}

	for _, f := range dc.Files() {
		exists, err := afero.Exists(d.fs, f.Path)
		if err != nil || !exists {
			log.Warn("dropped file missing", "path", f.Path, "err", err)
			d.notifier.Error("Error", fmt.Sprintf("File: %s doesn't exist.", f.Path))
			continue
		}
		d.run(log, d.expander.Expand(action.Command, expand.File(f)))
	}
	return nil
}

func (d *Dispatcher) run(log *slog.Logger, command string) {
	if err := d.runner.Run(command); err != nil {
		log.Error("run action failed", "cmd", command, "err", err)
	}
}
