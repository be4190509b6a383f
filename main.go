package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taodev/dragster/internal/config"
	"github.com/taodev/dragster/internal/expand"
	"github.com/taodev/dragster/internal/invoke"
	"github.com/taodev/dragster/internal/tray"
	"github.com/taodev/dragster/internal/ui"
)

const appName = "dragster"

// Version is set at build time.
var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		Alert("Dragster", err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Drop text, links or files and run a command on them",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func run(opts *options) error {
	exePath, err := os.Executable()
	if err != nil {
		exePath = os.Args[0]
	}
	exeDir := filepath.Dir(exePath)

	logger, closeLog := openLog(exeDir)
	defer closeLog()
	slog.SetDefault(logger)

	settings, settingsSource := config.LoadSettings(opts.settingsCandidates(exeDir), logger)
	actions, actionsSource := config.LoadActions(opts.actionsCandidates(exeDir), logger)
	logger.Info("starting", "version", Version, "settings", sourceName(settingsSource), "actions", sourceName(actionsSource))

	window := ui.New(ui.Options{
		Settings: settings,
		Actions:  actions,
		Expander: expand.New(),
		Runner:   invoke.NewShell(logger),
		Fs:       afero.NewOsFs(),
		Logger:   logger,
	})

	t := tray.New(window, actions, opts.autostartEntry(exePath), logger)
	go t.Run()
	defer t.Stop()

	code, err := window.Run()
	if err == nil && code != 0 {
		err = fmt.Errorf("application exited with status %d", code)
	}
	if err != nil {
		logger.Error("window failed", "err", err)
	}
	return err
}

// openLog writes to dragster.log beside the executable and falls back to
// stderr when that directory is read-only.
func openLog(dir string) (*slog.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	f, err := os.OpenFile(filepath.Join(dir, appName+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err == nil {
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	if err != nil {
		logger.Warn("open log file failed", "err", err)
	}
	return logger, closeFn
}

func logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("DRAGSTER_LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func sourceName(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}
