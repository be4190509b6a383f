package main

import (
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/taodev/dragster/internal/autostart"
	"github.com/taodev/dragster/internal/config"
)

// options holds the command line flags.
type options struct {
	settingsPath string
	actionsPath  string
}

func (o *options) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.settingsPath, "settings", "s", "", "settings file (default: ./settings.json, then beside the executable)")
	flags.StringVarP(&o.actionsPath, "actions", "a", "", "actions file (default: ./actions.json, then beside the executable)")
}

func (o *options) settingsCandidates(exeDir string) []string {
	return config.Candidates(o.settingsPath, config.SettingsFile, exeDir)
}

func (o *options) actionsCandidates(exeDir string) []string {
	return config.Candidates(o.actionsPath, config.ActionsFile, exeDir)
}

// autostartEntry starts the executable at login with the same files.
// Relative paths are made absolute since the login session starts
// elsewhere.
func (o *options) autostartEntry(exePath string) autostart.Entry {
	var args []string
	if o.settingsPath != "" {
		args = append(args, "--settings", absPath(o.settingsPath))
	}
	if o.actionsPath != "" {
		args = append(args, "--actions", absPath(o.actionsPath))
	}
	return autostart.Entry{Name: appName, Exec: exePath, Args: args}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
