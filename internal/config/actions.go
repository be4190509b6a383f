package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	yamlconfig "github.com/taodev/pkg/config"
	"github.com/tidwall/jsonc"
)

// ActionsFile is the fallback name of the action list.
const ActionsFile = "actions.json"

// ErrNotActionList is returned when a document parses but is not a list.
var ErrNotActionList = errors.New("document is not an action list")

// Action is one entry of the right-click menu.
type Action struct {
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command" yaml:"command"`
	Kind    Kind   `json:"type" yaml:"type"`
}

// DefaultActions returns the built-in action list used when no actions
// file can be loaded.
func DefaultActions() []Action {
	return []Action{
		{Name: "Copy to clipboard", Command: `echo ":text:" | xclip -sel clip`, Kind: KindText},
		{Name: "Open in Browser", Command: `:browser: ":url:"`, Kind: KindURL},
		{Kind: KindSeparator},
		{Name: "Open File", Command: `xdg-open ":file:"`, Kind: KindFile},
		{Name: "Video to MP3", Command: `yt-dlp -R5 -c --extract-audio --audio-format=mp3 -P "/home/:user:/Music" ":url:"`, Kind: KindURL},
		{Name: "Backup File", Command: `zip /home/:user:/:fname:.zip ":file:" -j`, Kind: KindFile},
		{Name: "eMail File (Evolution)", Command: `evolution mailto:\?attach=":file:"`, Kind: KindFile},
		{Name: "eMail File (Thunderbird)", Command: `thunderbird -compose attachment=":file:"`, Kind: KindFile},
	}
}

// LoadActions returns the action list of the first candidate that can be
// read and parsed, together with its path. Unreadable or malformed
// candidates are skipped. When none can be used the built-in list is
// returned with an empty source.
func LoadActions(candidates []string, logger *slog.Logger) ([]Action, string) {
	for _, path := range candidates {
		actions, err := ReadActions(path)
		if err != nil {
			logger.Debug("skip actions candidate", "path", path, "err", err)
			continue
		}
		logger.Info("actions loaded", "path", path, "count", len(actions))
		return actions, path
	}
	logger.Info("using built-in actions")
	return DefaultActions(), ""
}

// ReadActions parses a single action list. JSON documents may contain
// comments; .yaml and .yml files are parsed as YAML.
func ReadActions(path string) ([]Action, error) {
	var actions []Action
	if isYAML(path) {
		if err := yamlconfig.LoadYAML(path, &actions); err != nil {
			return nil, err
		}
		if actions == nil {
			return nil, ErrNotActionList
		}
		return actions, validateActions(actions)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(jsonc.ToJSON(data))
	if len(data) == 0 || data[0] != '[' {
		return nil, ErrNotActionList
	}
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return actions, validateActions(actions)
}

// SaveActions writes actions to path as indented JSON.
func SaveActions(path string, actions []Action) error {
	if err := validateActions(actions); err != nil {
		return err
	}
	data, err := json.MarshalIndent(actions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func validateActions(actions []Action) error {
	for i, a := range actions {
		if !a.Kind.Valid() {
			return fmt.Errorf("action %d (%q): %w", i, a.Name, ErrUnknownKind)
		}
	}
	return nil
}
