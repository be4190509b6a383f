//go:build !windows

package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	fs        = afero.NewOsFs()
	configDir = os.UserConfigDir
)

// Enable writes an XDG autostart desktop entry for e.
func Enable(e Entry) error {
	path, err := entryPath(e)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, []byte(desktopEntry(e)), 0o644)
}

// Disable removes the desktop entry of e. A missing entry is not an error.
func Disable(e Entry) error {
	path, err := entryPath(e)
	if err != nil {
		return err
	}
	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Enabled reports whether the desktop entry of e exists.
func Enabled(e Entry) bool {
	path, err := entryPath(e)
	if err != nil {
		return false
	}
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

func entryPath(e Entry) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", fmt.Errorf("autostart dir: %w", err)
	}
	return filepath.Join(dir, "autostart", e.Name+".desktop"), nil
}

func desktopEntry(e Entry) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Exec=%s\n", e.CommandLine())
	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}
