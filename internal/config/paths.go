package config

import (
	"path/filepath"
	"strings"
)

// Candidates returns the search order for a configuration file: the
// explicit path if given, then name in the working directory, then name
// next to the executable.
func Candidates(explicit, name, exeDir string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, name)
	if exeDir != "" {
		paths = append(paths, filepath.Join(exeDir, name))
	}
	return paths
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
