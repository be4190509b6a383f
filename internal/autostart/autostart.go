// Package autostart registers the launcher to start when the user logs in.
package autostart

import (
	"fmt"
	"strings"
)

// Entry describes the command started at login.
type Entry struct {
	Name string
	Exec string
	Args []string
}

// CommandLine returns the quoted command line of e.
func (e Entry) CommandLine() string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, quote(e.Exec))
	for _, arg := range e.Args {
		if strings.HasPrefix(arg, "-") {
			parts = append(parts, arg)
			continue
		}
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return fmt.Sprintf(`"%s"`, s)
}
