//go:build !windows

package invoke

func defaultShell() (string, []string) {
	return "/bin/sh", []string{"-c"}
}
