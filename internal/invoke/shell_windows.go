//go:build windows

package invoke

func defaultShell() (string, []string) {
	return "cmd.exe", []string{"/C"}
}
