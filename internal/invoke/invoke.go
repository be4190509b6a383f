// Package invoke hands expanded commands to the platform shell.
package invoke

import (
	"log/slog"
	"os/exec"
)

// Runner starts a command line without waiting for it.
type Runner interface {
	Run(command string) error
}

// Shell runs commands through the platform command interpreter. Output is
// discarded and the exit status is never reported to the caller.
type Shell struct {
	Path   string
	Args   []string
	Dir    string
	logger *slog.Logger
}

// NewShell returns a Shell for the platform default interpreter.
func NewShell(logger *slog.Logger) *Shell {
	path, args := defaultShell()
	return &Shell{Path: path, Args: args, logger: logger}
}

// Run starts command and returns once the child process exists. The
// child is reaped in the background.
func (s *Shell) Run(command string) error {
	args := append(append([]string{}, s.Args...), command)
	cmd := exec.Command(s.Path, args...)
	cmd.Dir = s.Dir
	if err := cmd.Start(); err != nil {
		s.logger.Error("start cmd failed", "cmd", command, "err", err)
		return err
	}
	s.logger.Info("cmd started", "cmd", command, "pid", cmd.Process.Pid)

	go func() {
		err := cmd.Wait()
		s.logger.Debug("cmd exited", "pid", cmd.Process.Pid, "err", err)
	}()
	return nil
}
