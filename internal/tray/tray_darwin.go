//go:build darwin

package tray

// Run returns immediately: the tray needs the main thread on macOS, which
// belongs to GTK.
func (t *Tray) Run() {
	t.logger.Debug("tray not supported on darwin")
}

// Stop does nothing on macOS.
func (t *Tray) Stop() {}
