//go:build !darwin

package tray

import (
	"github.com/energye/systray"

	"github.com/taodev/dragster/internal/autostart"
	"github.com/taodev/dragster/internal/config"
)

// Run shows the tray icon and blocks until Stop is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetIcon(icon)
	systray.SetTitle("dragster")
	systray.SetTooltip("dragster")
	systray.SetOnRClick(func(menu systray.IMenu) {
		menu.ShowMenu()
	})

	t.initMenu()
	t.initSystemMenu()
}

func (t *Tray) onExit() {
	t.logger.Debug("tray stopped")
}

func (t *Tray) initMenu() {
	for i, action := range t.actions {
		switch action.Kind {
		case config.KindSeparator:
			systray.AddSeparator()
		case config.KindText, config.KindURL, config.KindFile:
			item := systray.AddMenuItem(action.Name, action.Kind.String())
			index := i
			item.Click(func() {
				t.host.Invoke(index)
			})
		}
	}
}

func (t *Tray) initSystemMenu() {
	systray.AddSeparator()

	clearMenu := systray.AddMenuItem("Clear Text", "")
	clearMenu.Click(func() {
		t.host.Clear()
	})

	autoStartMenu := systray.AddMenuItemCheckbox("Start at login", "", autostart.Enabled(t.entry))
	autoStartMenu.Click(func() {
		var err error
		if autoStartMenu.Checked() {
			err = autostart.Disable(t.entry)
		} else {
			err = autostart.Enable(t.entry)
		}
		if err != nil {
			t.logger.Error("autostart failed", "err", err)
		}

		if autostart.Enabled(t.entry) {
			autoStartMenu.Check()
		} else {
			autoStartMenu.Uncheck()
		}
	})

	quitMenu := systray.AddMenuItem("Quit", "")
	quitMenu.Click(func() {
		t.host.Quit()
	})
}
