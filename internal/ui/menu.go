package ui

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/taodev/dragster/internal/config"
)

const buttonSecondary = 3

func (w *Window) setupMenu() {
	w.win.AddEvents(int(gdk.BUTTON_PRESS_MASK))
	w.win.Connect("button-press-event", func(_ *gtk.ApplicationWindow, ev *gdk.Event) bool {
		btn := gdk.EventButtonNewFromEvent(ev)
		if btn.Button() != buttonSecondary {
			return false
		}
		menu, err := w.buildMenu()
		if err != nil {
			w.logger.Error("build menu failed", "err", err)
			return true
		}
		// Keep a reference while the popup is open.
		w.menu = menu
		menu.PopupAtPointer(ev)
		return true
	})
}

// buildMenu lists the actions in order, then the built-in entries.
func (w *Window) buildMenu() (*gtk.Menu, error) {
	menu, err := gtk.MenuNew()
	if err != nil {
		return nil, err
	}

	for i, action := range w.actions {
		switch action.Kind {
		case config.KindSeparator:
			if err := appendSeparator(menu); err != nil {
				return nil, err
			}
		case config.KindText, config.KindURL, config.KindFile:
			index := i
			if err := appendItem(menu, action.Name, func() { w.invoke(index) }); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("action %d: %w", i, config.ErrUnknownKind)
		}
	}

	if err := appendSeparator(menu); err != nil {
		return nil, err
	}
	if err := appendItem(menu, "Clear Text", w.clear); err != nil {
		return nil, err
	}
	if err := appendItem(menu, "Close App", w.quit); err != nil {
		return nil, err
	}

	menu.ShowAll()
	return menu, nil
}

func appendItem(menu *gtk.Menu, label string, callback func()) error {
	item, err := gtk.MenuItemNewWithLabel(label)
	if err != nil {
		return err
	}
	item.Connect("activate", callback)
	menu.Append(item)
	return nil
}

func appendSeparator(menu *gtk.Menu) error {
	sep, err := gtk.SeparatorMenuItemNew()
	if err != nil {
		return err
	}
	menu.Append(sep)
	return nil
}
