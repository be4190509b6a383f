// Package ui implements the drop window on GTK 3.
package ui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/spf13/afero"

	"github.com/taodev/dragster/internal/config"
	"github.com/taodev/dragster/internal/drop"
	"github.com/taodev/dragster/internal/expand"
	"github.com/taodev/dragster/internal/invoke"
	"github.com/taodev/dragster/internal/launcher"
	"github.com/taodev/dragster/internal/ui/theme"
)

const appID = "io.github.taodev.dragster"

// Drag target info values.
const (
	targetURIList uint = iota + 1
	targetText
)

// Options configures a Window.
type Options struct {
	Settings config.Settings
	Actions  []config.Action
	Expander *expand.Expander
	Runner   invoke.Runner
	Fs       afero.Fs
	Logger   *slog.Logger
}

// Window is the always-on-top drop target. Apart from Invoke, Clear and
// Quit, its methods must be called on the GTK main thread.
type Window struct {
	settings   config.Settings
	actions    []config.Action
	dispatcher *launcher.Dispatcher
	logger     *slog.Logger

	app   *gtk.Application
	win   *gtk.ApplicationWindow
	label *gtk.Label
	menu  *gtk.Menu

	current drop.Context
}

// New creates the window. Nothing is shown until Run.
func New(opts Options) *Window {
	w := &Window{
		settings: opts.Settings,
		actions:  opts.Actions,
		logger:   opts.Logger,
	}
	w.dispatcher = launcher.New(opts.Expander, opts.Runner, opts.Fs, w, opts.Logger)
	return w
}

// Run starts the GTK application and blocks until it quits. The error is
// non-nil when the window could not be constructed.
func (w *Window) Run() (int, error) {
	app, err := gtk.ApplicationNew(appID, glib.APPLICATION_NON_UNIQUE)
	if err != nil {
		return 1, fmt.Errorf("create application: %w", err)
	}
	w.app = app

	var buildErr error
	app.Connect("activate", func() {
		if err := w.build(); err != nil {
			buildErr = err
			app.Quit()
		}
	})

	code := app.Run([]string{os.Args[0]}) // flags are parsed by cobra
	if buildErr != nil {
		return 1, buildErr
	}
	return code, nil
}

func (w *Window) build() error {
	s := w.settings

	win, err := gtk.ApplicationWindowNew(w.app)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	w.win = win

	win.SetTitle("Dragster")
	win.SetDecorated(false)
	win.SetKeepAbove(true)
	win.SetDefaultSize(s.Width, s.Height)
	win.Move(s.X, s.Y)

	// Per-pixel transparency needs an RGBA visual from the compositor.
	win.SetAppPaintable(true)
	screen := win.GetScreen()
	if visual, err := screen.GetRGBAVisual(); err == nil && visual != nil {
		win.SetVisual(visual)
	} else {
		w.logger.Warn("no RGBA visual, window will be opaque", "err", err)
	}

	provider, err := gtk.CssProviderNew()
	if err != nil {
		return fmt.Errorf("create css provider: %w", err)
	}
	if err := provider.LoadFromData(theme.CSS(s)); err != nil {
		w.logger.Error("load stylesheet failed", "err", err)
	}
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)

	scroll, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return fmt.Errorf("create scrolled window: %w", err)
	}
	scroll.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_AUTOMATIC)
	if styleCtx, _ := scroll.GetStyleContext(); styleCtx != nil {
		styleCtx.AddClass(theme.DropClass)
	}

	label, err := gtk.LabelNew("")
	if err != nil {
		return fmt.Errorf("create label: %w", err)
	}
	label.SetLineWrap(true)
	label.SetXAlign(0)
	label.SetYAlign(0)
	w.label = label

	scroll.Add(label)
	win.Add(scroll)

	if err := w.setupDrop(); err != nil {
		return err
	}
	w.setupMenu()

	win.ShowAll()
	w.logger.Info("window ready", "x", s.X, "y", s.Y, "width", s.Width, "height", s.Height)
	return nil
}

func (w *Window) setupDrop() error {
	uris, err := gtk.TargetEntryNew("text/uri-list", 0, targetURIList)
	if err != nil {
		return fmt.Errorf("create drop target: %w", err)
	}
	plain, err := gtk.TargetEntryNew("text/plain;charset=utf-8", 0, targetText)
	if err != nil {
		return fmt.Errorf("create drop target: %w", err)
	}
	utf8, err := gtk.TargetEntryNew("UTF8_STRING", 0, targetText)
	if err != nil {
		return fmt.Errorf("create drop target: %w", err)
	}

	w.win.DragDestSet(gtk.DEST_DEFAULT_ALL, []gtk.TargetEntry{*uris, *plain, *utf8}, gdk.ACTION_COPY)
	w.win.Connect("drag-data-received", func(_ *gtk.ApplicationWindow, _ *gdk.DragContext, _, _ int, data *gtk.SelectionData, info uint, _ uint) {
		if data == nil {
			return
		}
		w.drop(drop.PayloadFromTarget(info == targetURIList, data.GetData()))
	})
	return nil
}

func (w *Window) drop(p drop.Payload) {
	dc := drop.Classify(p)
	if dc.Empty() {
		return
	}
	w.current = w.current.Append(dc)
	w.label.SetText(w.current.Raw())
	w.logger.Info("dropped", "drop", w.current.ID.String(), "class", dc.Class.String(), "items", len(dc.Items))
}

func (w *Window) clear() {
	w.current = drop.Context{}
	if w.label != nil {
		w.label.SetText("")
	}
}

// invoke runs the action at index against the current drop and clears
// the display unless a file action found nothing to work on.
func (w *Window) invoke(index int) {
	if index < 0 || index >= len(w.actions) {
		return
	}
	if w.dispatcher.Invoke(w.actions[index], w.current) {
		w.clear()
	}
}

func (w *Window) quit() {
	if w.app != nil {
		w.app.Quit()
	}
}

// Invoke runs the action at index on the GTK main thread.
func (w *Window) Invoke(index int) {
	glib.IdleAdd(func() {
		w.invoke(index)
	})
}

// Clear empties the display on the GTK main thread.
func (w *Window) Clear() {
	glib.IdleAdd(w.clear)
}

// Quit stops the application on the GTK main thread.
func (w *Window) Quit() {
	glib.IdleAdd(w.quit)
}
