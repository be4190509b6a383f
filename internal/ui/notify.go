package ui

import "github.com/gotk3/gotk3/gtk"

// Info shows a modal information dialog.
func (w *Window) Info(title, message string) {
	w.message(gtk.MESSAGE_INFO, title, message)
}

// Error shows a modal error dialog.
func (w *Window) Error(title, message string) {
	w.message(gtk.MESSAGE_ERROR, title, message)
}

func (w *Window) message(kind gtk.MessageType, title, message string) {
	w.logger.Info("notice", "title", title, "message", message)
	if w.win == nil {
		return
	}

	dialog := gtk.MessageDialogNew(
		w.win,
		gtk.DIALOG_MODAL|gtk.DIALOG_DESTROY_WITH_PARENT,
		kind,
		gtk.BUTTONS_OK,
		"%s",
		message,
	)
	dialog.SetTitle(title)
	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()
}
