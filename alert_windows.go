package main

import (
	"log/slog"
	"syscall"
	"unsafe"
)

var (
	user32         = syscall.NewLazyDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

const mbIconError = 0x10

// Alert shows a native message box. It is used before the window exists.
func Alert(title, text string) {
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		slog.Error("Alert utf16 error", "err", err)
		return
	}
	textPtr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		slog.Error("Alert utf16 error", "err", err)
		return
	}

	_, _, _ = procMessageBox.Call(
		0,
		uintptr(unsafe.Pointer(textPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(mbIconError),
	)
}
