//go:build !windows

package main

import (
	"fmt"
	"os"
)

// Alert prints the message to stderr. It is used before the window exists.
func Alert(title, text string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, text)
}
