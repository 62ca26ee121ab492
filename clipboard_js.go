//go:build js

package main

import (
	"errors"
	"syscall/js"
)

var errNoClipboard = errors.New("clipboard: navigator.clipboard unavailable")

// copyToClipboard hands text to the browser. The write completes
// asynchronously and needs a secure context.
func copyToClipboard(text string) error {
	cb := js.Global().Get("navigator").Get("clipboard")
	if cb.IsUndefined() || cb.IsNull() {
		return errNoClipboard
	}
	cb.Call("writeText", text)
	return nil
}
