//go:build !tinygo && !cgo

package hal

func (k *hostKeyboard) poll() {
	// No keyboard polling without the window backend.
}
