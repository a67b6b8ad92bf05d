// Package clipboard provides the system clipboard as an mdv.Clipboard
// collaborator.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported reports a platform without a usable clipboard.
var ErrUnsupported = errors.New("clipboard unsupported on this platform")

// System copies through the operating system clipboard.
type System struct{}

// Copy places text on the system clipboard.
func (System) Copy(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
