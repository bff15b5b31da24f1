//go:build !linux

package sim

import "errors"

// Core pinning is Linux-only; elsewhere workers run wherever the
// scheduler puts them.
func pinToCore(int) error {
	return errors.ErrUnsupported
}
