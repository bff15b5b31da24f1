package flathash

import "fmt"

// CapacityError is the panic payload raised when a fixed-size map is
// driven past its load ceiling. Sizing the map for the workload is the
// caller's job; hitting this is a configuration bug, not a runtime error.
type CapacityError struct {
	Size  int
	Tombs int
	Cap   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf(
		"flathash: fixed-size map capacity exceeded (size=%d tombs=%d cap=%d, ceiling=80%%); increase the configured capacity",
		e.Size, e.Tombs, e.Cap)
}
