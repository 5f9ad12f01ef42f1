package reloc

import (
	"errors"
	"fmt"

	"github.com/wnxd/reloc/arch"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotImplemented = errors.New("not implemented")
)

// NotImplementedError reports an (architecture, type) pair without table
// semantics. Err is the underlying *reloctab.LookupError.
type NotImplementedError struct {
	Arch arch.Arch
	Type uint32
	Err  error
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNotImplemented, e.Err)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

func (e *NotImplementedError) Unwrap() error {
	return e.Err
}
