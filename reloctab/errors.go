package reloctab

import (
	"errors"
	"fmt"

	"github.com/wnxd/reloc/arch"
)

var (
	ErrNoTable = errors.New("no relocation table for architecture")
	ErrNoEntry = errors.New("relocation type not in table")
)

// LookupError reports a table miss. Type is meaningful only when Err is
// ErrNoEntry.
type LookupError struct {
	Arch arch.Arch
	Type uint32
	Err  error
}

func (e *LookupError) Error() string {
	if e.Err == ErrNoEntry {
		return fmt.Sprintf("%s - type %d: %v", e.Arch, e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Arch, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
