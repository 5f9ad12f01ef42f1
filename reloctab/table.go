package reloctab

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Table is the pair of lookup tables registered for one architecture.
// Keys are the architecture's native relocation type codes; sizes are in
// bytes of the patched field. Names may hold codes that have no size.
type Table struct {
	Sizes map[uint32]uint32
	Names map[uint32]string
}

type relocType interface {
	constraints.Integer
	fmt.Stringer
}

// Entry describes a relocation code the debug/elf enumeration does not name.
type Entry struct {
	Name string
	Size uint32
}

// NewTable builds a Table from a size map keyed by a debug/elf relocation
// enumeration. Every code in [0, last] that the enumeration names gets a
// name, whether or not it has a size.
func NewTable[T relocType](sizes map[T]uint32, last T) Table {
	t := Table{
		Sizes: make(map[uint32]uint32, len(sizes)),
		Names: make(map[uint32]string, len(sizes)),
	}
	for typ := T(0); typ <= last; typ++ {
		if name, ok := knownName(typ); ok {
			t.Names[uint32(typ)] = name
		}
		if typ == last {
			break
		}
	}
	for typ, size := range sizes {
		t.Sizes[uint32(typ)] = size
		t.Names[uint32(typ)] = typ.String()
	}
	return t
}

// Extend adds entries, overriding existing codes.
func (t Table) Extend(entries map[uint32]Entry) Table {
	for typ, e := range entries {
		t.Sizes[typ] = e.Size
		t.Names[typ] = e.Name
	}
	return t
}

// knownName reports the enumeration's own name for typ. debug/elf renders
// unnamed codes as a decimal or as "NEAREST+offset".
func knownName[T relocType](typ T) (string, bool) {
	name := typ.String()
	if name == "" || strings.ContainsRune(name, '+') || (name[0] >= '0' && name[0] <= '9') {
		return "", false
	}
	return name, true
}
