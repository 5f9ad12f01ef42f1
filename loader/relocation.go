package loader

import (
	"debug/elf"
	"strings"

	"github.com/wnxd/reloc/reloc"
)

// Table is the raw content of one REL or RELA section.
type Table struct {
	Name    string
	Rela    bool
	Purpose reloc.Purpose
	EntSize uint64
	Data    []byte
}

// purposeOf classifies a relocation section of a file of type typ.
func purposeOf(typ elf.Type, name string) reloc.Purpose {
	switch {
	case typ == elf.ET_REL:
		return reloc.PURPOSE_OBJECT
	case strings.HasSuffix(name, ".plt"):
		return reloc.PURPOSE_PLTGOT
	}
	return reloc.PURPOSE_DYNAMIC
}
