package symtab

import (
	"debug/elf"
	"fmt"

	"github.com/ianlancetaylor/demangle"

	"github.com/wnxd/reloc/internal/fingerprint"
)

type Symbol struct {
	Name       string
	Value      uint64
	Size       uint64
	Type       elf.SymType
	Binding    elf.SymBind
	Visibility elf.SymVis
	Section    elf.SectionIndex
	Version    string
	Library    string
}

func FromELF(s elf.Symbol) Symbol {
	return Symbol{
		Name:       s.Name,
		Value:      s.Value,
		Size:       s.Size,
		Type:       elf.ST_TYPE(s.Info),
		Binding:    elf.ST_BIND(s.Info),
		Visibility: elf.ST_VISIBILITY(s.Other),
		Section:    s.Section,
		Version:    s.Version,
		Library:    s.Library,
	}
}

// IsImport reports whether s is undefined in its own object.
func (s *Symbol) IsImport() bool {
	return s.Section == elf.SHN_UNDEF && s.Name != ""
}

// DemangledName returns the C++ or Rust demangled form of the name. Names
// that are not mangled yield ErrDemangleUnsupported.
func (s *Symbol) DemangledName() (string, error) {
	name, err := demangle.ToString(s.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDemangleUnsupported, s.Name)
	}
	return name, nil
}

// Hash folds the observable fields of s in declaration order.
func (s *Symbol) Hash() uint64 {
	h := fingerprint.New()
	s.fold(h)
	return h.Sum64()
}

func (s *Symbol) fold(h *fingerprint.Hasher) {
	h.String(s.Name)
	h.Uint64(s.Value)
	h.Uint64(s.Size)
	h.Uint32(uint32(s.Type))
	h.Uint32(uint32(s.Binding))
	h.Uint32(uint32(s.Visibility))
	h.Uint32(uint32(s.Section))
	h.String(s.Version)
	h.String(s.Library)
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s %s %#x", s.Name, s.Type, s.Value)
}
