package loader

import (
	"debug/elf"
	"encoding/binary"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wnxd/reloc/arch"
	"github.com/wnxd/reloc/reloc"
	"github.com/wnxd/reloc/symtab"
)

// Module is the relocation view of one ELF file. It owns the symbol
// tables its relocations point into.
type Module struct {
	arch    arch.Arch
	class   elf.Class
	order   binary.ByteOrder
	symtabs map[elf.SectionType]*symtab.Table
	rels    []*reloc.Relocation
}

// Load collects the relocations of every SHT_REL and SHT_RELA section of
// an already opened file. Machines without an arch tag load with
// ARCH_NONE.
func Load(f *elf.File, logger *zap.Logger) (*Module, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a, err := arch.FromMachine(f.Machine)
	if err != nil {
		logger.Warn("machine has no arch tag", zap.Stringer("machine", f.Machine))
	}
	m := &Module{
		arch:    a,
		class:   f.Class,
		order:   f.ByteOrder,
		symtabs: make(map[elf.SectionType]*symtab.Table),
	}
	for _, s := range f.Sections {
		if s.Type != elf.SHT_REL && s.Type != elf.SHT_RELA {
			continue
		}
		syms, err := m.symbolsFor(f, s.Link)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: symbols", s.Name)
		}
		data, err := s.Data()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: data", s.Name)
		}
		p, err := NewParser(Config{
			Arch:      a,
			Class:     f.Class,
			ByteOrder: f.ByteOrder,
			Symbols:   syms,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		rels, err := p.Parse(Table{
			Name:    s.Name,
			Rela:    s.Type == elf.SHT_RELA,
			Purpose: purposeOf(f.Type, s.Name),
			EntSize: s.Entsize,
			Data:    data,
		})
		if err != nil {
			return nil, err
		}
		m.rels = append(m.rels, rels...)
	}
	return m, nil
}

// symbolsFor returns the symbol table a relocation section links to.
func (m *Module) symbolsFor(f *elf.File, link uint32) (*symtab.Table, error) {
	if link == 0 || int(link) >= len(f.Sections) {
		return nil, nil
	}
	typ := f.Sections[link].Type
	if t, ok := m.symtabs[typ]; ok {
		return t, nil
	}
	var (
		syms []elf.Symbol
		err  error
	)
	switch typ {
	case elf.SHT_SYMTAB:
		syms, err = f.Symbols()
	case elf.SHT_DYNSYM:
		syms, err = f.DynamicSymbols()
	default:
		return nil, nil
	}
	if err != nil {
		if errors.Is(err, elf.ErrNoSymbols) {
			return nil, nil
		}
		return nil, err
	}
	t := symtab.New(syms)
	m.symtabs[typ] = t
	return t, nil
}

func (m *Module) Arch() arch.Arch {
	return m.arch
}

func (m *Module) Class() elf.Class {
	return m.class
}

func (m *Module) ByteOrder() binary.ByteOrder {
	return m.order
}

func (m *Module) Relocations() []*reloc.Relocation {
	return m.rels
}

// Symbols returns the static (SHT_SYMTAB) or dynamic (SHT_DYNSYM) symbol
// table referenced by the module's relocations.
func (m *Module) Symbols(dynamic bool) (*symtab.Table, error) {
	typ := elf.SHT_SYMTAB
	if dynamic {
		typ = elf.SHT_DYNSYM
	}
	if t, ok := m.symtabs[typ]; ok {
		return t, nil
	}
	return nil, symtab.ErrSymbolNotFound
}

// Imports returns the relocations bound to a symbol the file does not
// define, in file order.
func (m *Module) Imports() []*reloc.Relocation {
	var out []*reloc.Relocation
	for _, r := range m.rels {
		sym, err := r.Symbol()
		if err != nil {
			continue
		}
		if sym.IsImport() {
			out = append(out, r)
		}
	}
	return out
}

// Unique returns the module's relocations without structural duplicates.
func (m *Module) Unique() []*reloc.Relocation {
	return reloc.Dedup(m.rels)
}
