package reloc

import (
	"debug/elf"

	"github.com/wnxd/reloc/arch"
	"github.com/wnxd/reloc/reloctab"
	"github.com/wnxd/reloc/symtab"
)

// Kind tells whether a record carries an explicit addend.
type Kind uint8

const (
	KIND_REL Kind = iota
	KIND_RELA
)

func (k Kind) String() string {
	if k == KIND_RELA {
		return "RELA"
	}
	return "REL"
}

// Purpose is the table a relocation was read from.
type Purpose uint8

const (
	PURPOSE_NONE Purpose = iota
	PURPOSE_PLTGOT
	PURPOSE_DYNAMIC
	PURPOSE_OBJECT
)

func (p Purpose) String() string {
	switch p {
	case PURPOSE_PLTGOT:
		return "PLTGOT"
	case PURPOSE_DYNAMIC:
		return "DYNAMIC"
	case PURPOSE_OBJECT:
		return "OBJECT"
	}
	return "NONE"
}

// Relocation is an architecture independent relocation record. The symbol
// it refers to is borrowed from a symtab.Table owned elsewhere.
type Relocation struct {
	address uint64
	typ     uint32
	addend  int64
	kind    Kind
	arch    arch.Arch
	purpose Purpose
	symbol  *symtab.Symbol
}

// The raw constructors keep only the type bits of info; the symbol index
// is resolved by the parser.

func NewRel32(rel elf.Rel32) *Relocation {
	return &Relocation{
		address: uint64(rel.Off),
		typ:     elf.R_TYPE32(rel.Info),
		kind:    KIND_REL,
	}
}

func NewRela32(rel elf.Rela32) *Relocation {
	return &Relocation{
		address: uint64(rel.Off),
		typ:     elf.R_TYPE32(rel.Info),
		addend:  int64(rel.Addend),
		kind:    KIND_RELA,
	}
}

func NewRel64(rel elf.Rel64) *Relocation {
	return &Relocation{
		address: rel.Off,
		typ:     elf.R_TYPE64(rel.Info),
		kind:    KIND_REL,
	}
}

func NewRela64(rel elf.Rela64) *Relocation {
	return &Relocation{
		address: rel.Off,
		typ:     elf.R_TYPE64(rel.Info),
		addend:  rel.Addend,
		kind:    KIND_RELA,
	}
}

func New(address uint64, typ uint32, addend int64, kind Kind) *Relocation {
	return &Relocation{
		address: address,
		typ:     typ,
		addend:  addend,
		kind:    kind,
	}
}

// Clone copies every scalar field. The copy has no symbol.
func (r *Relocation) Clone() *Relocation {
	c := *r
	c.symbol = nil
	return &c
}

func (r *Relocation) Address() uint64 {
	return r.address
}

func (r *Relocation) SetAddress(address uint64) {
	r.address = address
}

// Addend is meaningful only for RELA records.
func (r *Relocation) Addend() int64 {
	return r.addend
}

func (r *Relocation) SetAddend(addend int64) {
	r.addend = addend
}

func (r *Relocation) Type() uint32 {
	return r.typ
}

func (r *Relocation) SetType(typ uint32) {
	r.typ = typ
}

func (r *Relocation) Kind() Kind {
	return r.kind
}

func (r *Relocation) IsRela() bool {
	return r.kind == KIND_RELA
}

func (r *Relocation) IsRel() bool {
	return r.kind != KIND_RELA
}

func (r *Relocation) Arch() arch.Arch {
	return r.arch
}

func (r *Relocation) SetArch(a arch.Arch) {
	r.arch = a
}

func (r *Relocation) Purpose() Purpose {
	return r.purpose
}

func (r *Relocation) SetPurpose(p Purpose) {
	r.purpose = p
}

func (r *Relocation) HasSymbol() bool {
	return r.symbol != nil
}

// Symbol returns the referenced symbol, or ErrNotFound when none is
// attached.
func (r *Relocation) Symbol() (*symtab.Symbol, error) {
	if r.symbol == nil {
		return nil, ErrNotFound
	}
	return r.symbol, nil
}

func (r *Relocation) SetSymbol(sym *symtab.Symbol) {
	r.symbol = sym
}

func (r *Relocation) ClearSymbol() {
	r.symbol = nil
}

// Size returns the encoded size in bytes of the patched field, looked up
// in the default tables.
func (r *Relocation) Size() (uint32, error) {
	return r.SizeFrom(reloctab.Default)
}

func (r *Relocation) SizeFrom(reg *reloctab.Registry) (uint32, error) {
	size, err := reg.Size(r.arch, r.typ)
	if err != nil {
		return 0, &NotImplementedError{Arch: r.arch, Type: r.typ, Err: err}
	}
	return size, nil
}

// TypeName is the strict form of the name shown by String.
func (r *Relocation) TypeName() (string, error) {
	return r.TypeNameFrom(reloctab.Default)
}

func (r *Relocation) TypeNameFrom(reg *reloctab.Registry) (string, error) {
	name, err := reg.Name(r.arch, r.typ)
	if err != nil {
		return "", &NotImplementedError{Arch: r.arch, Type: r.typ, Err: err}
	}
	return name, nil
}
