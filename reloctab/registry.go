package reloctab

import (
	"fmt"
	"strconv"

	"github.com/wnxd/reloc/arch"
)

// Registry routes an (architecture, type) pair to the tables registered
// for that architecture. It is populated once, before concurrent use.
type Registry struct {
	tables map[arch.Arch]*Table
}

func New() *Registry {
	return &Registry{tables: make(map[arch.Arch]*Table)}
}

// Register adds the tables of a. It returns false if a already has tables.
func (r *Registry) Register(a arch.Arch, t Table) bool {
	mustValid(a)
	if _, ok := r.tables[a]; ok {
		return false
	}
	r.tables[a] = &t
	return true
}

func (r *Registry) Lookup(a arch.Arch) (*Table, error) {
	mustValid(a)
	t, ok := r.tables[a]
	if !ok {
		return nil, &LookupError{Arch: a, Err: ErrNoTable}
	}
	return t, nil
}

// Size returns the encoded size in bytes of relocation type typ on a.
func (r *Registry) Size(a arch.Arch, typ uint32) (uint32, error) {
	t, err := r.Lookup(a)
	if err != nil {
		return 0, err
	}
	size, ok := t.Sizes[typ]
	if !ok {
		return 0, &LookupError{Arch: a, Type: typ, Err: ErrNoEntry}
	}
	return size, nil
}

// Name returns the symbolic name of relocation type typ on a.
func (r *Registry) Name(a arch.Arch, typ uint32) (string, error) {
	t, err := r.Lookup(a)
	if err != nil {
		return "", err
	}
	name, ok := t.Names[typ]
	if !ok {
		return "", &LookupError{Arch: a, Type: typ, Err: ErrNoEntry}
	}
	return name, nil
}

// Format is the best-effort form of Name: it never fails and falls back
// to the decimal type code.
func (r *Registry) Format(a arch.Arch, typ uint32) string {
	if !a.Valid() {
		return strconv.FormatUint(uint64(typ), 10)
	}
	if t, ok := r.tables[a]; ok {
		if name, ok := t.Names[typ]; ok {
			return name
		}
	}
	return strconv.FormatUint(uint64(typ), 10)
}

// Architectures returns the architectures having registered tables.
func (r *Registry) Architectures() []arch.Arch {
	var out []arch.Arch
	for a := arch.ARCH_NONE; a.Valid(); a++ {
		if _, ok := r.tables[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func mustValid(a arch.Arch) {
	if !a.Valid() {
		panic(fmt.Sprintf("reloctab: invalid architecture tag %d", int(a)))
	}
}

// Default holds the built-in tables.
var Default = New()

func init() {
	Default.Register(arch.ARCH_X86_64, x86_64Table)
	Default.Register(arch.ARCH_X86, i386Table)
	Default.Register(arch.ARCH_ARM, armTable)
	Default.Register(arch.ARCH_ARM64, aarch64Table)
}

func Register(a arch.Arch, t Table) bool {
	return Default.Register(a, t)
}

func Size(a arch.Arch, typ uint32) (uint32, error) {
	return Default.Size(a, typ)
}

func Name(a arch.Arch, typ uint32) (string, error) {
	return Default.Name(a, typ)
}

func Format(a arch.Arch, typ uint32) string {
	return Default.Format(a, typ)
}
