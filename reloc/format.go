package reloc

import (
	"fmt"

	"github.com/wnxd/reloc/reloctab"
)

func (r *Relocation) String() string {
	return r.Render(reloctab.Default)
}

// Render formats r as one left-justified line: hex address, type name
// (or the decimal type when reg has no name for it) and symbol name.
func (r *Relocation) Render(reg *reloctab.Registry) string {
	return fmt.Sprintf("%-10x %-10s %-10s", r.address, reg.Format(r.arch, r.typ), r.symbolName())
}

func (r *Relocation) symbolName() string {
	if r.symbol == nil {
		return ""
	}
	if name, err := r.symbol.DemangledName(); err == nil {
		return name
	}
	return r.symbol.Name
}
