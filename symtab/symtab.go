package symtab

import "debug/elf"

// Table owns the symbols of one ELF symbol table. Relocations hold
// borrowed pointers into it, so its backing slice is never reallocated.
type Table struct {
	symbols []Symbol
}

// New builds a table from the output of (*elf.File).Symbols or
// DynamicSymbols, which omit the null symbol at index 0.
func New(syms []elf.Symbol) *Table {
	t := &Table{symbols: make([]Symbol, len(syms))}
	for i, s := range syms {
		t.symbols[i] = FromELF(s)
	}
	return t
}

func (t *Table) Len() int {
	return len(t.symbols)
}

// Lookup resolves an ELF symbol index as packed in a relocation's info
// field. Index 0 is the null symbol and never resolves.
func (t *Table) Lookup(index uint32) (*Symbol, error) {
	if index == 0 || int(index) > len(t.symbols) {
		return nil, ErrSymbolNotFound
	}
	return &t.symbols[index-1], nil
}

// Find returns the first symbol called name.
func (t *Table) Find(name string) (*Symbol, error) {
	var found *Symbol
	t.Symbols(func(s *Symbol) bool {
		if s.Name == name {
			found = s
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrSymbolNotFound
	}
	return found, nil
}

func (t *Table) Symbols(yield func(*Symbol) bool) {
	for i := range t.symbols {
		if !yield(&t.symbols[i]) {
			break
		}
	}
}
