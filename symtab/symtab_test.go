package symtab

import (
	"debug/elf"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSymbols() []elf.Symbol {
	return []elf.Symbol{
		{Name: "main", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC), Section: 1, Value: 0x400, Size: 32},
		{Name: "_ZN3foo3barEv", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC), Section: elf.SHN_UNDEF},
		{Name: "counter", Info: elf.ST_INFO(elf.STB_LOCAL, elf.STT_OBJECT), Section: 2, Value: 0x800, Size: 8},
	}
}

func TestLookup(t *testing.T) {
	table := New(sampleSymbols())
	require.Equal(t, 3, table.Len())

	_, err := table.Lookup(0)
	assert.ErrorIs(t, err, ErrSymbolNotFound)
	_, err = table.Lookup(4)
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	sym, err := table.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "main", sym.Name)
	assert.Equal(t, elf.STT_FUNC, sym.Type)
	assert.Equal(t, elf.STB_GLOBAL, sym.Binding)

	again, err := table.Lookup(1)
	require.NoError(t, err)
	assert.Same(t, sym, again)
}

func TestFind(t *testing.T) {
	table := New(sampleSymbols())
	sym, err := table.Find("counter")
	require.NoError(t, err)
	assert.EqualValues(t, 0x800, sym.Value)
	assert.Equal(t, elf.STB_LOCAL, sym.Binding)

	_, err = table.Find("missing")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestSymbolsIter(t *testing.T) {
	table := New(sampleSymbols())
	var names []string
	table.Symbols(func(s *Symbol) bool {
		names = append(names, s.Name)
		return len(names) < 2
	})
	assert.Equal(t, []string{"main", "_ZN3foo3barEv"}, names)
}

func TestIsImport(t *testing.T) {
	table := New(sampleSymbols())
	main, _ := table.Lookup(1)
	imp, _ := table.Lookup(2)
	assert.False(t, main.IsImport())
	assert.True(t, imp.IsImport())
}

func TestDemangledName(t *testing.T) {
	table := New(sampleSymbols())
	imp, _ := table.Lookup(2)
	name, err := imp.DemangledName()
	require.NoError(t, err)
	assert.Equal(t, "foo::bar()", name)

	main, _ := table.Lookup(1)
	_, err = main.DemangledName()
	assert.ErrorIs(t, err, ErrDemangleUnsupported)
}

func TestHash(t *testing.T) {
	a := FromELF(sampleSymbols()[0])
	b := FromELF(sampleSymbols()[0])
	assert.Equal(t, a.Hash(), b.Hash())

	b.Value++
	assert.NotEqual(t, a.Hash(), b.Hash())

	c := FromELF(sampleSymbols()[0])
	c.Name = "main2"
	assert.NotEqual(t, a.Hash(), c.Hash())
}
