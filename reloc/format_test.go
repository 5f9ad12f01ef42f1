package reloc

import (
	"debug/elf"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wnxd/reloc/arch"
	"github.com/wnxd/reloc/symtab"
)

func TestStringNoSymbol(t *testing.T) {
	r := New(0x1000, uint32(elf.R_X86_64_JMP_SLOT), 0, KIND_RELA)
	r.SetArch(arch.ARCH_X86_64)
	assert.Equal(t, "1000       R_X86_64_JMP_SLOT           ", r.String())
}

func TestStringUnsupportedArch(t *testing.T) {
	r := New(0xabc, 7, 0, KIND_REL)
	assert.Equal(t, "abc        7                    ", r.String())

	r.SetArch(arch.ARCH_MIPS)
	assert.True(t, strings.HasPrefix(r.String(), "abc        7 "))

	r.SetArch(arch.ARCH_X86)
	r.SetType(0xFFFF)
	assert.Equal(t, "abc        65535                ", r.String())
}

func TestStringSymbolNames(t *testing.T) {
	table := symtab.New([]elf.Symbol{
		{Name: "_ZN3foo3barEv"},
		{Name: "printf"},
	})
	mangled, _ := table.Lookup(1)
	plain, _ := table.Lookup(2)

	r := New(0x601018, uint32(elf.R_X86_64_GLOB_DAT), 0, KIND_RELA)
	r.SetArch(arch.ARCH_X86_64)

	r.SetSymbol(mangled)
	assert.Equal(t, "601018     R_X86_64_GLOB_DAT foo::bar()", r.String())

	r.SetSymbol(plain)
	assert.Equal(t, "601018     R_X86_64_GLOB_DAT printf    ", r.String())
}

func TestStringNoTruncation(t *testing.T) {
	r := New(0xFFFFFFFF_FFFFFFFF, uint32(elf.R_X86_64_GOTPC32_TLSDESC), 0, KIND_RELA)
	r.SetArch(arch.ARCH_X86_64)
	s := r.String()
	assert.True(t, strings.HasPrefix(s, "ffffffffffffffff R_X86_64_GOTPC32_TLSDESC "))
}

func TestStringSeparatesLongFields(t *testing.T) {
	table := symtab.New([]elf.Symbol{{Name: "__tls_get_addr"}})
	sym, _ := table.Lookup(1)

	r := New(0x1234567890, uint32(elf.R_AARCH64_TLSDESC_CALL), 0, KIND_RELA)
	r.SetArch(arch.ARCH_ARM64)
	r.SetSymbol(sym)
	assert.Equal(t, []string{"1234567890", "R_AARCH64_TLSDESC_CALL", "__tls_get_addr"}, strings.Fields(r.String()))

	r = New(0, uint32(elf.R_ARM_V4BX), 0, KIND_REL)
	r.SetArch(arch.ARCH_ARM)
	assert.Equal(t, "0          R_ARM_V4BX           ", r.String())
}
