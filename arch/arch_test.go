package arch

import (
	"debug/elf"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineRoundTrip(t *testing.T) {
	for a := ARCH_NONE; a < archCount; a++ {
		got, err := FromMachine(a.Machine())
		require.NoError(t, err)
		assert.Equal(t, a, got, a.String())
	}
}

func TestFromMachineUnsupported(t *testing.T) {
	a, err := FromMachine(elf.EM_SPARC)
	assert.ErrorIs(t, err, ErrArchUnsupported)
	assert.Equal(t, ARCH_NONE, a)
}

func TestValid(t *testing.T) {
	assert.True(t, ARCH_NONE.Valid())
	assert.True(t, ARCH_RISCV64.Valid())
	assert.False(t, Arch(-1).Valid())
	assert.False(t, archCount.Valid())
	assert.Equal(t, "Arch(99)", Arch(99).String())
	assert.Equal(t, elf.EM_NONE, Arch(99).Machine())
}

func TestPointerSize(t *testing.T) {
	size, err := ARCH_X86.PointerSize()
	require.NoError(t, err)
	assert.EqualValues(t, 4, size)

	size, err = ARCH_ARM64.PointerSize()
	require.NoError(t, err)
	assert.EqualValues(t, 8, size)

	_, err = ARCH_NONE.PointerSize()
	assert.ErrorIs(t, err, ErrArchUnsupported)
}
