package arch

import (
	"debug/elf"
	"strconv"
)

type Arch int

const (
	ARCH_NONE Arch = iota
	ARCH_ARM
	ARCH_ARM64
	ARCH_X86
	ARCH_X86_64
	ARCH_MIPS
	ARCH_PPC64
	ARCH_RISCV64

	archCount
)

var (
	archNames = [archCount]string{
		ARCH_NONE:    "none",
		ARCH_ARM:     "arm",
		ARCH_ARM64:   "arm64",
		ARCH_X86:     "x86",
		ARCH_X86_64:  "x86_64",
		ARCH_MIPS:    "mips",
		ARCH_PPC64:   "ppc64",
		ARCH_RISCV64: "riscv64",
	}
	archMachines = [archCount]elf.Machine{
		ARCH_NONE:    elf.EM_NONE,
		ARCH_ARM:     elf.EM_ARM,
		ARCH_ARM64:   elf.EM_AARCH64,
		ARCH_X86:     elf.EM_386,
		ARCH_X86_64:  elf.EM_X86_64,
		ARCH_MIPS:    elf.EM_MIPS,
		ARCH_PPC64:   elf.EM_PPC64,
		ARCH_RISCV64: elf.EM_RISCV,
	}
)

// Valid reports whether a is one of the enumerated architectures.
func (a Arch) Valid() bool {
	return a >= ARCH_NONE && a < archCount
}

func (a Arch) String() string {
	if !a.Valid() {
		return "Arch(" + strconv.Itoa(int(a)) + ")"
	}
	return archNames[a]
}

// Machine returns the ELF e_machine value of a.
func (a Arch) Machine() elf.Machine {
	if !a.Valid() {
		return elf.EM_NONE
	}
	return archMachines[a]
}

// PointerSize returns the natural word size of a in bytes.
func (a Arch) PointerSize() (uint64, error) {
	switch a {
	case ARCH_ARM, ARCH_X86, ARCH_MIPS:
		return 4, nil
	case ARCH_ARM64, ARCH_X86_64, ARCH_PPC64, ARCH_RISCV64:
		return 8, nil
	}
	return 0, ErrArchUnsupported
}

// FromMachine maps an ELF e_machine value to its Arch.
func FromMachine(m elf.Machine) (Arch, error) {
	if m == elf.EM_NONE {
		return ARCH_NONE, nil
	}
	for a := ARCH_ARM; a < archCount; a++ {
		if archMachines[a] == m {
			return a, nil
		}
	}
	return ARCH_NONE, ErrArchUnsupported
}
