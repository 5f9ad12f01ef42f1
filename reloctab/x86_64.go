package reloctab

import "debug/elf"

var x86_64Table = NewTable(map[elf.R_X86_64]uint32{
	elf.R_X86_64_NONE:            0,
	elf.R_X86_64_64:              8,
	elf.R_X86_64_PC32:            4,
	elf.R_X86_64_GOT32:           4,
	elf.R_X86_64_PLT32:           4,
	elf.R_X86_64_COPY:            4,
	elf.R_X86_64_GLOB_DAT:        8,
	elf.R_X86_64_JMP_SLOT:        8,
	elf.R_X86_64_RELATIVE:        8,
	elf.R_X86_64_GOTPCREL:        4,
	elf.R_X86_64_32:              4,
	elf.R_X86_64_32S:             4,
	elf.R_X86_64_16:              2,
	elf.R_X86_64_PC16:            2,
	elf.R_X86_64_8:               1,
	elf.R_X86_64_PC8:             1,
	elf.R_X86_64_DTPMOD64:        8,
	elf.R_X86_64_DTPOFF64:        8,
	elf.R_X86_64_TPOFF64:         8,
	elf.R_X86_64_TLSGD:           4,
	elf.R_X86_64_TLSLD:           4,
	elf.R_X86_64_DTPOFF32:        4,
	elf.R_X86_64_GOTTPOFF:        4,
	elf.R_X86_64_TPOFF32:         4,
	elf.R_X86_64_PC64:            8,
	elf.R_X86_64_GOTOFF64:        8,
	elf.R_X86_64_GOTPC32:         4,
	elf.R_X86_64_GOT64:           8,
	elf.R_X86_64_GOTPCREL64:      8,
	elf.R_X86_64_GOTPC64:         8,
	elf.R_X86_64_GOTPLT64:        8,
	elf.R_X86_64_PLTOFF64:        8,
	elf.R_X86_64_SIZE32:          4,
	elf.R_X86_64_SIZE64:          8,
	elf.R_X86_64_GOTPC32_TLSDESC: 4,
	elf.R_X86_64_TLSDESC_CALL:    0,
	elf.R_X86_64_TLSDESC:         8,
	elf.R_X86_64_IRELATIVE:       8,
	elf.R_X86_64_RELATIVE64:      8,
	elf.R_X86_64_PC32_BND:        4,
	elf.R_X86_64_PLT32_BND:       4,
	elf.R_X86_64_GOTPCRELX:       4,
	elf.R_X86_64_REX_GOTPCRELX:   4,
}, elf.R_X86_64_REX_GOTPCRELX)
