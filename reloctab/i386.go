package reloctab

import "debug/elf"

var i386Table = NewTable(map[elf.R_386]uint32{
	elf.R_386_NONE:          0,
	elf.R_386_32:            4,
	elf.R_386_PC32:          4,
	elf.R_386_GOT32:         4,
	elf.R_386_PLT32:         4,
	elf.R_386_COPY:          4,
	elf.R_386_GLOB_DAT:      4,
	elf.R_386_JMP_SLOT:      4,
	elf.R_386_RELATIVE:      4,
	elf.R_386_GOTOFF:        4,
	elf.R_386_GOTPC:         4,
	elf.R_386_32PLT:         4,
	elf.R_386_TLS_TPOFF:     4,
	elf.R_386_TLS_IE:        4,
	elf.R_386_TLS_GOTIE:     4,
	elf.R_386_TLS_LE:        4,
	elf.R_386_TLS_GD:        4,
	elf.R_386_TLS_LDM:       4,
	elf.R_386_16:            2,
	elf.R_386_PC16:          2,
	elf.R_386_8:             1,
	elf.R_386_PC8:           1,
	elf.R_386_TLS_GD_32:     4,
	elf.R_386_TLS_GD_PUSH:   4,
	elf.R_386_TLS_GD_CALL:   4,
	elf.R_386_TLS_GD_POP:    4,
	elf.R_386_TLS_LDM_32:    4,
	elf.R_386_TLS_LDM_PUSH:  4,
	elf.R_386_TLS_LDM_CALL:  4,
	elf.R_386_TLS_LDM_POP:   4,
	elf.R_386_TLS_LDO_32:    4,
	elf.R_386_TLS_IE_32:     4,
	elf.R_386_TLS_LE_32:     4,
	elf.R_386_TLS_DTPMOD32:  4,
	elf.R_386_TLS_DTPOFF32:  4,
	elf.R_386_TLS_TPOFF32:   4,
	elf.R_386_SIZE32:        4,
	elf.R_386_TLS_GOTDESC:   4,
	elf.R_386_TLS_DESC_CALL: 0,
	elf.R_386_TLS_DESC:      4,
	elf.R_386_IRELATIVE:     4,
	elf.R_386_GOT32X:        4,
}, elf.R_386_GOT32X)
