package reloctab

import "debug/elf"

// Instruction-patching relocations report the instruction they patch: 4 bytes
// for ARM and 32-bit Thumb, 2 for 16-bit Thumb. R_ARM_PRIVATE_* have no
// defined field and are only named.
var armTable = NewTable(map[elf.R_ARM]uint32{
	elf.R_ARM_NONE:               0,
	elf.R_ARM_PC24:               4,
	elf.R_ARM_ABS32:              4,
	elf.R_ARM_REL32:              4,
	elf.R_ARM_PC13:               4,
	elf.R_ARM_ABS16:              2,
	elf.R_ARM_ABS12:              4,
	elf.R_ARM_THM_ABS5:           2,
	elf.R_ARM_ABS8:               1,
	elf.R_ARM_SBREL32:            4,
	elf.R_ARM_THM_PC22:           4,
	elf.R_ARM_THM_PC8:            2,
	elf.R_ARM_AMP_VCALL9:         2,
	elf.R_ARM_SWI24:              4,
	elf.R_ARM_THM_SWI8:           2,
	elf.R_ARM_XPC25:              4,
	elf.R_ARM_THM_XPC22:          4,
	elf.R_ARM_TLS_DTPMOD32:       4,
	elf.R_ARM_TLS_DTPOFF32:       4,
	elf.R_ARM_TLS_TPOFF32:        4,
	elf.R_ARM_COPY:               4,
	elf.R_ARM_GLOB_DAT:           4,
	elf.R_ARM_JUMP_SLOT:          4,
	elf.R_ARM_RELATIVE:           4,
	elf.R_ARM_GOTOFF:             4,
	elf.R_ARM_GOTPC:              4,
	elf.R_ARM_GOT32:              4,
	elf.R_ARM_PLT32:              4,
	elf.R_ARM_CALL:               4,
	elf.R_ARM_JUMP24:             4,
	elf.R_ARM_THM_JUMP24:         4,
	elf.R_ARM_BASE_ABS:           4,
	elf.R_ARM_ALU_PCREL_7_0:      4,
	elf.R_ARM_ALU_PCREL_15_8:     4,
	elf.R_ARM_ALU_PCREL_23_15:    4,
	elf.R_ARM_LDR_SBREL_11_10_NC: 4,
	elf.R_ARM_ALU_SBREL_19_12_NC: 4,
	elf.R_ARM_ALU_SBREL_27_20_CK: 4,
	elf.R_ARM_TARGET1:            4,
	elf.R_ARM_SBREL31:            4,
	elf.R_ARM_V4BX:               4,
	elf.R_ARM_TARGET2:            4,
	elf.R_ARM_PREL31:             4,
	elf.R_ARM_MOVW_ABS_NC:        4,
	elf.R_ARM_MOVT_ABS:           4,
	elf.R_ARM_MOVW_PREL_NC:       4,
	elf.R_ARM_MOVT_PREL:          4,
	elf.R_ARM_THM_MOVW_ABS_NC:    4,
	elf.R_ARM_THM_MOVT_ABS:       4,
	elf.R_ARM_THM_MOVW_PREL_NC:   4,
	elf.R_ARM_THM_MOVT_PREL:      4,
	elf.R_ARM_THM_JUMP19:         4,
	elf.R_ARM_THM_JUMP6:          2,
	elf.R_ARM_THM_ALU_PREL_11_0:  4,
	elf.R_ARM_THM_PC12:           4,
	elf.R_ARM_ABS32_NOI:          4,
	elf.R_ARM_REL32_NOI:          4,
	elf.R_ARM_ALU_PC_G0_NC:       4,
	elf.R_ARM_ALU_PC_G0:          4,
	elf.R_ARM_ALU_PC_G1_NC:       4,
	elf.R_ARM_ALU_PC_G1:          4,
	elf.R_ARM_ALU_PC_G2:          4,
	elf.R_ARM_LDR_PC_G1:          4,
	elf.R_ARM_LDR_PC_G2:          4,
	elf.R_ARM_LDRS_PC_G0:         4,
	elf.R_ARM_LDRS_PC_G1:         4,
	elf.R_ARM_LDRS_PC_G2:         4,
	elf.R_ARM_LDC_PC_G0:          4,
	elf.R_ARM_LDC_PC_G1:          4,
	elf.R_ARM_LDC_PC_G2:          4,
	elf.R_ARM_ALU_SB_G0_NC:       4,
	elf.R_ARM_ALU_SB_G0:          4,
	elf.R_ARM_ALU_SB_G1_NC:       4,
	elf.R_ARM_ALU_SB_G1:          4,
	elf.R_ARM_ALU_SB_G2:          4,
	elf.R_ARM_LDR_SB_G0:          4,
	elf.R_ARM_LDR_SB_G1:          4,
	elf.R_ARM_LDR_SB_G2:          4,
	elf.R_ARM_LDRS_SB_G0:         4,
	elf.R_ARM_LDRS_SB_G1:         4,
	elf.R_ARM_LDRS_SB_G2:         4,
	elf.R_ARM_LDC_SB_G0:          4,
	elf.R_ARM_LDC_SB_G1:          4,
	elf.R_ARM_LDC_SB_G2:          4,
	elf.R_ARM_MOVW_BREL_NC:       4,
	elf.R_ARM_MOVT_BREL:          4,
	elf.R_ARM_MOVW_BREL:          4,
	elf.R_ARM_THM_MOVW_BREL_NC:   4,
	elf.R_ARM_THM_MOVT_BREL:      4,
	elf.R_ARM_THM_MOVW_BREL:      4,
	elf.R_ARM_TLS_GOTDESC:        4,
	elf.R_ARM_TLS_CALL:           4,
	elf.R_ARM_TLS_DESCSEQ:        4,
	elf.R_ARM_THM_TLS_CALL:       4,
	elf.R_ARM_PLT32_ABS:          4,
	elf.R_ARM_GOT_ABS:            4,
	elf.R_ARM_GOT_PREL:           4,
	elf.R_ARM_GOT_BREL12:         4,
	elf.R_ARM_GOTOFF12:           4,
	elf.R_ARM_GOTRELAX:           4,
	elf.R_ARM_GNU_VTENTRY:        0,
	elf.R_ARM_GNU_VTINHERIT:      0,
	elf.R_ARM_THM_JUMP11:         2,
	elf.R_ARM_THM_JUMP8:          2,
	elf.R_ARM_TLS_GD32:           4,
	elf.R_ARM_TLS_LDM32:          4,
	elf.R_ARM_TLS_LDO32:          4,
	elf.R_ARM_TLS_IE32:           4,
	elf.R_ARM_TLS_LE32:           4,
	elf.R_ARM_TLS_LDO12:          4,
	elf.R_ARM_TLS_LE12:           4,
	elf.R_ARM_TLS_IE12GP:         4,
	elf.R_ARM_ME_TOO:             0,
	elf.R_ARM_THM_TLS_DESCSEQ16:  2,
	elf.R_ARM_THM_TLS_DESCSEQ32:  4,
	elf.R_ARM_THM_GOT_BREL12:     4,
	elf.R_ARM_THM_ALU_ABS_G0_NC:  2,
	elf.R_ARM_THM_ALU_ABS_G1_NC:  2,
	elf.R_ARM_THM_ALU_ABS_G2_NC:  2,
	elf.R_ARM_THM_ALU_ABS_G3:     2,
	elf.R_ARM_IRELATIVE:          4,
	elf.R_ARM_RXPC25:             4,
	elf.R_ARM_RSBREL32:           4,
	elf.R_ARM_THM_RPC22:          4,
	elf.R_ARM_RREL32:             4,
	elf.R_ARM_RABS32:             4,
	elf.R_ARM_RPC24:              4,
	elf.R_ARM_RBASE:              0,
}, elf.R_ARM_RBASE)
