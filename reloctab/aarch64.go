package reloctab

import "debug/elf"

// Instruction-patching relocations report the 4-byte instruction word.
// TLS descriptor sequence markers patch nothing.
var aarch64Table = NewTable(map[elf.R_AARCH64]uint32{
	elf.R_AARCH64_NONE:                            0,
	elf.R_AARCH64_P32_ABS32:                       4,
	elf.R_AARCH64_P32_ABS16:                       2,
	elf.R_AARCH64_P32_PREL32:                      4,
	elf.R_AARCH64_P32_PREL16:                      2,
	elf.R_AARCH64_P32_MOVW_UABS_G0:                4,
	elf.R_AARCH64_P32_MOVW_UABS_G0_NC:             4,
	elf.R_AARCH64_P32_MOVW_UABS_G1:                4,
	elf.R_AARCH64_P32_MOVW_SABS_G0:                4,
	elf.R_AARCH64_P32_LD_PREL_LO19:                4,
	elf.R_AARCH64_P32_ADR_PREL_LO21:               4,
	elf.R_AARCH64_P32_ADR_PREL_PG_HI21:            4,
	elf.R_AARCH64_P32_ADD_ABS_LO12_NC:             4,
	elf.R_AARCH64_P32_LDST8_ABS_LO12_NC:           4,
	elf.R_AARCH64_P32_LDST16_ABS_LO12_NC:          4,
	elf.R_AARCH64_P32_LDST32_ABS_LO12_NC:          4,
	elf.R_AARCH64_P32_LDST64_ABS_LO12_NC:          4,
	elf.R_AARCH64_P32_LDST128_ABS_LO12_NC:         4,
	elf.R_AARCH64_P32_TSTBR14:                     4,
	elf.R_AARCH64_P32_CONDBR19:                    4,
	elf.R_AARCH64_P32_JUMP26:                      4,
	elf.R_AARCH64_P32_CALL26:                      4,
	elf.R_AARCH64_P32_GOT_LD_PREL19:               4,
	elf.R_AARCH64_P32_ADR_GOT_PAGE:                4,
	elf.R_AARCH64_P32_LD32_GOT_LO12_NC:            4,
	elf.R_AARCH64_P32_TLSGD_ADR_PAGE21:            4,
	elf.R_AARCH64_P32_TLSGD_ADD_LO12_NC:           4,
	elf.R_AARCH64_P32_TLSIE_ADR_GOTTPREL_PAGE21:   4,
	elf.R_AARCH64_P32_TLSIE_LD32_GOTTPREL_LO12_NC: 4,
	elf.R_AARCH64_P32_TLSIE_LD_GOTTPREL_PREL19:    4,
	elf.R_AARCH64_P32_TLSLE_MOVW_TPREL_G1:         4,
	elf.R_AARCH64_P32_TLSLE_MOVW_TPREL_G0:         4,
	elf.R_AARCH64_P32_TLSLE_MOVW_TPREL_G0_NC:      4,
	elf.R_AARCH64_P32_TLSLE_ADD_TPREL_HI12:        4,
	elf.R_AARCH64_P32_TLSLE_ADD_TPREL_LO12:        4,
	elf.R_AARCH64_P32_TLSLE_ADD_TPREL_LO12_NC:     4,
	elf.R_AARCH64_P32_TLSDESC_LD_PREL19:           4,
	elf.R_AARCH64_P32_TLSDESC_ADR_PREL21:          4,
	elf.R_AARCH64_P32_TLSDESC_ADR_PAGE21:          4,
	elf.R_AARCH64_P32_TLSDESC_LD32_LO12_NC:        4,
	elf.R_AARCH64_P32_TLSDESC_ADD_LO12_NC:         4,
	elf.R_AARCH64_P32_TLSDESC_CALL:                0,
	elf.R_AARCH64_P32_COPY:                        4,
	elf.R_AARCH64_P32_GLOB_DAT:                    4,
	elf.R_AARCH64_P32_JUMP_SLOT:                   4,
	elf.R_AARCH64_P32_RELATIVE:                    4,
	elf.R_AARCH64_P32_TLS_DTPMOD:                  4,
	elf.R_AARCH64_P32_TLS_DTPREL:                  4,
	elf.R_AARCH64_P32_TLS_TPREL:                   4,
	elf.R_AARCH64_P32_TLSDESC:                     4,
	elf.R_AARCH64_P32_IRELATIVE:                   4,
	elf.R_AARCH64_NULL:                            0,
	elf.R_AARCH64_ABS64:                           8,
	elf.R_AARCH64_ABS32:                           4,
	elf.R_AARCH64_ABS16:                           2,
	elf.R_AARCH64_PREL64:                          8,
	elf.R_AARCH64_PREL32:                          4,
	elf.R_AARCH64_PREL16:                          2,
	elf.R_AARCH64_MOVW_UABS_G0:                    4,
	elf.R_AARCH64_MOVW_UABS_G0_NC:                 4,
	elf.R_AARCH64_MOVW_UABS_G1:                    4,
	elf.R_AARCH64_MOVW_UABS_G1_NC:                 4,
	elf.R_AARCH64_MOVW_UABS_G2:                    4,
	elf.R_AARCH64_MOVW_UABS_G2_NC:                 4,
	elf.R_AARCH64_MOVW_UABS_G3:                    4,
	elf.R_AARCH64_MOVW_SABS_G0:                    4,
	elf.R_AARCH64_MOVW_SABS_G1:                    4,
	elf.R_AARCH64_MOVW_SABS_G2:                    4,
	elf.R_AARCH64_LD_PREL_LO19:                    4,
	elf.R_AARCH64_ADR_PREL_LO21:                   4,
	elf.R_AARCH64_ADR_PREL_PG_HI21:                4,
	elf.R_AARCH64_ADR_PREL_PG_HI21_NC:             4,
	elf.R_AARCH64_ADD_ABS_LO12_NC:                 4,
	elf.R_AARCH64_LDST8_ABS_LO12_NC:               4,
	elf.R_AARCH64_TSTBR14:                         4,
	elf.R_AARCH64_CONDBR19:                        4,
	elf.R_AARCH64_JUMP26:                          4,
	elf.R_AARCH64_CALL26:                          4,
	elf.R_AARCH64_LDST16_ABS_LO12_NC:              4,
	elf.R_AARCH64_LDST32_ABS_LO12_NC:              4,
	elf.R_AARCH64_LDST64_ABS_LO12_NC:              4,
	elf.R_AARCH64_LDST128_ABS_LO12_NC:             4,
	elf.R_AARCH64_GOT_LD_PREL19:                   4,
	elf.R_AARCH64_LD64_GOTOFF_LO15:                4,
	elf.R_AARCH64_ADR_GOT_PAGE:                    4,
	elf.R_AARCH64_LD64_GOT_LO12_NC:                4,
	elf.R_AARCH64_LD64_GOTPAGE_LO15:               4,
	elf.R_AARCH64_TLSGD_ADR_PREL21:                4,
	elf.R_AARCH64_TLSGD_ADR_PAGE21:                4,
	elf.R_AARCH64_TLSGD_ADD_LO12_NC:               4,
	elf.R_AARCH64_TLSGD_MOVW_G1:                   4,
	elf.R_AARCH64_TLSGD_MOVW_G0_NC:                4,
	elf.R_AARCH64_TLSLD_ADR_PREL21:                4,
	elf.R_AARCH64_TLSLD_ADR_PAGE21:                4,
	elf.R_AARCH64_TLSIE_MOVW_GOTTPREL_G1:          4,
	elf.R_AARCH64_TLSIE_MOVW_GOTTPREL_G0_NC:       4,
	elf.R_AARCH64_TLSIE_ADR_GOTTPREL_PAGE21:       4,
	elf.R_AARCH64_TLSIE_LD64_GOTTPREL_LO12_NC:     4,
	elf.R_AARCH64_TLSIE_LD_GOTTPREL_PREL19:        4,
	elf.R_AARCH64_TLSLE_MOVW_TPREL_G2:             4,
	elf.R_AARCH64_TLSLE_MOVW_TPREL_G1:             4,
	elf.R_AARCH64_TLSLE_MOVW_TPREL_G1_NC:          4,
	elf.R_AARCH64_TLSLE_MOVW_TPREL_G0:             4,
	elf.R_AARCH64_TLSLE_MOVW_TPREL_G0_NC:          4,
	elf.R_AARCH64_TLSLE_ADD_TPREL_HI12:            4,
	elf.R_AARCH64_TLSLE_ADD_TPREL_LO12:            4,
	elf.R_AARCH64_TLSLE_ADD_TPREL_LO12_NC:         4,
	elf.R_AARCH64_TLSDESC_LD_PREL19:               4,
	elf.R_AARCH64_TLSDESC_ADR_PREL21:              4,
	elf.R_AARCH64_TLSDESC_ADR_PAGE21:              4,
	elf.R_AARCH64_TLSDESC_LD64_LO12_NC:            4,
	elf.R_AARCH64_TLSDESC_ADD_LO12_NC:             4,
	elf.R_AARCH64_TLSDESC_OFF_G1:                  4,
	elf.R_AARCH64_TLSDESC_OFF_G0_NC:               4,
	elf.R_AARCH64_TLSDESC_LDR:                     0,
	elf.R_AARCH64_TLSDESC_ADD:                     0,
	elf.R_AARCH64_TLSDESC_CALL:                    0,
	elf.R_AARCH64_TLSLE_LDST128_TPREL_LO12:        4,
	elf.R_AARCH64_TLSLE_LDST128_TPREL_LO12_NC:     4,
	elf.R_AARCH64_TLSLD_LDST128_DTPREL_LO12:       4,
	elf.R_AARCH64_TLSLD_LDST128_DTPREL_LO12_NC:    4,
	elf.R_AARCH64_COPY:                            8,
	elf.R_AARCH64_GLOB_DAT:                        8,
	elf.R_AARCH64_JUMP_SLOT:                       8,
	elf.R_AARCH64_RELATIVE:                        8,
	elf.R_AARCH64_TLS_DTPMOD64:                    8,
	elf.R_AARCH64_TLS_DTPREL64:                    8,
	elf.R_AARCH64_TLS_TPREL64:                     8,
	elf.R_AARCH64_TLSDESC:                         8,
	elf.R_AARCH64_IRELATIVE:                       8,
}, elf.R_AARCH64_IRELATIVE).Extend(aarch64Extra)

// Codes debug/elf does not define.
var aarch64Extra = map[uint32]Entry{
	287: {"R_AARCH64_MOVW_PREL_G0", 4},
	288: {"R_AARCH64_MOVW_PREL_G0_NC", 4},
	289: {"R_AARCH64_MOVW_PREL_G1", 4},
	290: {"R_AARCH64_MOVW_PREL_G1_NC", 4},
	291: {"R_AARCH64_MOVW_PREL_G2", 4},
	292: {"R_AARCH64_MOVW_PREL_G2_NC", 4},
	293: {"R_AARCH64_MOVW_PREL_G3", 4},
	300: {"R_AARCH64_MOVW_GOTOFF_G0", 4},
	301: {"R_AARCH64_MOVW_GOTOFF_G0_NC", 4},
	302: {"R_AARCH64_MOVW_GOTOFF_G1", 4},
	303: {"R_AARCH64_MOVW_GOTOFF_G1_NC", 4},
	304: {"R_AARCH64_MOVW_GOTOFF_G2", 4},
	305: {"R_AARCH64_MOVW_GOTOFF_G2_NC", 4},
	306: {"R_AARCH64_MOVW_GOTOFF_G3", 4},
	307: {"R_AARCH64_GOTREL64", 8},
	308: {"R_AARCH64_GOTREL32", 4},
	519: {"R_AARCH64_TLSLD_ADD_LO12_NC", 4},
	520: {"R_AARCH64_TLSLD_MOVW_G1", 4},
	521: {"R_AARCH64_TLSLD_MOVW_G0_NC", 4},
	522: {"R_AARCH64_TLSLD_LD_PREL19", 4},
	523: {"R_AARCH64_TLSLD_MOVW_DTPREL_G2", 4},
	524: {"R_AARCH64_TLSLD_MOVW_DTPREL_G1", 4},
	525: {"R_AARCH64_TLSLD_MOVW_DTPREL_G1_NC", 4},
	526: {"R_AARCH64_TLSLD_MOVW_DTPREL_G0", 4},
	527: {"R_AARCH64_TLSLD_MOVW_DTPREL_G0_NC", 4},
	528: {"R_AARCH64_TLSLD_ADD_DTPREL_HI12", 4},
	529: {"R_AARCH64_TLSLD_ADD_DTPREL_LO12", 4},
	530: {"R_AARCH64_TLSLD_ADD_DTPREL_LO12_NC", 4},
	531: {"R_AARCH64_TLSLD_LDST8_DTPREL_LO12", 4},
	532: {"R_AARCH64_TLSLD_LDST8_DTPREL_LO12_NC", 4},
	533: {"R_AARCH64_TLSLD_LDST16_DTPREL_LO12", 4},
	534: {"R_AARCH64_TLSLD_LDST16_DTPREL_LO12_NC", 4},
	535: {"R_AARCH64_TLSLD_LDST32_DTPREL_LO12", 4},
	536: {"R_AARCH64_TLSLD_LDST32_DTPREL_LO12_NC", 4},
	537: {"R_AARCH64_TLSLD_LDST64_DTPREL_LO12", 4},
	538: {"R_AARCH64_TLSLD_LDST64_DTPREL_LO12_NC", 4},
	552: {"R_AARCH64_TLSLE_LDST8_TPREL_LO12", 4},
	553: {"R_AARCH64_TLSLE_LDST8_TPREL_LO12_NC", 4},
	554: {"R_AARCH64_TLSLE_LDST16_TPREL_LO12", 4},
	555: {"R_AARCH64_TLSLE_LDST16_TPREL_LO12_NC", 4},
	556: {"R_AARCH64_TLSLE_LDST32_TPREL_LO12", 4},
	557: {"R_AARCH64_TLSLE_LDST32_TPREL_LO12_NC", 4},
	558: {"R_AARCH64_TLSLE_LDST64_TPREL_LO12", 4},
	559: {"R_AARCH64_TLSLE_LDST64_TPREL_LO12_NC", 4},
}
