package loader

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wnxd/reloc/arch"
	"github.com/wnxd/reloc/reloc"
	"github.com/wnxd/reloc/symtab"
)

func pack(t *testing.T, order binary.ByteOrder, recs ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, r := range recs {
		require.NoError(t, binary.Write(&buf, order, r))
	}
	return buf.Bytes()
}

func newParser(t *testing.T, cfg Config) *Parser {
	t.Helper()
	p, err := NewParser(cfg)
	require.NoError(t, err)
	return p
}

func testSymbols() *symtab.Table {
	return symtab.New([]elf.Symbol{
		{Name: "puts", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC)},
		{Name: "environ", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_OBJECT)},
	})
}

func TestNewParserValidation(t *testing.T) {
	_, err := NewParser(Config{Class: elf.ELFCLASSNONE, ByteOrder: binary.LittleEndian})
	assert.ErrorIs(t, err, ErrClassUnsupported)

	_, err = NewParser(Config{Class: elf.ELFCLASS64})
	assert.ErrorIs(t, err, ErrByteOrderMissing)

	_, err = NewParser(Config{Arch: arch.Arch(77), Class: elf.ELFCLASS64, ByteOrder: binary.LittleEndian})
	assert.ErrorIs(t, err, arch.ErrArchUnsupported)

	p, err := NewParser(Config{Class: elf.ELFCLASS32, ByteOrder: binary.BigEndian})
	require.NoError(t, err)
	assert.Equal(t, 8, p.RecordSize(false))
	assert.Equal(t, 12, p.RecordSize(true))

	p = newParser(t, Config{Class: elf.ELFCLASS64, ByteOrder: binary.BigEndian})
	assert.Equal(t, 16, p.RecordSize(false))
	assert.Equal(t, 24, p.RecordSize(true))
}

func TestParseRel32(t *testing.T) {
	p := newParser(t, Config{Arch: arch.ARCH_X86, Class: elf.ELFCLASS32, ByteOrder: binary.LittleEndian, Symbols: testSymbols()})
	data := pack(t, binary.LittleEndian,
		elf.Rel32{Off: 0x804a00c, Info: elf.R_INFO32(1, uint32(elf.R_386_JMP_SLOT))},
		elf.Rel32{Off: 0x8049ffc, Info: elf.R_INFO32(2, uint32(elf.R_386_GLOB_DAT))},
		elf.Rel32{Off: 0x8049f00, Info: uint32(elf.R_386_RELATIVE)},
	)
	rels, err := p.Parse(Table{Name: ".rel.dyn", Purpose: reloc.PURPOSE_DYNAMIC, Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 3)

	r := rels[0]
	assert.EqualValues(t, 0x804a00c, r.Address())
	assert.EqualValues(t, elf.R_386_JMP_SLOT, r.Type())
	assert.True(t, r.IsRel())
	assert.Zero(t, r.Addend())
	assert.Equal(t, arch.ARCH_X86, r.Arch())
	assert.Equal(t, reloc.PURPOSE_DYNAMIC, r.Purpose())
	sym, err := r.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "puts", sym.Name)

	sym, err = rels[1].Symbol()
	require.NoError(t, err)
	assert.Equal(t, "environ", sym.Name)

	assert.False(t, rels[2].HasSymbol())
	size, err := rels[2].Size()
	require.NoError(t, err)
	assert.EqualValues(t, 4, size)
}

func TestParseRela32BigEndian(t *testing.T) {
	p := newParser(t, Config{Arch: arch.ARCH_ARM, Class: elf.ELFCLASS32, ByteOrder: binary.BigEndian})
	data := pack(t, binary.BigEndian, elf.Rela32{Off: 0x100, Info: elf.R_INFO32(9, uint32(elf.R_ARM_ABS32)), Addend: -12})
	rels, err := p.Parse(Table{Name: ".rela.text", Rela: true, Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.EqualValues(t, 0x100, rels[0].Address())
	assert.EqualValues(t, elf.R_ARM_ABS32, rels[0].Type())
	assert.EqualValues(t, -12, rels[0].Addend())
	assert.True(t, rels[0].IsRela())
	assert.False(t, rels[0].HasSymbol())
}

func TestParse64(t *testing.T) {
	p := newParser(t, Config{Arch: arch.ARCH_ARM64, Class: elf.ELFCLASS64, ByteOrder: binary.LittleEndian, Symbols: testSymbols()})

	data := pack(t, binary.LittleEndian, elf.Rel64{Off: 0x10, Info: elf.R_INFO(1, uint32(elf.R_AARCH64_ABS64))})
	rels, err := p.Parse(Table{Name: ".rel.data", Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.True(t, rels[0].IsRel())
	assert.EqualValues(t, elf.R_AARCH64_ABS64, rels[0].Type())
	assert.True(t, rels[0].HasSymbol())

	data = pack(t, binary.LittleEndian,
		elf.Rela64{Off: 0x20, Info: elf.R_INFO(2, uint32(elf.R_AARCH64_GLOB_DAT)), Addend: 0},
		elf.Rela64{Off: 0x28, Info: elf.R_INFO(0, uint32(elf.R_AARCH64_RELATIVE)), Addend: 0x4000},
	)
	rels, err = p.Parse(Table{Name: ".rela.dyn", Rela: true, Purpose: reloc.PURPOSE_DYNAMIC, EntSize: 24, Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.EqualValues(t, 0x4000, rels[1].Addend())
	size, err := rels[1].Size()
	require.NoError(t, err)
	assert.EqualValues(t, 8, size)
	assert.Equal(t, "28         R_AARCH64_RELATIVE           ", rels[1].String())
}

func TestParseUnresolvedSymbol(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := newParser(t, Config{
		Arch:      arch.ARCH_X86_64,
		Class:     elf.ELFCLASS64,
		ByteOrder: binary.LittleEndian,
		Symbols:   testSymbols(),
		Logger:    zap.New(core),
	})
	data := pack(t, binary.LittleEndian, elf.Rela64{Off: 0x30, Info: elf.R_INFO(40, uint32(elf.R_X86_64_64))})
	rels, err := p.Parse(Table{Name: ".rela.dyn", Rela: true, Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.False(t, rels[0].HasSymbol())
	assert.Equal(t, 1, logs.FilterMessage("relocation symbol unresolved").Len())
}

func TestParseEntSize(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newParser(t, Config{Arch: arch.ARCH_X86_64, Class: elf.ELFCLASS64, ByteOrder: binary.LittleEndian, Logger: zap.New(core)})

	rec := pack(t, binary.LittleEndian, elf.Rel64{Off: 0x40, Info: relativeInfo(elf.R_X86_64_RELATIVE)})
	data := append(append([]byte{}, rec...), make([]byte, 8)...)
	data = append(data, rec...)
	data = append(data, make([]byte, 8)...)
	rels, err := p.Parse(Table{Name: ".rel.odd", EntSize: 24, Data: data})
	require.NoError(t, err)
	require.Len(t, rels, 2)
	assert.EqualValues(t, 0x40, rels[1].Address())
	assert.Equal(t, 1, logs.FilterMessage("entry size differs from record size").Len())

	_, err = p.Parse(Table{Name: ".rel.small", EntSize: 8, Data: data})
	assert.ErrorIs(t, err, ErrTableSize)
}

func TestParseTruncated(t *testing.T) {
	p := newParser(t, Config{Arch: arch.ARCH_X86_64, Class: elf.ELFCLASS64, ByteOrder: binary.LittleEndian})
	_, err := p.Parse(Table{Name: ".rela.dyn", Rela: true, Data: make([]byte, 30)})
	require.ErrorIs(t, err, ErrTableSize)
	assert.Equal(t, ErrTableSize, errors.Cause(err))
	assert.Contains(t, err.Error(), ".rela.dyn")

	rels, err := p.Parse(Table{Name: ".rela.empty", Rela: true})
	require.NoError(t, err)
	assert.Empty(t, rels)
}

func relativeInfo(typ elf.R_X86_64) uint64 {
	return uint64(typ)
}

func TestPurposeOf(t *testing.T) {
	assert.Equal(t, reloc.PURPOSE_OBJECT, purposeOf(elf.ET_REL, ".rela.text"))
	assert.Equal(t, reloc.PURPOSE_PLTGOT, purposeOf(elf.ET_DYN, ".rela.plt"))
	assert.Equal(t, reloc.PURPOSE_PLTGOT, purposeOf(elf.ET_EXEC, ".rel.plt"))
	assert.Equal(t, reloc.PURPOSE_DYNAMIC, purposeOf(elf.ET_DYN, ".rela.dyn"))
}
