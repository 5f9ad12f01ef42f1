package loader

import (
	"debug/elf"
	"encoding/binary"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wnxd/reloc/arch"
	"github.com/wnxd/reloc/encoding"
	"github.com/wnxd/reloc/reloc"
	"github.com/wnxd/reloc/symtab"
)

type Config struct {
	Arch      arch.Arch
	Class     elf.Class
	ByteOrder binary.ByteOrder
	// Symbols resolves the symbol index packed in each record's info
	// field. Nil leaves every relocation without a symbol.
	Symbols *symtab.Table
	Logger  *zap.Logger
}

// Parser turns raw relocation tables into relocations, then assigns the
// architecture and the symbol each record refers to.
type Parser struct {
	arch      arch.Arch
	class     elf.Class
	order     binary.ByteOrder
	blockSize int
	symbols   *symtab.Table
	logger    *zap.Logger
}

func NewParser(cfg Config) (*Parser, error) {
	if !cfg.Arch.Valid() {
		return nil, errors.Wrapf(arch.ErrArchUnsupported, "arch tag %d", int(cfg.Arch))
	}
	var bs int
	switch cfg.Class {
	case elf.ELFCLASS32:
		bs = 4
	case elf.ELFCLASS64:
		bs = 8
	default:
		return nil, errors.Wrapf(ErrClassUnsupported, "class %s", cfg.Class)
	}
	if cfg.ByteOrder == nil {
		return nil, ErrByteOrderMissing
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		arch:      cfg.Arch,
		class:     cfg.Class,
		order:     cfg.ByteOrder,
		blockSize: bs,
		symbols:   cfg.Symbols,
		logger:    logger,
	}, nil
}

// RecordSize returns the on-disk size of one record of the parser's class.
func (p *Parser) RecordSize(rela bool) int {
	switch {
	case p.class == elf.ELFCLASS32 && !rela:
		return encoding.DecodeSize(p.blockSize, elf.Rel32{})
	case p.class == elf.ELFCLASS32:
		return encoding.DecodeSize(p.blockSize, elf.Rela32{})
	case !rela:
		return encoding.DecodeSize(p.blockSize, elf.Rel64{})
	}
	return encoding.DecodeSize(p.blockSize, elf.Rela64{})
}

func (p *Parser) Parse(t Table) ([]*reloc.Relocation, error) {
	size := p.RecordSize(t.Rela)
	stride := size
	if t.EntSize != 0 && t.EntSize != uint64(size) {
		if t.EntSize < uint64(size) {
			return nil, errors.Wrapf(ErrTableSize, "%s: entry size %d below record size %d", t.Name, t.EntSize, size)
		}
		p.logger.Warn("entry size differs from record size",
			zap.String("section", t.Name),
			zap.Uint64("entsize", t.EntSize),
			zap.Int("record", size))
		stride = int(t.EntSize)
	}
	if len(t.Data)%stride != 0 {
		return nil, errors.Wrapf(ErrTableSize, "%s: %d bytes is not a multiple of %d", t.Name, len(t.Data), stride)
	}
	count := len(t.Data) / stride
	p.logger.Debug("parsing relocation table",
		zap.String("section", t.Name),
		zap.Bool("rela", t.Rela),
		zap.Stringer("purpose", t.Purpose),
		zap.Int("count", count))

	stream := encoding.NewStream(t.Data, p.order, p.blockSize)
	rels := make([]*reloc.Relocation, 0, count)
	for i := 0; i < count; i++ {
		r, sym, err := p.next(stream, t.Rela)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: record %d", t.Name, i)
		}
		if stride > size {
			if err = stream.Skip(stride - size); err != nil {
				return nil, errors.Wrapf(err, "%s: record %d", t.Name, i)
			}
		}
		r.SetArch(p.arch)
		r.SetPurpose(t.Purpose)
		p.attach(r, sym)
		rels = append(rels, r)
	}
	return rels, nil
}

func (p *Parser) next(stream encoding.Stream, rela bool) (*reloc.Relocation, uint32, error) {
	switch {
	case p.class == elf.ELFCLASS32 && !rela:
		var rec elf.Rel32
		if err := encoding.Decode(stream, &rec); err != nil {
			return nil, 0, err
		}
		return reloc.NewRel32(rec), elf.R_SYM32(rec.Info), nil
	case p.class == elf.ELFCLASS32:
		var rec elf.Rela32
		if err := encoding.Decode(stream, &rec); err != nil {
			return nil, 0, err
		}
		return reloc.NewRela32(rec), elf.R_SYM32(rec.Info), nil
	case !rela:
		var rec elf.Rel64
		if err := encoding.Decode(stream, &rec); err != nil {
			return nil, 0, err
		}
		return reloc.NewRel64(rec), elf.R_SYM64(rec.Info), nil
	}
	var rec elf.Rela64
	if err := encoding.Decode(stream, &rec); err != nil {
		return nil, 0, err
	}
	return reloc.NewRela64(rec), elf.R_SYM64(rec.Info), nil
}

func (p *Parser) attach(r *reloc.Relocation, index uint32) {
	if index == 0 || p.symbols == nil {
		return
	}
	sym, err := p.symbols.Lookup(index)
	if err != nil {
		p.logger.Debug("relocation symbol unresolved",
			zap.Uint64("address", r.Address()),
			zap.Uint32("index", index),
			zap.Error(err))
		return
	}
	r.SetSymbol(sym)
}
