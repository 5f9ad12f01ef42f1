package encoding

import (
	"encoding/binary"
	"io"
)

type Stream interface {
	BlockSize() int
	ByteOrder() binary.ByteOrder
	Offset() uint64
	Skip(int) error
	Read([]byte) (int, error)
}

type byteStream struct {
	data  []byte
	off   int
	order binary.ByteOrder
	size  int
}

// NewStream reads fixed-width records from data. blockSize is the width of
// Go int, uint and uintptr fields on the wire: 4 for ELFCLASS32, 8 for
// ELFCLASS64.
func NewStream(data []byte, order binary.ByteOrder, blockSize int) Stream {
	return &byteStream{data: data, order: order, size: blockSize}
}

func (bs *byteStream) BlockSize() int {
	return bs.size
}

func (bs *byteStream) ByteOrder() binary.ByteOrder {
	return bs.order
}

func (bs *byteStream) Offset() uint64 {
	return uint64(bs.off)
}

func (bs *byteStream) Skip(n int) error {
	if n > len(bs.data)-bs.off {
		bs.off = len(bs.data)
		return io.ErrUnexpectedEOF
	}
	bs.off += n
	return nil
}

func (bs *byteStream) Read(b []byte) (int, error) {
	if bs.off >= len(bs.data) && len(b) > 0 {
		return 0, io.EOF
	}
	n := copy(b, bs.data[bs.off:])
	bs.off += n
	if n < len(b) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}
