package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher folds fixed-width values into a 64-bit digest. Values are encoded
// little endian so the result never depends on the host.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func New() *Hasher {
	return &Hasher{d: xxhash.New()}
}

func (h *Hasher) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
}

func (h *Hasher) Int64(v int64) {
	h.Uint64(uint64(v))
}

func (h *Hasher) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(h.buf[:4], v)
	h.d.Write(h.buf[:4])
}

// String is length prefixed so adjacent strings cannot alias.
func (h *Hasher) String(s string) {
	h.Uint64(uint64(len(s)))
	h.d.WriteString(s)
}

func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}
