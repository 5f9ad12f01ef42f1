package reloc

import "github.com/wnxd/reloc/internal/fingerprint"

// Hash folds address, addend, type, architecture and, when attached, the
// symbol's own hash. The record kind and purpose are not part of it.
func (r *Relocation) Hash() uint64 {
	h := fingerprint.New()
	h.Uint64(r.address)
	h.Int64(r.addend)
	h.Uint32(r.typ)
	h.Uint64(uint64(r.arch))
	if r.symbol != nil {
		h.Uint64(r.symbol.Hash())
	}
	return h.Sum64()
}

// Equal compares the structural hashes of r and o. A REL and a RELA record
// with otherwise identical fields are equal.
func (r *Relocation) Equal(o *Relocation) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Hash() == o.Hash()
}

// Dedup drops structural duplicates, keeping the first occurrence. Nil
// entries are equal to each other, so only the first nil is kept.
func Dedup(rels []*Relocation) []*Relocation {
	seen := make(map[uint64]struct{}, len(rels))
	var out []*Relocation
	var nilSeen bool
	for _, r := range rels {
		if r == nil {
			if !nilSeen {
				nilSeen = true
				out = append(out, r)
			}
			continue
		}
		h := r.Hash()
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, r)
	}
	return out
}
