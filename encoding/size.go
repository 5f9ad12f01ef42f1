package encoding

// layout is the wire footprint of a decoded type.
type layout struct {
	size  int
	align int
}

func (l layout) Size() int {
	return l.size
}
