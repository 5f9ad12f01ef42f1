package arch

import "errors"

var (
	ErrArchUnsupported = errors.New("architecture unsupported")
)
