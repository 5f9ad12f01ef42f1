package loader

import "errors"

var (
	ErrClassUnsupported = errors.New("elf class unsupported")
	ErrByteOrderMissing = errors.New("byte order missing")
	ErrTableSize        = errors.New("relocation table size mismatch")
)
