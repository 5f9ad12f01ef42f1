package symtab

import "errors"

var (
	ErrSymbolNotFound      = errors.New("symbol not found")
	ErrDemangleUnsupported = errors.New("demangling not supported for symbol")
)
