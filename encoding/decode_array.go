package encoding

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

func decodeArray(typ reflect2.ArrayType, bs int) (handler, layout) {
	count := typ.Len()
	unmarshal, elem := decode(typ.Elem(), bs)
	elemSize := typ.Elem().Type1().Size()
	return func(stream Stream, ptr unsafe.Pointer) error {
		for i := 0; i < count; i++ {
			err := unmarshal(stream, ptr)
			if err != nil {
				return err
			}
			ptr = unsafe.Add(ptr, elemSize)
		}
		return nil
	}, layout{elem.size * count, elem.align}
}
