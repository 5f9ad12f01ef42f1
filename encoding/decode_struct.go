package encoding

import (
	"unsafe"

	"github.com/modern-go/reflect2"
)

type structData struct {
	handler handler
	field   reflect2.StructField
	pad     int
}

// decodeStruct lays fields out in declaration order with natural wire
// alignment, so debug/elf record structs decode byte for byte.
func decodeStruct(typ reflect2.StructType, bs int) (handler, layout) {
	count := typ.NumField()
	fields := make([]*structData, 0, count)
	l := layout{0, 1}
	for i := 0; i < count; i++ {
		field := typ.Field(i)
		if field.Tag().Get("encoding") == "ignore" {
			continue
		}
		unmarshal, fl := decode(field.Type(), bs)
		pad := Align(l.size, fl.align) - l.size
		fields = append(fields, &structData{unmarshal, field, pad})
		l.size += pad + fl.size
		l.align = max(l.align, fl.align)
	}
	tail := Align(l.size, l.align) - l.size
	l.size += tail
	return func(stream Stream, ptr unsafe.Pointer) error {
		for _, data := range fields {
			if data.pad > 0 {
				if err := stream.Skip(data.pad); err != nil {
					return err
				}
			}
			err := data.handler(stream, data.field.UnsafeGet(ptr))
			if err != nil {
				return err
			}
		}
		if tail > 0 {
			return stream.Skip(tail)
		}
		return nil
	}, l
}
