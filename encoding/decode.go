package encoding

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

type handler = func(Stream, unsafe.Pointer) error

type handlerData struct {
	handler handler
	layout  layout
}

var decodeProcess sync.Map

// DecodeSize returns the number of bytes Decode consumes for val.
func DecodeSize(blockSize int, val any) int {
	typ := reflect2.TypeOf(val)
	if typ == nil {
		return 0
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.(reflect2.PtrType).Elem()
	}
	return getUnmarshalData(typ, blockSize).layout.Size()
}

// Decode fills the value val points to from stream, honoring the stream's
// byte order and block size.
func Decode(stream Stream, val any) error {
	typ := reflect2.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return ErrNotPointer
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return ErrNotPointer
	}
	return getUnmarshalData(typ.(reflect2.PtrType).Elem(), stream.BlockSize()).handler(stream, ptr)
}

func getUnmarshalData(typ reflect2.Type, bs int) *handlerData {
	key := [2]uintptr{uintptr(bs), typ.RType()}
	if v, ok := decodeProcess.Load(key); ok {
		return v.(*handlerData)
	}
	unmarshal, l := decode(typ, bs)
	data := &handlerData{unmarshal, l}
	decodeProcess.Store(key, data)
	return data
}

func decode(typ reflect2.Type, bs int) (handler, layout) {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), 1))
			return err
		}, layout{1, 1}
	case reflect.Int16, reflect.Uint16:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var buf [2]byte
			if _, err := stream.Read(buf[:]); err != nil {
				return err
			}
			*(*uint16)(ptr) = stream.ByteOrder().Uint16(buf[:])
			return nil
		}, layout{2, 2}
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var buf [4]byte
			if _, err := stream.Read(buf[:]); err != nil {
				return err
			}
			*(*uint32)(ptr) = stream.ByteOrder().Uint32(buf[:])
			return nil
		}, layout{4, 4}
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return func(stream Stream, ptr unsafe.Pointer) error {
			var buf [8]byte
			if _, err := stream.Read(buf[:]); err != nil {
				return err
			}
			*(*uint64)(ptr) = stream.ByteOrder().Uint64(buf[:])
			return nil
		}, layout{8, 8}
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return decodeWord(typ.Kind() == reflect.Int, bs), layout{bs, bs}
	case reflect.Array:
		return decodeArray(typ.(reflect2.ArrayType), bs)
	case reflect.Struct:
		return decodeStruct(typ.(reflect2.StructType), bs)
	}
	panic("Unsupported Type")
}

// decodeWord reads a block sized word into a native int, uint or uintptr.
func decodeWord(signed bool, bs int) handler {
	return func(stream Stream, ptr unsafe.Pointer) error {
		buf := make([]byte, bs)
		if _, err := stream.Read(buf); err != nil {
			return err
		}
		var v uint64
		switch bs {
		case 4:
			v = uint64(stream.ByteOrder().Uint32(buf))
			if signed {
				v = uint64(int64(int32(v)))
			}
		case 8:
			v = stream.ByteOrder().Uint64(buf)
		default:
			panic("Unsupported BlockSize")
		}
		*(*uintptr)(ptr) = uintptr(v)
		return nil
	}
}
