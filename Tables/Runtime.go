package Tables

import (
	"reflect"
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

// Runtime hashes the key's memory representation with the runtime's memhash,
// seeded by seed. This is the fastest provided strategy; note that two tables
// built with different seeds hash the same key differently. Same key-type
// constraint as Polynomial.
func Runtime[K comparable](seed uint) (Hasher[K], error) {
	t := reflect.TypeOf((*K)(nil)).Elem()
	if !fixedWidth(t) {
		return nil, &KeyTypeError{t}
	}
	switch t.Size() {
	case 4:
		return func(key K) uint {
			return rtHash32(unsafe.Pointer(&key), seed)
		}, nil
	case 8:
		return func(key K) uint {
			return rtHash64(unsafe.Pointer(&key), seed)
		}, nil
	default:
		return func(key K) uint {
			return rtHash(unsafe.Pointer(&key), seed, unsafe.Sizeof(key))
		}, nil
	}
}
