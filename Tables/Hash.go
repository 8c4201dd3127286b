package Tables

import (
	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
	"reflect"
	"unsafe"
)

// somePrime is larger than the byte alphabet, so no two single-byte keys
// collide under Polynomial.
const somePrime uint = 257

// fixedWidth reports whether every value of t occupies a stable contiguous
// fixed-size block of memory, so that hashing its bytes is meaningful.
// Strings, structs, and other indirect or padded types don't qualify.
func fixedWidth(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return fixedWidth(t.Elem())
	default:
		return false
	}
}

func keyBytes[K comparable](key *K) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(key)), unsafe.Sizeof(*key))
}

// Polynomial is the default hash strategy: the key's memory representation is
// read as a byte string and folded with a rolling polynomial over somePrime
// in wrapping uint arithmetic. Returns a KeyTypeError if K isn't fixedWidth;
// this is checked here once, never per call.
func Polynomial[K comparable]() (Hasher[K], error) {
	if t := reflect.TypeOf((*K)(nil)).Elem(); !fixedWidth(t) {
		return nil, &KeyTypeError{t}
	}
	return func(key K) uint {
		var h uint
		pow := somePrime
		for _, b := range keyBytes(&key) {
			h += (uint(b) + 1) * pow
			pow *= somePrime
		}
		return h
	}, nil
}

// XX hashes the key's memory representation with xxhash. Same key-type
// constraint as Polynomial, usually much better dispersion.
func XX[K comparable]() (Hasher[K], error) {
	if t := reflect.TypeOf((*K)(nil)).Elem(); !fixedWidth(t) {
		return nil, &KeyTypeError{t}
	}
	return func(key K) uint {
		return uint(xxhash.Sum64(keyBytes(&key)))
	}, nil
}

// Identity uses the key itself as its hash. Only sensible when the key
// distribution is already uniform in the low bits.
func Identity[K constraints.Integer]() Hasher[K] {
	return func(key K) uint {
		return uint(key)
	}
}
