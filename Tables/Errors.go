package Tables

import (
	"fmt"
	"reflect"
)

// KeyTypeError reports that a default hash strategy was requested for a key
// type without a fixed-width contiguous memory representation. It is produced
// at construction time, before any slot array is allocated.
type KeyTypeError struct {
	Type reflect.Type
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("Tables: key type %v has no fixed-width contiguous representation; supply a custom Hasher.", e.Type)
}

// LoadFactorError reports rejected load-factor thresholds. Valid thresholds
// satisfy 0 < min < max <= 1. The table is left unchanged.
type LoadFactorError struct {
	Min, Max float64
}

func (e *LoadFactorError) Error() string {
	return fmt.Sprintf("Tables: invalid load factors min=%v max=%v; need 0 < min < max <= 1.", e.Min, e.Max)
}

// FullError reports that an insertion exhausted the neighborhood and every
// displacement path even after an automatic resize. Cap is the capacity at
// which the final attempt failed. The keys already present are untouched.
type FullError struct {
	Cap uint
}

func (e *FullError) Error() string {
	return fmt.Sprintf("Tables: no free slot reachable within the neighborhood at capacity %d; grow explicitly or use a different Hasher.", e.Cap)
}

// ResizeError reports that a rehash could not place every entry in the target
// capacity. The old storage is kept untouched; no partial migration is ever
// visible.
type ResizeError struct {
	Cap uint
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("Tables: rehash to capacity %d failed to place all entries; old storage kept.", e.Cap)
}
