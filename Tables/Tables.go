/*
Package Tables implements open-addressing hash tables with bounded probe distances and explicit memory overhead. There is no per-entry allocation and no chaining; every entry lives directly in the slot array.

# Ownership
A table exclusively owns all of its entries. Entries are moved between slots during displacement and rehash, never shared; callers receive copies of values, except for the mutable handle returned by Ref which is only valid until the next structural change.

# Concurrency
None. Tables are single-owner structures; concurrent readers are safe only while no writer runs. Use external synchronization if you need more.

# Hashing
Every table accepts a Hasher strategy at construction. The provided strategies only work on keys with a fixed-width contiguous memory representation and report this once, at creation, never per operation.
*/
package Tables

// Hasher maps a key to a full-width unsigned hash. It must be pure and
// deterministic; tables reduce the result modulo their current capacity at
// each call site.
type Hasher[K any] func(K) uint

// Table is the contract shared by all tables in this module.
// Insert never updates: inserting a present key reports false. Remove of an
// absent key isn't an error, it reports false.
type Table[K comparable, V any] interface {
	Insert(K, V) (bool, error)
	Get(K) (V, bool)
	GetItem(K) (K, V, bool)
	HasKey(K) bool
	Remove(K) (V, bool, error)
	Values() []V
	Range(func(K, V) bool)
	Size() uint
	IsEmpty() bool
}
