// Package HopTable implements a Hopscotch hash table: every entry always
// lives within H consecutive slots (circularly) of its home index, so
// lookups touch at most H slots regardless of load. Inserts maintain this by
// displacing occupants toward free space, and a load-factor controller
// rescales the backing array automatically.
package HopTable

import (
	"github.com/g-m-twostay/hoptable/Tables"
)

const (
	// H is the neighborhood size: the bound on the distance between any
	// entry and its home index, and the minimum table capacity.
	H = 32
	// DefaultMaxLoad and DefaultMinLoad are the thresholds used by Default.
	DefaultMaxLoad = 0.75
	DefaultMinLoad = DefaultMaxLoad / 4
)

// HopTable is a single-owner hopscotch table mapping K to V. It is not safe
// for concurrent mutation. The zero value isn't usable; create with New or
// Default.
type HopTable[K comparable, V any] struct {
	bkt              []slot[K, V]
	hashF            Tables.Hasher[K]
	sz               uint
	initCap          uint //capacity never shrinks below this
	minLoad, maxLoad float64
}

// New creates a table with initCap slots (raised to H if smaller) and the
// given load-factor thresholds. A nil hashF selects Tables.Polynomial, whose
// key-type constraint is checked here, before any slot array is allocated.
func New[K comparable, V any](hashF Tables.Hasher[K], minLoad, maxLoad float64, initCap uint) (*HopTable[K, V], error) {
	if hashF == nil {
		var err error
		if hashF, err = Tables.Polynomial[K](); err != nil {
			return nil, err
		}
	}
	if minLoad <= 0 || minLoad > 1 || maxLoad <= 0 || maxLoad > 1 || maxLoad <= minLoad {
		return nil, &Tables.LoadFactorError{Min: minLoad, Max: maxLoad}
	}
	if initCap < H {
		initCap = H
	}
	return &HopTable[K, V]{
		bkt:     make([]slot[K, V], initCap),
		hashF:   hashF,
		initCap: initCap,
		minLoad: minLoad,
		maxLoad: maxLoad,
	}, nil
}

// Default is New with the default hash strategy and thresholds.
func Default[K comparable, V any](initCap uint) (*HopTable[K, V], error) {
	return New[K, V](nil, DefaultMinLoad, DefaultMaxLoad, initCap)
}

func (u *HopTable[K, V]) home(key K) uint {
	return u.hashF(key) % uint(len(u.bkt))
}

// lookup scans all H slots of the neighborhood of h in ascending offset
// order. Unlike linear probing it doesn't stop at an empty slot; absence is
// only known after the full scan.
func (u *HopTable[K, V]) lookup(h uint, key K) (uint, bool) {
	n := uint(len(u.bkt))
	for i := uint(0); i < H; i++ {
		if j := (h + i) % n; u.bkt[j].used && u.bkt[j].key == key {
			return j, true
		}
	}
	return 0, false
}

func (u *HopTable[K, V]) find(key K) (uint, bool) {
	return u.lookup(u.home(key), key)
}

// hop pulls the free slot at distance d from h closer by repeatedly moving an
// occupant from within the H-1 slots before it into it. A candidate may move
// only if the freed position still lies inside its own key's neighborhood;
// candidates are scanned from the farthest-back (closest to h) forward, and
// an already-empty candidate is adopted as a free hop. Returns the final
// distance, or false if no candidate before the free slot could move.
func (u *HopTable[K, V]) hop(h, d uint) (uint, bool) {
	n := uint(len(u.bkt))
	for d >= H {
		free := (h + d) % n
		moved := false
		for i := uint(H - 1); i >= 1; i-- {
			cand := (free + n - i) % n
			if !u.bkt[cand].used {
				d -= i
				moved = true
				break
			}
			if (free+n-u.home(u.bkt[cand].key))%n < H {
				u.bkt[free] = u.bkt[cand]
				u.bkt[cand].clear()
				d -= i
				moved = true
				break
			}
		}
		if !moved {
			return 0, false
		}
	}
	return d, true
}

// emplace stores the entry inside the neighborhood of h, assuming key isn't
// present. It first takes any free slot among the H, then walks outward
// (wrapping, bounded by the capacity) for a free slot it can hop back in.
// Returns false when nothing within reach can be freed; partially completed
// hop chains leave the table valid, merely with a vacancy relocated.
func (u *HopTable[K, V]) emplace(key *K, val *V, h uint) bool {
	n := uint(len(u.bkt))
	for i := uint(0); i < H; i++ {
		if j := (h + i) % n; !u.bkt[j].used {
			u.bkt[j].fill(key, val)
			return true
		}
	}
	for d := uint(H); d < n; d++ {
		if u.bkt[(h+d)%n].used {
			continue
		}
		if f, ok := u.hop(h, d); ok {
			u.bkt[(h+f)%n].fill(key, val)
			return true
		}
	}
	return false
}

// rehash migrates every entry into a fresh array of capacity n, re-running
// the full placement against the new addressing. The backing storage is
// swapped only after every entry has been placed; on Tables.ResizeError the
// table is exactly as before the call.
func (u *HopTable[K, V]) rehash(n uint) error {
	if n < H {
		n = H
	}
	M := HopTable[K, V]{bkt: make([]slot[K, V], n), hashF: u.hashF}
	for i := range u.bkt {
		if u.bkt[i].used {
			if !M.emplace(&u.bkt[i].key, &u.bkt[i].val, M.home(u.bkt[i].key)) {
				return &Tables.ResizeError{Cap: n}
			}
		}
	}
	u.bkt = M.bkt
	return nil
}

func (u *HopTable[K, V]) overloaded() bool {
	return float64(u.sz)/float64(len(u.bkt)) > u.maxLoad
}

func (u *HopTable[K, V]) underloaded() bool {
	return float64(u.sz)/float64(len(u.bkt)) < u.minLoad
}

func (u *HopTable[K, V]) shrunkCap() uint {
	if t := uint(len(u.bkt))/2 + 1; t > u.initCap {
		return t
	}
	return u.initCap
}

// Insert stores (key, val) if key is absent and reports whether it did.
// Inserting a present key never updates the value. When no slot within reach
// can be freed the table grows once and retries; only if that still fails is
// Tables.FullError returned. A successful insert that pushes the load factor
// over the maximum triggers a growth rehash; if that rehash fails the entry
// is in and the Tables.ResizeError is reported alongside true.
func (u *HopTable[K, V]) Insert(key K, val V) (bool, error) {
	h := u.home(key)
	if _, ok := u.lookup(h, key); ok {
		return false, nil
	}
	if !u.emplace(&key, &val, h) {
		if err := u.rehash(uint(len(u.bkt)) * 2); err != nil {
			return false, err
		}
		if !u.emplace(&key, &val, u.home(key)) {
			return false, &Tables.FullError{Cap: uint(len(u.bkt))}
		}
	}
	u.sz++
	if u.overloaded() {
		if err := u.rehash(uint(len(u.bkt)) * 2); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Get returns the value stored for key.
func (u *HopTable[K, V]) Get(key K) (V, bool) {
	if i, ok := u.find(key); ok {
		return u.bkt[i].val, true
	}
	return *new(V), false
}

// GetItem returns the stored (key, value) pair for key.
func (u *HopTable[K, V]) GetItem(key K) (K, V, bool) {
	if i, ok := u.find(key); ok {
		return u.bkt[i].key, u.bkt[i].val, true
	}
	return *new(K), *new(V), false
}

// HasKey reports whether key is present.
func (u *HopTable[K, V]) HasKey(key K) bool {
	_, ok := u.find(key)
	return ok
}

// Remove deletes key and returns the removed value. An absent key reports
// false and isn't an error. Dropping under the minimum load factor shrinks
// the table, never below its initial capacity; if the shrink rehash fails the
// entry is out, storage is untouched, and the Tables.ResizeError is reported
// alongside the removed value.
func (u *HopTable[K, V]) Remove(key K) (V, bool, error) {
	i, ok := u.find(key)
	if !ok {
		return *new(V), false, nil
	}
	v := u.bkt[i].val
	u.bkt[i].clear()
	u.sz--
	if u.underloaded() && uint(len(u.bkt)) > u.initCap {
		if err := u.rehash(u.shrunkCap()); err != nil {
			return v, true, err
		}
	}
	return v, true, nil
}

// Ref returns a pointer to the value stored for key, inserting the zero
// value first if key is absent. The pointer is invalidated by the next
// Insert, Remove, Ref, SetLoadFactors, or rehash of any kind.
func (u *HopTable[K, V]) Ref(key K) (*V, error) {
	if i, ok := u.find(key); ok {
		return &u.bkt[i].val, nil
	}
	if _, err := u.Insert(key, *new(V)); err != nil {
		return nil, err
	}
	i, _ := u.find(key)
	return &u.bkt[i].val, nil
}

// SetLoadFactors replaces both thresholds, then re-evaluates them against the
// current load and resizes at most once. Invalid thresholds are rejected with
// Tables.LoadFactorError and nothing changes.
func (u *HopTable[K, V]) SetLoadFactors(max, min float64) error {
	if min <= 0 || min > 1 || max <= 0 || max > 1 || max <= min {
		return &Tables.LoadFactorError{Min: min, Max: max}
	}
	u.minLoad, u.maxLoad = min, max
	if u.overloaded() {
		return u.rehash(uint(len(u.bkt)) * 2)
	} else if u.underloaded() && uint(len(u.bkt)) > u.initCap {
		return u.rehash(u.shrunkCap())
	}
	return nil
}

// Values returns a snapshot of all stored values in slot order, which is no
// particular order.
func (u *HopTable[K, V]) Values() []V {
	vs := make([]V, 0, u.sz)
	for i := range u.bkt {
		if u.bkt[i].used {
			vs = append(vs, u.bkt[i].val)
		}
	}
	return vs
}

// Range calls f on every entry until f returns false.
func (u *HopTable[K, V]) Range(f func(K, V) bool) {
	for i := range u.bkt {
		if u.bkt[i].used {
			if !f(u.bkt[i].key, u.bkt[i].val) {
				return
			}
		}
	}
}

// Copy returns a deep copy with independent storage sharing only the Hasher.
func (u *HopTable[K, V]) Copy() *HopTable[K, V] {
	c := *u
	c.bkt = make([]slot[K, V], len(u.bkt))
	copy(c.bkt, u.bkt)
	return &c
}

// Size is the number of stored entries.
func (u *HopTable[K, V]) Size() uint {
	return u.sz
}

// Cap is the current number of slots.
func (u *HopTable[K, V]) Cap() uint {
	return uint(len(u.bkt))
}

// IsEmpty reports whether no entries are stored.
func (u *HopTable[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// MinLoadFactor returns the shrink threshold.
func (u *HopTable[K, V]) MinLoadFactor() float64 {
	return u.minLoad
}

// MaxLoadFactor returns the growth threshold.
func (u *HopTable[K, V]) MaxLoadFactor() float64 {
	return u.maxLoad
}
