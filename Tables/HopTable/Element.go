package HopTable

// slot owns zero or one (key, value) entry. Entries are copied between slots
// during displacement and rehash and are never referenced from outside the
// table, so plain value storage suffices.
type slot[K comparable, V any] struct {
	key  K
	val  V
	used bool
}

func (e *slot[K, V]) fill(key *K, val *V) {
	e.key, e.val, e.used = *key, *val, true
}

func (e *slot[K, V]) clear() {
	*e = slot[K, V]{}
}
