package utils

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Re-setting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	values map[K]V
	order  []K
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		values: make(map[K]V),
	}
}

func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := om.values[key]
	return v, ok
}

func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := om.values[key]; !ok {
		om.order = append(om.order, key)
	}
	om.values[key] = value
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.order)
}

// Values returns the values in first-insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, len(om.order))
	for _, k := range om.order {
		out = append(out, om.values[k])
	}
	return out
}
