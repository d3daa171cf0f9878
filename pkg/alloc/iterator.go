package alloc

// Iterator walks claimed values in ascending order, over a snapshot
// taken when it was created.
type Iterator[V comparable, D any] struct {
	current int
	keys    []V
	table   map[V]D
}

func (r *Iterator[V, D]) Value() V {
	return r.keys[r.current]
}

func (r *Iterator[V, D]) Data() D {
	return r.table[r.keys[r.current]]
}

func (r *Iterator[V, D]) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
