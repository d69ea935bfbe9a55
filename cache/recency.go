package cache

import "container/list"

// recencyOrder is a total order over currently live keys ranked by time of
// last successful Get or Set, backed by container/list. The front of the
// list is the hot (most-recently-touched) end; the back is the cold end
// eviction consumes from.
type recencyOrder struct {
	ll *list.List
}

func newRecencyOrder() *recencyOrder {
	return &recencyOrder{ll: list.New()}
}

// promote moves an existing node to the front, or inserts key at the front
// if it has no node yet, returning the (possibly new) node handle.
func (r *recencyOrder) promote(key string, node *list.Element) *list.Element {
	if node != nil {
		r.ll.MoveToFront(node)
		return node
	}
	return r.ll.PushFront(key)
}

// remove detaches node from the order. Safe to call with nil.
func (r *recencyOrder) remove(node *list.Element) {
	if node != nil {
		r.ll.Remove(node)
	}
}

// back returns the coldest node, or nil if the order is empty.
func (r *recencyOrder) back() *list.Element {
	return r.ll.Back()
}

func (r *recencyOrder) len() int {
	return r.ll.Len()
}
