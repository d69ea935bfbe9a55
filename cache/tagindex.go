package cache

import "github.com/codewandler/kvcache/ds"

// tagIndex maps a tag to the set of keys whose entry carries that tag. It is
// built on ds.Set, so membership and insertion are O(1) amortized while
// removal scans the bucket's insertion order (linear in the bucket's size),
// and an empty bucket is dropped the moment its last key leaves.
type tagIndex struct {
	buckets map[string]*ds.Set[string]
}

func newTagIndex() *tagIndex {
	return &tagIndex{buckets: make(map[string]*ds.Set[string])}
}

// add records that key carries tag.
func (t *tagIndex) add(tag, key string) {
	b, ok := t.buckets[tag]
	if !ok {
		b = ds.NewSet[string]()
		t.buckets[tag] = b
	}
	b.Add(key)
}

// remove drops key from tag's bucket, deleting the bucket if it becomes
// empty.
func (t *tagIndex) remove(tag, key string) {
	b, ok := t.buckets[tag]
	if !ok {
		return
	}
	b.Remove(key)
	if b.IsEmpty() {
		delete(t.buckets, tag)
	}
}

// keysForTag returns a snapshot of the keys currently tagged with tag.
func (t *tagIndex) keysForTag(tag string) []string {
	b, ok := t.buckets[tag]
	if !ok {
		return nil
	}
	return b.Values()
}
