package metrics

import "testing"

func TestNop_DoesNotPanic(t *testing.T) {
	r := NewNop()
	r.Hit()
	r.Miss()
	r.Set()
	r.Delete()
	r.Eviction()
	r.Expiration()
	r.Size(42)
}
