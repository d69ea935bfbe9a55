package metrics

// nopRecorder is a no-op Recorder, the default for a cache constructed
// without WithMetrics.
type nopRecorder struct{}

func (nopRecorder) Hit()        {}
func (nopRecorder) Miss()       {}
func (nopRecorder) Set()        {}
func (nopRecorder) Delete()     {}
func (nopRecorder) Eviction()   {}
func (nopRecorder) Expiration() {}
func (nopRecorder) Size(int)    {}

// NewNop returns a Recorder that discards every observation.
func NewNop() Recorder { return nopRecorder{} }

var _ Recorder = nopRecorder{}
