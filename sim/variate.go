package sim

// Distribution draws one independent variate per call. Every
// gonum.org/v1/gonum/stat/distuv distribution satisfies it.
type Distribution interface {
	Rand() float64
}

// variateBatchSize is how many draws a VariateStream pre-generates at a
// time. Purely an efficiency knob: refills happen sequentially from the
// same source, so batch size never changes the draw order.
const variateBatchSize = 20_000

// VariateStream wraps a Distribution and produces an endless sequence of
// independent draws, generated in batches. Exactly one draw is consumed
// per logical event decision and no draw is ever reused.
type VariateStream struct {
	dist   Distribution
	buf    []float64
	cursor int
}

// NewVariateStream creates a stream over dist. The first batch is drawn
// lazily on the first call to Next.
func NewVariateStream(dist Distribution) *VariateStream {
	return &VariateStream{
		dist: dist,
		buf:  make([]float64, 0, variateBatchSize),
	}
}

// Next returns the next draw, transparently refilling the internal buffer
// when it is exhausted. Never fails.
func (vs *VariateStream) Next() float64 {
	if vs.cursor == len(vs.buf) {
		vs.refill()
	}
	v := vs.buf[vs.cursor]
	vs.cursor++
	return v
}

func (vs *VariateStream) refill() {
	vs.buf = vs.buf[:variateBatchSize]
	for i := range vs.buf {
		vs.buf[i] = vs.dist.Rand()
	}
	vs.cursor = 0
}
