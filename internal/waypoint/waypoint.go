// Package waypoint implements an amortized rank index over an ascending
// stream of primes. Every stride-th discovered prime is recorded as an
// anchor; when the anchor array fills up, the stride doubles and the array
// is resampled, keeping index upkeep at O(1) amortized per prime.
package waypoint

const (
	initialCapacity = 4
	initialStride   = 1
)

// Index maps ranks to nearby prime values.
//
// Invariant: anchors[i] holds the prime of rank i*Stride() for every
// i < Population(), and an anchor exists for every multiple of Stride()
// up to the highest recorded rank.
type Index struct {
	anchors    []int
	population int
	stride     int
	threshold  int
	counter    int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		anchors:   make([]int, initialCapacity),
		stride:    initialStride,
		threshold: initialCapacity,
	}
}

// Record registers the next discovered prime. Primes must be recorded in
// ascending order, exactly once each; the index decides by itself whether
// the prime becomes an anchor at the current stride cadence.
func (ix *Index) Record(p int) {
	if ix.counter%ix.stride == 0 {
		ix.anchors[ix.population] = p
		ix.population++
	}
	ix.counter++
	if ix.population == ix.threshold {
		ix.grow()
	}
}

// grow doubles the stride and capacity and resamples the anchors, keeping
// only the entries at even positions. The survivors are exactly the ranks
// that are multiples of the new, coarser stride.
func (ix *Index) grow() {
	ix.stride *= 2
	ix.threshold *= 2
	expanded := make([]int, ix.threshold)
	for i := 0; i < len(ix.anchors); i += 2 {
		expanded[i/2] = ix.anchors[i]
	}
	ix.anchors = expanded
	ix.population /= 2
}

// Locate returns the anchor value for rank together with the number of
// residual next-candidate steps the caller must take to reach the exact
// prime. rank must be a recorded rank.
func (ix *Index) Locate(rank int) (anchor int, steps int) {
	return ix.anchors[rank/ix.stride], rank % ix.stride
}

// Anchor returns the i-th anchor value. i must be < Population().
func (ix *Index) Anchor(i int) int {
	return ix.anchors[i]
}

// Last returns the highest anchor value, if any anchor has been recorded.
func (ix *Index) Last() (int, bool) {
	if ix.population == 0 {
		return 0, false
	}
	return ix.anchors[ix.population-1], true
}

// Population returns the number of live anchors.
func (ix *Index) Population() int {
	return ix.population
}

// Stride returns the current rank distance between consecutive anchors.
func (ix *Index) Stride() int {
	return ix.stride
}

// Reset discards all anchors and restores the initial stride.
func (ix *Index) Reset() {
	ix.anchors = make([]int, initialCapacity)
	ix.population = 0
	ix.stride = initialStride
	ix.threshold = initialCapacity
	ix.counter = 0
}
