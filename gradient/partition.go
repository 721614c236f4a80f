package gradient

import "fmt"

// Range is a half-open index interval [Start, End) over the text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits the index range [0, length) into the requested number of
// contiguous, near-equal segments. Segment sizes differ by at most one, with
// the larger segments first. Every segment receives at least one index.
func Partition(length, segments int) ([]Range, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", ErrInvalidPartition, segments)
	}
	if length < segments {
		return nil, fmt.Errorf("%w: %d segments for %d indices", ErrInvalidPartition, segments, length)
	}

	base := length / segments
	remainder := length % segments

	ranges := make([]Range, 0, segments)
	start := 0
	for i := 0; i < segments; i++ {
		size := base
		if i < remainder {
			size++
		}
		ranges = append(ranges, Range{Start: start, End: start + size})
		start += size
	}
	return ranges, nil
}
