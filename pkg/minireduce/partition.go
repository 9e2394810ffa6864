package minireduce

// span is a contiguous half-open index range [start, end) assigned to one
// stage worker.
type span struct {
	start int
	end   int
}

// splitRanges divides [0, n) into workers contiguous spans of n/workers
// items each, with the first n%workers spans taking one extra item. Spans
// cover every index exactly once and appear in worker order. When n is
// smaller than workers the surplus spans come back empty.
func splitRanges(n, workers int) []span {
	base := n / workers
	extra := n % workers

	spans := make([]span, workers)
	offset := 0
	for i := range spans {
		size := base
		if i < extra {
			size++
		}
		spans[i] = span{start: offset, end: offset + size}
		offset += size
	}

	return spans
}
