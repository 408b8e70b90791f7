package indexer

import "fmt"

// TimeRange is a window of unix seconds. Consecutive ranges share their
// boundary: one range's To is the next range's From.
type TimeRange struct {
	From int64
	To   int64
}

// SplitRange splits [from, to] into windows of at most step seconds.
func SplitRange(from, to, step int64) ([]TimeRange, error) {
	if step <= 0 {
		return nil, fmt.Errorf("window must be greater than zero")
	}
	if to < from {
		return nil, fmt.Errorf("to must be >= from")
	}
	if to == from {
		return []TimeRange{{From: from, To: to}}, nil
	}

	ranges := make([]TimeRange, 0, (to-from)/step+1)
	for start := from; start < to; start += step {
		end := start + step
		if end > to {
			end = to
		}
		ranges = append(ranges, TimeRange{From: start, To: end})
	}
	return ranges, nil
}
