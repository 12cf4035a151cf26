package parser

import "sort"

// MergeChronological combines per-export message sequences into a single
// timeline ordered by timestamp. The sort is stable, so messages sharing a
// timestamp keep their within-export order and earlier sequences win ties,
// giving one unified timeline across several chat exports.
func MergeChronological(sequences ...[]*Message) []*Message {
	total := 0
	for _, seq := range sequences {
		total += len(seq)
	}

	merged := make([]*Message, 0, total)
	for _, seq := range sequences {
		merged = append(merged, seq...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})

	return merged
}
