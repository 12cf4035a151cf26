package parser

import (
	"errors"
	"strings"
)

// ErrNoRecords means segmentation produced no messages with a valid
// date and time.
var ErrNoRecords = errors.New("no valid records could be extracted: check that lines carry a date and time prefix")

// ErrOnlyMediaRecords means every message was a deleted-message or
// omitted-media placeholder.
var ErrOnlyMediaRecords = errors.New("no valid messages left to analyze: all records were deleted messages or omitted media")

// Filter removes messages that carry no usable signal for the journey
// computation. Two passes: messages without a parsed timestamp (defensive;
// the segmenter never emits them), then messages whose content matches a
// media placeholder phrase case-insensitively.
func Filter(msgs []*Message, mediaPlaceholders []string) ([]*Message, error) {
	withStamp := msgs[:0:0]
	for _, m := range msgs {
		if m.Timestamp.IsZero() {
			continue
		}
		withStamp = append(withStamp, m)
	}
	if len(withStamp) == 0 {
		return nil, ErrNoRecords
	}

	kept := withStamp[:0:0]
	for _, m := range withStamp {
		if isMediaPlaceholder(m.Content, mediaPlaceholders) {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return nil, ErrOnlyMediaRecords
	}

	return kept, nil
}

func isMediaPlaceholder(content string, phrases []string) bool {
	lower := strings.ToLower(content)
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
