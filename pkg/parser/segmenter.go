package parser

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// openingPrefix recognizes the date/time prefix of a message-opening line:
// an optional bracket, a day-first date token, an optional comma, a time
// token and optional closing bracket and dash. The remainder of the line is
// tokenized separately (sender and content split on the first ": "), which
// keeps the pattern free of quantifiers over unbounded content.
var openingPrefix = regexp.MustCompile(
	`^[\[({]?(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}),?\s*(\d{1,2}:\d{2}(?::\d{2})?)[\])}]?\s*-?\s*(.*)$`)

// invisibleMarks are bidirectional-control and BOM runes that WhatsApp-style
// exports prepend to lines.
const invisibleMarks = "\u200e\u200f\ufeff"

// maxLineSize bounds a single input line (1MB).
const maxLineSize = 1024 * 1024

// Segmenter converts raw multi-line chat text into an ordered sequence of
// messages. Lines matching the opening pattern start a new message; other
// lines are attached to the current message as continuations.
type Segmenter struct {
	systemSenders []string
}

// NewSegmenter creates a Segmenter. systemSenders are case-insensitive
// substrings that identify chat-system notices by their sender label;
// matching messages are discarded silently.
func NewSegmenter(systemSenders []string) *Segmenter {
	return &Segmenter{systemSenders: systemSenders}
}

// Segment processes text line by line, in order. The fold carries the
// growing message sequence and the index of the current message (-1 when no
// message is open); continuation attachment depends on both, so processing
// is strictly sequential.
func (s *Segmenter) Segment(text string) (*Result, error) {
	result := &Result{}
	current := -1

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(strings.TrimLeft(scanner.Text(), invisibleMarks))
		if line == "" {
			continue
		}
		result.Lines++

		opening, ok := MatchOpening(line)
		if !ok {
			if current >= 0 {
				// Continuation of the message above.
				result.Messages[current].Content += " " + line
				continue
			}
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				LineNum: lineNum,
				Line:    line,
				Reason:  "no date and time prefix and no preceding message",
			})
			continue
		}

		ts, err := ParseStamp(opening.Date, opening.Time)
		if err != nil {
			current = -1
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				LineNum: lineNum,
				Line:    line,
				Reason:  fmt.Sprintf("unparseable timestamp: %v", err),
			})
			continue
		}

		if s.isSystemSender(opening.Sender) {
			// System notice: drop it and close the current message so
			// trailing lines are not attached to it.
			current = -1
			continue
		}

		result.Messages = append(result.Messages, &Message{
			Timestamp: ts,
			Sender:    opening.Sender,
			Content:   opening.Content,
		})
		current = len(result.Messages) - 1
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input text: %w", err)
	}

	return result, nil
}

// Opening is the tokenized form of a message-opening line.
type Opening struct {
	Date    string // raw date token
	Time    string // raw time token
	Sender  string
	Content string
}

// MatchOpening tests a line against the opening pattern and splits the
// remainder into sender and content on the first ": ". Senders containing
// further colons get no special handling.
func MatchOpening(line string) (Opening, bool) {
	m := openingPrefix.FindStringSubmatch(line)
	if m == nil {
		return Opening{}, false
	}

	rest := m[3]
	idx := strings.Index(rest, ": ")
	if idx <= 0 {
		return Opening{}, false
	}

	return Opening{Date: m[1], Time: m[2], Sender: rest[:idx], Content: rest[idx+2:]}, true
}

func (s *Segmenter) isSystemSender(sender string) bool {
	lower := strings.ToLower(sender)
	for _, marker := range s.systemSenders {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
