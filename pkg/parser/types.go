// Package parser reconstructs timestamped messages from chat-export text.
package parser

import "time"

// Message is a single reconstructed chat message.
type Message struct {
	// Timestamp combines the message date and time of day.
	Timestamp time.Time

	// Sender is the label before the first ": " on the opening line.
	Sender string

	// Content is the message body. Continuation lines are appended,
	// separated by single spaces, until the next opening line.
	Content string
}

// Diagnostic records a line that could not be attached to any message.
type Diagnostic struct {
	// LineNum is the 1-based line number in the input text.
	LineNum int

	// Line is the trimmed line content.
	Line string

	// Reason explains why the line was discarded.
	Reason string
}

// Result is the outcome of segmenting one block of raw text.
type Result struct {
	// Messages are the reconstructed messages in input order.
	Messages []*Message

	// Diagnostics lists discarded lines.
	Diagnostics []Diagnostic

	// Lines is the number of non-empty lines examined.
	Lines int
}
