// Package detector samples chat-export text to judge whether it looks like
// a parseable message registry before a full analysis is attempted.
package detector

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ponto-labs/jornada/pkg/parser"
)

// Result holds the outcome of sampling an export.
type Result struct {
	// SampledLines is the number of non-empty lines examined.
	SampledLines int

	// MatchedLines is the number of lines that opened a message.
	MatchedLines int

	// Confidence is MatchedLines over SampledLines (0.0 to 1.0).
	Confidence float64

	// SampleLine is an example line that matched.
	SampleLine string

	// BracketStyle describes the prevailing opening-line decoration:
	// "bracketed" ([date, time] sender) or "plain" (date, time - sender).
	BracketStyle string

	// AmbiguityNote warns when day-first ordering cannot be confirmed
	// because every sampled day token is 12 or less.
	AmbiguityNote string
}

// Detector samples export files to estimate parseability.
type Detector struct {
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of non-empty lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{sampleSize: 100}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples the beginning of a file.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening export file %s: %w", path, err)
	}
	defer f.Close()

	result := &Result{}
	bracketed, plain := 0, 0
	allDaysAmbiguous := true

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && result.SampledLines < d.sampleSize {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.SampledLines++

		opening, ok := parser.MatchOpening(line)
		if !ok {
			continue
		}
		result.MatchedLines++
		if result.SampleLine == "" {
			result.SampleLine = line
		}

		switch line[0] {
		case '[', '(', '{':
			bracketed++
		default:
			plain++
		}

		if day := leadingNumber(opening.Date); day > 12 {
			allDaysAmbiguous = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export file %s: %w", path, err)
	}

	if result.SampledLines > 0 {
		result.Confidence = float64(result.MatchedLines) / float64(result.SampledLines)
	}

	switch {
	case result.MatchedLines == 0:
		result.BracketStyle = ""
	case bracketed >= plain:
		result.BracketStyle = "bracketed"
	default:
		result.BracketStyle = "plain"
	}

	if result.MatchedLines > 0 && allDaysAmbiguous {
		result.AmbiguityNote = "every sampled day value is 12 or less; " +
			"day and month cannot be told apart from the sample alone " +
			"(dates are interpreted day-first)"
	}

	return result, nil
}

// leadingNumber parses the digits before the first separator of a date token.
func leadingNumber(date string) int {
	end := strings.IndexAny(date, "./-")
	if end < 0 {
		end = len(date)
	}
	n, err := strconv.Atoi(date[:end])
	if err != nil {
		return 0
	}
	return n
}
