package splitter

import (
	"fmt"
	"strings"
)

// DefaultChunkSize is the fallback chunk budget used when a strategy is
// constructed without an explicit size.
const DefaultChunkSize = 1000

// Scanner is the subset of bufio.Scanner the scanner-driven strategies rely
// on. The uax29 scanners satisfy it.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// Options carries the configuration shared by all strategies.
type Options struct {
	chunkSize    int
	overlap      int
	delimiter    string
	encoding     string
	separators   []string
	tokenCounter TokenCounter
	trimSegments bool
}

// Option is a function type for configuring splitter Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.chunkSize = size
	}
}

func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.overlap = overlap
	}
}

func WithDelimiter(delimiter string) Option {
	return func(o *Options) {
		o.delimiter = delimiter
	}
}

func WithEncoding(encoding string) Option {
	return func(o *Options) {
		o.encoding = encoding
	}
}

func WithSeparators(separators ...string) Option {
	return func(o *Options) {
		o.separators = separators
	}
}

func WithTokenCounter(counter TokenCounter) Option {
	return func(o *Options) {
		o.tokenCounter = counter
	}
}

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.chunkSize == 0 {
		o.chunkSize = DefaultChunkSize
	}
}

// validateWindow rejects windows whose start could not advance.
func (o *Options) validateWindow() error {
	if o.chunkSize <= 0 {
		return fmt.Errorf("splitter: chunk size must be positive, got %d", o.chunkSize)
	}
	if o.overlap < 0 || o.overlap >= o.chunkSize {
		return fmt.Errorf("splitter: overlap must be in [0, %d), got %d", o.chunkSize, o.overlap)
	}
	return nil
}

// scan drains scanner, grouping its segments into chunks bounded by the
// token budget, with roughly overlap tokens of each chunk repeated at the
// head of the next.
func (o *Options) scan(scanner Scanner) ([]string, error) {
	var (
		segments []string
		chunks   []string
		start    int // index of the first segment in the current chunk
		count    int // token count of the current chunk
	)
	flush := func(end int) {
		chunk := strings.Join(segments[start:end], o.delimiter)
		if o.trimSegments {
			chunk = strings.TrimSpace(chunk)
		}
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	for scanner.Scan() {
		segment := scanner.Text()
		if o.trimSegments {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
		}
		i := len(segments)
		segments = append(segments, segment)
		tokens := o.tokenCounter.Count(segment)
		if count+tokens > o.chunkSize && count > 0 {
			flush(i)
			if s := i - o.overlapSegments(segments, i); s > start {
				start = s
			}
			count = 0
			for j := start; j < i; j++ {
				count += o.tokenCounter.Count(segments[j])
			}
		}
		count += tokens
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if count > 0 {
		flush(len(segments))
	}
	return chunks, nil
}

// overlapSegments reports how many trailing segments before end are needed
// to reach the desired token overlap.
func (o *Options) overlapSegments(segments []string, end int) int {
	tokens, n := 0, 0
	for i := end - 1; i >= 0 && tokens < o.overlap; i-- {
		tokens += o.tokenCounter.Count(segments[i])
		n++
	}
	return n
}
