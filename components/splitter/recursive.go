package splitter

import (
	"strings"
	"unicode/utf8"
)

// Recursive chunks text by walking an ordered separator hierarchy: split on
// the first separator present, keep pieces that fit the chunk budget, and
// recurse into the remaining separators for pieces that do not. The empty
// separator splits between characters and is the terminal fallback.
type Recursive struct {
	Options
}

var _ Splitter = (*Recursive)(nil)

func NewRecursive(opts ...Option) *Recursive {
	ret := new(Recursive)
	ret.apply(opts)
	if len(ret.separators) == 0 {
		ret.separators = []string{"\n\n", "\n", " ", ""}
	}
	return ret
}

func (r *Recursive) SplitText(text string) ([]string, error) {
	if err := r.validateWindow(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	return r.split(text, r.separators), nil
}

func (r *Recursive) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var rest []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			rest = separators[i+1:]
			break
		}
	}

	var chunks []string
	var fitting []string
	drain := func() {
		if len(fitting) > 0 {
			chunks = append(chunks, mergeSplits(fitting, separator, r.chunkSize, r.overlap)...)
			fitting = nil
		}
	}
	for _, split := range strings.Split(text, separator) {
		if split == "" {
			continue
		}
		if utf8.RuneCountInString(split) <= r.chunkSize {
			fitting = append(fitting, split)
			continue
		}
		drain()
		if len(rest) == 0 {
			chunks = append(chunks, split)
		} else {
			chunks = append(chunks, r.split(split, rest)...)
		}
	}
	drain()
	return chunks
}
