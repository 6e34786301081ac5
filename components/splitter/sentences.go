package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/sentences"
)

// Sentences chunks text along UAX #29 sentence boundaries. The chunk budget
// is counted in characters unless another TokenCounter is supplied.
type Sentences struct {
	Options
}

var _ Splitter = (*Sentences)(nil)

func NewSentences(opts ...Option) *Sentences {
	ret := new(Sentences)
	ret.apply(opts)
	ret.delimiter = " "
	ret.trimSegments = true
	if ret.tokenCounter == nil {
		ret.tokenCounter = RuneTokenCounter{}
	}
	return ret
}

func (s *Sentences) SplitText(text string) ([]string, error) {
	if err := s.validateWindow(); err != nil {
		return nil, err
	}
	return s.scan(sentences.NewScanner(strings.NewReader(text)))
}
