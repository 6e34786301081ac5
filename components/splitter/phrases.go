package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/phrases"
)

// Phrases chunks text along phrase boundaries, keeping words and trailing
// punctuation together.
type Phrases struct {
	Options
}

var _ Splitter = (*Phrases)(nil)

func NewPhrases(opts ...Option) *Phrases {
	ret := new(Phrases)
	ret.apply(opts)
	ret.delimiter = " "
	ret.trimSegments = true
	if ret.tokenCounter == nil {
		ret.tokenCounter = WordTokenCounter{}
	}
	return ret
}

func (p *Phrases) SplitText(text string) ([]string, error) {
	if err := p.validateWindow(); err != nil {
		return nil, err
	}
	return p.scan(phrases.NewScanner(strings.NewReader(text)))
}
