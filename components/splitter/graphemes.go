package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
)

// Graphemes chunks text along grapheme-cluster boundaries, the finest
// segmentation that never breaks a user-perceived character.
type Graphemes struct {
	Options
}

var _ Splitter = (*Graphemes)(nil)

func NewGraphemes(opts ...Option) *Graphemes {
	ret := new(Graphemes)
	ret.apply(opts)
	ret.delimiter = ""
	if ret.tokenCounter == nil {
		ret.tokenCounter = RuneTokenCounter{}
	}
	return ret
}

func (g *Graphemes) SplitText(text string) ([]string, error) {
	if err := g.validateWindow(); err != nil {
		return nil, err
	}
	return g.scan(graphemes.NewScanner(strings.NewReader(text)))
}
