package splitter

import (
	"strings"

	"github.com/clipperhouse/uax29/words"
)

// Words chunks text along UAX #29 word boundaries. The chunk budget counts
// words unless another TokenCounter is supplied.
type Words struct {
	Options
}

var _ Splitter = (*Words)(nil)

func NewWords(opts ...Option) *Words {
	ret := new(Words)
	ret.apply(opts)
	ret.delimiter = " "
	ret.trimSegments = true
	if ret.tokenCounter == nil {
		ret.tokenCounter = WordTokenCounter{}
	}
	return ret
}

func (w *Words) SplitText(text string) ([]string, error) {
	if err := w.validateWindow(); err != nil {
		return nil, err
	}
	return w.scan(words.NewScanner(strings.NewReader(text)))
}
