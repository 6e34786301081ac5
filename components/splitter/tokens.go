package splitter

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// Tokens chunks text into windows of model tokens: the text is encoded with
// a tiktoken encoding, windowed with the chunk budget and overlap counted in
// tokens, and each window decoded back to text.
type Tokens struct {
	Options
}

var _ Splitter = (*Tokens)(nil)

func NewTokens(opts ...Option) *Tokens {
	ret := new(Tokens)
	ret.apply(opts)
	if ret.encoding == "" {
		ret.encoding = DefaultEncoding
	}
	return ret
}

func (t *Tokens) SplitText(text string) ([]string, error) {
	if err := t.validateWindow(); err != nil {
		return nil, err
	}
	tke, err := tiktoken.GetEncoding(t.encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	ids := tke.Encode(text, nil, nil)
	if len(ids) == 0 {
		return []string{}, nil
	}
	step := t.chunkSize - t.overlap
	chunks := make([]string, 0, (len(ids)+step-1)/step)
	for start := 0; start < len(ids); start += step {
		end := min(start+t.chunkSize, len(ids))
		chunks = append(chunks, tke.Decode(ids[start:end]))
		if end == len(ids) {
			break
		}
	}
	return chunks, nil
}
