package splitter

import "strings"

// Characters chunks text on one fixed separator, then packs the pieces back
// into chunks bounded by the chunk budget. An empty separator splits between
// characters.
type Characters struct {
	Options
}

var _ Splitter = (*Characters)(nil)

func NewCharacters(opts ...Option) *Characters {
	ret := new(Characters)
	ret.apply(opts)
	if ret.delimiter == "" && len(ret.separators) > 0 {
		ret.delimiter = ret.separators[0]
	}
	return ret
}

func (c *Characters) SplitText(text string) ([]string, error) {
	if err := c.validateWindow(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	splits := strings.Split(text, c.delimiter)
	fitting := splits[:0:0]
	for _, split := range splits {
		if split != "" {
			fitting = append(fitting, split)
		}
	}
	return mergeSplits(fitting, c.delimiter, c.chunkSize, c.overlap), nil
}
