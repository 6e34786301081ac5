package chunker

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultChunkSize is the fallback chunk size in characters.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is the fallback overlap in characters.
	DefaultChunkOverlap = 0
)

// DefaultSeparators returns the fallback separator hierarchy: paragraph,
// line, word, character.
func DefaultSeparators() []string {
	return []string{"\n\n", "\n", " ", ""}
}

var validate = validator.New()

// Config holds the chunking defaults carried by a Chunker. Field precedence
// is call-level option over instance default over package fallback.
type Config struct {
	// ChunkSize is the target chunk size in characters (runes).
	ChunkSize int `validate:"gt=0"`
	// ChunkOverlap is the number of trailing characters of one chunk repeated
	// at the head of the next. Must stay below ChunkSize or the window start
	// would never advance.
	ChunkOverlap int `validate:"gte=0,ltfield=ChunkSize"`
	// Separators is the ordered separator hierarchy for separator-based
	// strategies.
	Separators []string
}

// Validate rejects configurations that cannot make forward progress.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) clone() Config {
	c.Separators = slices.Clone(c.Separators)
	return c
}

// Option is a function type for configuring a Chunker or overriding its
// defaults for a single call.
type Option func(*Config)

func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

func WithChunkOverlap(overlap int) Option {
	return func(c *Config) {
		c.ChunkOverlap = overlap
	}
}

func WithSeparators(separators ...string) Option {
	return func(c *Config) {
		c.Separators = separators
	}
}
