package chunker

import (
	"github.com/bububa/textchunk/components/splitter"
)

// Chunker is the chunking facade. It carries default configuration and
// dispatches to the hand-rolled operations in this package and the
// segmentation strategies in components/splitter. Every splitting entry
// point accepts call-level options which override the instance defaults
// field by field; the merged configuration is validated before any
// computation starts. Strategy failures propagate to the caller unchanged.
type Chunker struct {
	cfg Config
}

// New creates a Chunker, applying options over the package fallbacks.
// Invalid configuration is rejected here, not at call time.
func New(opts ...Option) (*Chunker, error) {
	cfg := Config{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		Separators:   DefaultSeparators(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Chunker{cfg: cfg}, nil
}

// Config returns a copy of the instance defaults.
func (c *Chunker) Config() Config {
	return c.cfg.clone()
}

// merged applies call-level options over a copy of the instance defaults and
// re-validates the result. The instance defaults are never mutated.
func (c *Chunker) merged(opts []Option) (Config, error) {
	cfg := c.cfg.clone()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SplitEqualSize partitions text into fixed-length overlapping windows.
func (c *Chunker) SplitEqualSize(text string, chunkSize, overlap int) ([]string, error) {
	return EqualSizeChunks(text, chunkSize, overlap)
}

// SplitBySentence groups punctuation-delimited sentences into chunks bounded
// by the configured chunk size.
func (c *Chunker) SplitBySentence(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return SentenceChunks(text, cfg.ChunkSize)
}

// Statistics computes size statistics over a chunk collection.
func (c *Chunker) Statistics(chunks []string) (*Stats, error) {
	return ChunkStats(chunks)
}

// Validate flags chunks exceeding maxSize characters.
func (c *Chunker) Validate(chunks []string, maxSize int) *ValidationResult {
	return ValidateChunks(chunks, maxSize)
}

// SplitRecursive delegates to the recursive-character strategy, walking the
// configured separator hierarchy.
func (c *Chunker) SplitRecursive(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewRecursive(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
		splitter.WithSeparators(cfg.Separators...),
	).SplitText(text)
}

// SplitCharacters delegates to the fixed-separator strategy using the first
// configured separator.
func (c *Chunker) SplitCharacters(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	delimiter := "\n\n"
	if len(cfg.Separators) > 0 {
		delimiter = cfg.Separators[0]
	}
	return splitter.NewCharacters(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
		splitter.WithDelimiter(delimiter),
	).SplitText(text)
}

// SplitDelimiter delegates to the fixed-separator strategy with an explicit
// delimiter.
func (c *Chunker) SplitDelimiter(text, delimiter string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewCharacters(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
		splitter.WithDelimiter(delimiter),
	).SplitText(text)
}

// SplitTokens delegates to the token-window strategy. The configured chunk
// size and overlap are interpreted in tokens.
func (c *Chunker) SplitTokens(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewTokens(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
	).SplitText(text)
}

// SplitMarkdown delegates to the markdown-structure strategy.
func (c *Chunker) SplitMarkdown(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewMarkdown(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
	).SplitText(text)
}

// SplitSentenceUnits delegates to the Unicode sentence-segmentation strategy.
func (c *Chunker) SplitSentenceUnits(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewSentences(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
	).SplitText(text)
}

// SplitWords delegates to the Unicode word-segmentation strategy.
func (c *Chunker) SplitWords(text string, opts ...Option) ([]string, error) {
	cfg, err := c.merged(opts)
	if err != nil {
		return nil, err
	}
	return splitter.NewWords(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
	).SplitText(text)
}
