package splitter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter defines the interface for counting tokens in a text segment.
// The unit decides what a strategy's chunk budget means: characters, words
// or model tokens.
type TokenCounter interface {
	Count(text string) int
}

// RuneTokenCounter counts Unicode code points, making chunk budgets
// character based.
type RuneTokenCounter struct{}

func (c RuneTokenCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// WordTokenCounter counts whitespace-delimited words.
type WordTokenCounter struct{}

func (c WordTokenCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// TikTokenCounter counts tokens with the tiktoken library, matching the
// tokenization used by OpenAI models.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTikTokenCounter creates a TikTokenCounter for the given encoding.
// Common encodings include "cl100k_base" (GPT-4) and "o200k_base" (GPT-4o).
func NewTikTokenCounter(encoding string) (*TikTokenCounter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikTokenCounter{tke: tke}, nil
}

func (c *TikTokenCounter) Count(text string) int {
	return len(c.tke.Encode(text, nil, nil))
}
