package chunker

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences splits text into sentences at terminal punctuation
// (., !, ?) followed by whitespace or the end of the text. The punctuation
// stays attached to its sentence and surrounding whitespace is trimmed.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if !isTerminal(r) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// SentenceChunks groups sentences into chunks of at most chunkSize
// characters, joining sentences inside a chunk with a single space. A single
// sentence longer than chunkSize is emitted as its own oversized chunk
// rather than split mid-sentence.
func SentenceChunks(text string, chunkSize int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, chunkSize)
	}
	sentences := SplitSentences(text)
	chunks := make([]string, 0, len(sentences))
	var current string
	for _, sentence := range sentences {
		if current == "" {
			current = sentence
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(sentence) > chunkSize {
			chunks = append(chunks, current)
			current = sentence
			continue
		}
		current += " " + sentence
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks, nil
}
