package chunker

import "fmt"

// EqualSizeChunks partitions text into fixed-length windows of chunkSize
// characters where each window repeats the last overlap characters of the
// previous one. The window start advances by chunkSize-overlap until it
// reaches the end of the text, so the final chunk may be shorter than
// chunkSize. Lengths are counted in runes.
func EqualSizeChunks(text string, chunkSize, overlap int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("%w: chunk overlap must be in [0, %d), got %d", ErrInvalidConfig, chunkSize, overlap)
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{}, nil
	}
	step := chunkSize - overlap
	chunks := make([]string, 0, (len(runes)+step-1)/step)
	for start := 0; start < len(runes); start += step {
		end := min(start+chunkSize, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}
