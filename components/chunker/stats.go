package chunker

import (
	"math"
	"unicode/utf8"
)

// Stats is a derived summary of chunk sizes for a chunk collection.
type Stats struct {
	// TotalChunks is the number of chunks in the collection.
	TotalChunks int `json:"total_chunks"`
	// TotalCharacters is the sum of all chunk sizes.
	TotalCharacters int `json:"total_characters"`
	// AverageChunkSize is the arithmetic mean chunk size rounded to the
	// nearest integer.
	AverageChunkSize int `json:"average_chunk_size"`
	// MinChunkSize is the smallest chunk size.
	MinChunkSize int `json:"min_chunk_size"`
	// MaxChunkSize is the largest chunk size.
	MaxChunkSize int `json:"max_chunk_size"`
	// ChunkSizes lists the per-chunk sizes in collection order.
	ChunkSizes []int `json:"chunk_sizes"`
}

// ChunkStats computes size statistics over a chunk collection. Sizes are
// counted in runes. An empty collection yields ErrEmptyChunks since the mean
// and the extrema are undefined.
func ChunkStats(chunks []string) (*Stats, error) {
	if len(chunks) == 0 {
		return nil, ErrEmptyChunks
	}
	stats := &Stats{
		TotalChunks: len(chunks),
		ChunkSizes:  make([]int, len(chunks)),
	}
	for idx, chunk := range chunks {
		size := utf8.RuneCountInString(chunk)
		stats.ChunkSizes[idx] = size
		stats.TotalCharacters += size
		if idx == 0 || size < stats.MinChunkSize {
			stats.MinChunkSize = size
		}
		if size > stats.MaxChunkSize {
			stats.MaxChunkSize = size
		}
	}
	stats.AverageChunkSize = int(math.Round(float64(stats.TotalCharacters) / float64(stats.TotalChunks)))
	return stats, nil
}
