package chunker

import "unicode/utf8"

// ValidationResult reports which chunks of a collection exceed a size bound.
type ValidationResult struct {
	// IsValid is true iff no chunk exceeds the bound.
	IsValid bool `json:"is_valid"`
	// TotalChunks is the number of chunks inspected.
	TotalChunks int `json:"total_chunks"`
	// ValidChunks is the number of chunks within the bound.
	ValidChunks int `json:"valid_chunks"`
	// OversizedChunks is the number of chunks exceeding the bound.
	OversizedChunks int `json:"oversized_chunks"`
	// OversizedIndices lists the 0-based positions of oversized chunks in
	// collection order.
	OversizedIndices []int `json:"oversized_indices,omitempty"`
}

// ValidateChunks partitions chunks into those within maxSize and those
// exceeding it. Sizes are counted in runes. The input is never mutated.
func ValidateChunks(chunks []string, maxSize int) *ValidationResult {
	ret := &ValidationResult{
		TotalChunks: len(chunks),
	}
	for idx, chunk := range chunks {
		if utf8.RuneCountInString(chunk) > maxSize {
			ret.OversizedChunks++
			ret.OversizedIndices = append(ret.OversizedIndices, idx)
		} else {
			ret.ValidChunks++
		}
	}
	ret.IsValid = ret.OversizedChunks == 0
	return ret
}
