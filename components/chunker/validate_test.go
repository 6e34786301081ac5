package chunker

import (
	"reflect"
	"testing"
)

func TestValidateChunks(t *testing.T) {
	tests := []struct {
		name    string
		chunks  []string
		maxSize int
		want    ValidationResult
	}{
		{
			name:    "one oversized",
			chunks:  []string{"ab", "abcdef"},
			maxSize: 3,
			want: ValidationResult{
				IsValid:          false,
				TotalChunks:      2,
				ValidChunks:      1,
				OversizedChunks:  1,
				OversizedIndices: []int{1},
			},
		},
		{
			name:    "all within bound",
			chunks:  []string{"ab", "abc"},
			maxSize: 3,
			want: ValidationResult{
				IsValid:     true,
				TotalChunks: 2,
				ValidChunks: 2,
			},
		},
		{
			name:    "all oversized keeps order",
			chunks:  []string{"abcd", "abcde", "abcdef"},
			maxSize: 3,
			want: ValidationResult{
				IsValid:          false,
				TotalChunks:      3,
				OversizedChunks:  3,
				OversizedIndices: []int{0, 1, 2},
			},
		},
		{
			name:    "empty collection is valid",
			chunks:  nil,
			maxSize: 3,
			want: ValidationResult{
				IsValid: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateChunks(tt.chunks, tt.maxSize)
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("want %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestValidateChunksIdempotent(t *testing.T) {
	chunks := []string{"ab", "abcdef", "x"}
	first := ValidateChunks(chunks, 3)
	second := ValidateChunks(chunks, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(chunks, []string{"ab", "abcdef", "x"}) {
		t.Errorf("input mutated: %q", chunks)
	}
}
