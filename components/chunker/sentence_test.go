package chunker

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminal punctuation",
			input: "One sentence. Another one! A third? Done.",
			want:  []string{"One sentence.", "Another one!", "A third?", "Done."},
		},
		{
			name:  "punctuation inside a token",
			input: "Version 2.5 is out now.",
			want:  []string{"Version 2.5 is out now."},
		},
		{
			name:  "trailing text without punctuation",
			input: "First. And then some",
			want:  []string{"First.", "And then some"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  \n\t ",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSentenceChunks(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		chunkSize int
		want      []string
		wantErr   bool
	}{
		{
			name:      "each sentence alone",
			input:     "A. B. C.",
			chunkSize: 4,
			want:      []string{"A.", "B.", "C."},
		},
		{
			name:      "sentences packed to the bound",
			input:     "Hi. Yo. Hello there.",
			chunkSize: 7,
			want:      []string{"Hi. Yo.", "Hello there."},
		},
		{
			name:      "oversized sentence kept whole",
			input:     "abcdefghij.",
			chunkSize: 5,
			want:      []string{"abcdefghij."},
		},
		{
			name:      "empty input",
			input:     "",
			chunkSize: 10,
			want:      []string{},
		},
		{
			name:      "zero chunk size",
			input:     "A.",
			chunkSize: 0,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SentenceChunks(tt.input, tt.chunkSize)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("want ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
