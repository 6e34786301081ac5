package splitter

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		chunkSize int
		want      []string
	}{
		{
			name:      "two words per chunk",
			input:     "one two three four five",
			chunkSize: 2,
			want:      []string{"one two", "three four", "five"},
		},
		{
			name:      "everything fits",
			input:     "just a few words",
			chunkSize: 10,
			want:      []string{"just a few words"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewWords(WithChunkSize(tt.chunkSize)).SplitText(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGraphemes(t *testing.T) {
	got, err := NewGraphemes(WithChunkSize(2)).SplitText("héllo")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hé", "ll", "o"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestPhrases(t *testing.T) {
	got, err := NewPhrases(WithChunkSize(100)).SplitText("Hello there, old friend.")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 chunk, got %d: %q", len(got), got)
	}
}
