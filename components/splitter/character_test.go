package splitter

import (
	"reflect"
	"testing"
)

func TestCharacters(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		chunkSize int
		overlap   int
		want      []string
	}{
		{
			name:      "paragraph delimiter",
			input:     "aaa\n\nbbb\n\nccc",
			delimiter: "\n\n",
			chunkSize: 10,
			overlap:   0,
			want:      []string{"aaa\n\nbbb", "ccc"},
		},
		{
			name:      "pipe delimiter",
			input:     "a|b|c",
			delimiter: "|",
			chunkSize: 3,
			overlap:   0,
			want:      []string{"a|b", "c"},
		},
		{
			name:      "oversized piece kept whole",
			input:     "short|averyveryverylongpiece|tail",
			delimiter: "|",
			chunkSize: 10,
			overlap:   0,
			want:      []string{"short", "averyveryverylongpiece", "tail"},
		},
		{
			name:      "empty input",
			input:     " ",
			delimiter: "|",
			chunkSize: 3,
			overlap:   0,
			want:      []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCharacters(
				WithDelimiter(tt.delimiter),
				WithChunkSize(tt.chunkSize),
				WithOverlap(tt.overlap),
			).SplitText(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
