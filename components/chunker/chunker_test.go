package chunker

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero chunk size", opts: []Option{WithChunkSize(0)}},
		{name: "negative chunk size", opts: []Option{WithChunkSize(-1)}},
		{name: "negative overlap", opts: []Option{WithChunkOverlap(-1)}},
		{name: "overlap equals chunk size", opts: []Option{WithChunkSize(10), WithChunkOverlap(10)}},
		{name: "overlap exceeds chunk size", opts: []Option{WithChunkSize(10), WithChunkOverlap(11)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCallOptionsOverrideDefaults(t *testing.T) {
	c, err := New(WithChunkSize(100))
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := c.SplitBySentence("A. B. C.", WithChunkSize(4))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A.", "B.", "C."}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("want %q, got %q", want, chunks)
	}
	// the instance defaults must survive the per-call override
	if got := c.Config().ChunkSize; got != 100 {
		t.Errorf("instance chunk size changed to %d", got)
	}
	chunks, err = c.SplitBySentence("A. B. C.")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A. B. C."}; !reflect.DeepEqual(chunks, want) {
		t.Errorf("want %q, got %q", want, chunks)
	}
}

func TestCallOptionsValidatedBeforeSplitting(t *testing.T) {
	c, err := New(WithChunkSize(10))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.SplitBySentence("A. B.", WithChunkOverlap(20)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("want ErrInvalidConfig, got %v", err)
	}
	if _, err := c.SplitRecursive("some text", WithChunkSize(-5)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("want ErrInvalidConfig, got %v", err)
	}
}

func TestSplitEqualSize(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := c.SplitEqualSize("abcdefghij", 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abcd", "defg", "ghij", "j"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("want %q, got %q", want, chunks)
	}
}

func TestSplitDelimiter(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := c.SplitDelimiter("a|b|c", "|", WithChunkSize(3))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a|b", "c"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("want %q, got %q", want, chunks)
	}
}

func TestSplitRecursiveUsesConfiguredSeparators(t *testing.T) {
	c, err := New(WithChunkSize(16), WithSeparators("\n\n", "\n", " ", ""))
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := c.SplitRecursive("one one\n\ntwo two\n\nthree")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one one\n\ntwo two", "three"}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("want %q, got %q", want, chunks)
	}
}

func TestSplitMarkdown(t *testing.T) {
	c, err := New(WithChunkSize(400))
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := c.SplitMarkdown("# Title\n\nIntro paragraph.\n\n## Section\n\nBody text here.")
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 1 {
		t.Fatalf("want 1 chunk, got %d: %q", len(chunks), chunks)
	}
}
