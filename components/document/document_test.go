package document

import (
	"testing"

	"github.com/bububa/textchunk/components/splitter"
)

func TestDocumentIDs(t *testing.T) {
	first := New()
	second := New()
	if first.ID() == "" || first.ID() == second.ID() {
		t.Errorf("instance ids must be unique, got %q and %q", first.ID(), second.ID())
	}
}

func TestDocumentUUID(t *testing.T) {
	build := func() *Document {
		doc := New()
		doc.Write([]byte("same content"))
		doc.Meta["filename"] = "a.txt"
		doc.Meta["modtime"] = "123"
		return doc
	}
	if build().UUID() != build().UUID() {
		t.Error("identical content and metadata must derive the same uuid")
	}
	other := build()
	other.Write([]byte(" more"))
	if other.UUID() == build().UUID() {
		t.Error("different content must derive a different uuid")
	}
}

func TestDocumentSplit(t *testing.T) {
	doc := New()
	doc.Write([]byte("First sentence. Second sentence. Third sentence."))
	chunks, err := doc.Split(splitter.NewSentences(splitter.WithChunkSize(16)))
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Errorf("want 3 chunks, got %d: %q", len(chunks), chunks)
	}
}
