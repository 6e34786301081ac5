package document

import (
	"bytes"
	"context"
	"io"
)

// Parser transforms raw document bytes into chunkable text, writing its
// output to the writer. A parser must not leave partial output behind on
// error; callers discard the destination document when Parse fails.
type Parser interface {
	Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error
}

// TextParser passes content through untouched. It is the fallback for
// plain-text payloads.
type TextParser struct{}

var _ Parser = (*TextParser)(nil)

func (p *TextParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	_, err := io.Copy(writer, reader)
	return err
}

// Source supplies raw document bytes from some backing store along with the
// metadata it knows about the payload.
type Source interface {
	Fetch(ctx context.Context) (*bytes.Reader, error)
	Meta() map[string]string
}

// Load fetches a source, parses its payload and returns a chunkable
// Document carrying the source metadata. A nil parser copies the payload
// through as plain text.
func Load(ctx context.Context, src Source, parser Parser) (*Document, error) {
	reader, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if parser == nil {
		parser = new(TextParser)
	}
	doc := New()
	for k, v := range src.Meta() {
		doc.Meta[k] = v
	}
	if err := parser.Parse(ctx, reader, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
