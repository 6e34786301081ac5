// Package docx extracts paragraph and table text from Word documents.
package docx

import (
	"bytes"
	"context"
	"io"

	"github.com/fumiama/go-docx"

	"github.com/bububa/textchunk/components/document"
)

// Parser extracts docx body items as plain text, one paragraph or table per
// block.
type Parser struct{}

var _ document.Parser = (*Parser)(nil)

func NewParser() *Parser {
	return new(Parser)
}

func (p *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := docx.Parse(reader, reader.Size())
	if err != nil {
		return err
	}
	for idx, it := range doc.Document.Body.Items {
		var content string
		switch t := it.(type) {
		case *docx.Paragraph:
			content = t.String()
		case *docx.Table:
			content = t.String()
		default:
			continue
		}
		if idx > 0 {
			if _, err := writer.Write([]byte{'\n', '\n'}); err != nil {
				return err
			}
		}
		if _, err := writer.Write([]byte(content)); err != nil {
			return err
		}
	}
	return nil
}
