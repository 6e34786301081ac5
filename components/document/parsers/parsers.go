// Package parsers dispatches raw payloads to a concrete parser by sniffing
// their mimetype.
package parsers

import (
	"bytes"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/bububa/textchunk/components/document"
	"github.com/bububa/textchunk/components/document/parsers/docx"
	"github.com/bububa/textchunk/components/document/parsers/html"
	"github.com/bububa/textchunk/components/document/parsers/pdf"
	"github.com/bububa/textchunk/components/document/parsers/xlsx"
)

// Detect sniffs the payload's mimetype and returns a parser for it. Unknown
// and text-like payloads fall back to the plain-text parser. The reader is
// rewound before returning.
func Detect(reader *bytes.Reader) (document.Parser, error) {
	mtype, err := mimetype.DetectReader(reader)
	if _, serr := reader.Seek(0, io.SeekStart); serr != nil {
		return nil, serr
	}
	if err != nil {
		return nil, err
	}
	switch {
	case mtype.Is("application/pdf"):
		return pdf.NewParser(), nil
	case mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return docx.NewParser(), nil
	case mtype.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return xlsx.NewParser(), nil
	case mtype.Is("text/html"):
		return html.NewParser(), nil
	default:
		return new(document.TextParser), nil
	}
}
