// Package html converts HTML documents to markdown suitable for chunking.
package html

import (
	"bytes"
	"context"
	"io"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"

	"github.com/bububa/textchunk/components/document"
)

// Parser converts HTML to markdown. Nodes matching the exclude selectors are
// pruned before conversion so script, style and navigation noise never
// reaches the chunker.
type Parser struct {
	exclude     []string
	convertOpts []converter.ConvertOptionFunc
}

var _ document.Parser = (*Parser)(nil)

type Option func(*Parser)

// WithExclude replaces the default pruned selectors.
func WithExclude(selectors ...string) Option {
	return func(p *Parser) {
		p.exclude = selectors
	}
}

func WithConvertOptions(opts ...converter.ConvertOptionFunc) Option {
	return func(p *Parser) {
		p.convertOpts = opts
	}
}

func NewParser(opts ...Option) *Parser {
	ret := &Parser{
		exclude: []string{"script", "style", "noscript", "iframe"},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return err
	}
	for _, selector := range p.exclude {
		doc.Find(selector).Remove()
	}
	html, err := doc.Html()
	if err != nil {
		return err
	}
	md, err := htmltomarkdown.ConvertString(html, p.convertOpts...)
	if err != nil {
		return err
	}
	_, err = writer.Write([]byte(md))
	return err
}
