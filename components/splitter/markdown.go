package splitter

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Markdown chunks markdown text along its heading structure: the document is
// parsed into sections delimited by headings, sections are packed into
// chunks bounded by the chunk budget, and a section that exceeds the budget
// on its own falls back to the recursive-character strategy.
type Markdown struct {
	Options
	md goldmark.Markdown
}

var _ Splitter = (*Markdown)(nil)

func NewMarkdown(opts ...Option) *Markdown {
	ret := new(Markdown)
	ret.apply(opts)
	ret.md = goldmark.New()
	return ret
}

func (m *Markdown) SplitText(text string) ([]string, error) {
	if err := m.validateWindow(); err != nil {
		return nil, err
	}
	source := []byte(text)
	if len(bytes.TrimSpace(source)) == 0 {
		return []string{}, nil
	}
	root := m.md.Parser().Parse(gmtext.NewReader(source))

	var sections []string
	var section bytes.Buffer
	flush := func() {
		if s := strings.TrimSpace(section.String()); s != "" {
			sections = append(sections, s)
		}
		section.Reset()
	}
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok {
			flush()
			section.WriteString(strings.Repeat("#", heading.Level))
			section.WriteByte(' ')
		}
		section.Write(nodeSource(node, source))
		section.WriteString("\n\n")
	}
	flush()

	var splits []string
	for _, sec := range sections {
		if utf8.RuneCountInString(sec) <= m.chunkSize {
			splits = append(splits, sec)
			continue
		}
		parts, err := NewRecursive(
			WithChunkSize(m.chunkSize),
			WithOverlap(m.overlap),
		).SplitText(sec)
		if err != nil {
			return nil, err
		}
		splits = append(splits, parts...)
	}
	return mergeSplits(splits, "\n\n", m.chunkSize, m.overlap), nil
}

// nodeSource reconstructs the raw source covered by a block node. Nodes that
// carry their own lines use them directly; containers concatenate their
// children line by line.
func nodeSource(node ast.Node, source []byte) []byte {
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		return bytes.TrimRight(buf.Bytes(), "\n")
	}
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(nodeSource(child, source))
	}
	return buf.Bytes()
}
