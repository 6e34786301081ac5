// Package document acquires raw documents from files, HTTP endpoints or S3
// objects, parses them to plain text or markdown, and hands the result to a
// splitting strategy.
package document

import (
	"bytes"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"github.com/bububa/textchunk/components/splitter"
)

var ErrReading = errors.New("document is being read")

type ReadStatus = int32

const (
	Unread ReadStatus = iota
	Reading
	ReadCompleted
)

// Document is a parsed text container with metadata, ready for chunking.
type Document struct {
	id     string
	buffer *bytes.Buffer
	Meta   map[string]string
}

func New() *Document {
	return &Document{
		id:     xid.New().String(),
		buffer: new(bytes.Buffer),
		Meta:   make(map[string]string),
	}
}

// ID is the instance identifier assigned at construction.
func (d *Document) ID() string {
	return d.id
}

// UUID derives a stable identifier from the document content and metadata,
// usable for deduplication across loads.
func (d *Document) UUID() string {
	sb := new(bytes.Buffer)
	sb.Write(d.buffer.Bytes())
	keys := make([]string, 0, len(d.Meta))
	for k := range d.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(k + ":" + d.Meta[k])
		sb.WriteByte('\n')
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, sb.Bytes()).String()
}

// Write appends parsed content. Parsers write their output here.
func (d *Document) Write(p []byte) (int, error) {
	return d.buffer.Write(p)
}

func (d *Document) Reader() *bytes.Reader {
	return bytes.NewReader(d.buffer.Bytes())
}

func (d *Document) Text() string {
	return d.buffer.String()
}

func (d *Document) Len() int {
	return d.buffer.Len()
}

// Split runs a segmentation strategy over the document content.
func (d *Document) Split(s splitter.Splitter) ([]string, error) {
	return s.SplitText(d.Text())
}
