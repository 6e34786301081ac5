package document

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strconv"
)

// File is a Source backed by a local file.
type File struct {
	path string
	meta map[string]string
}

var _ Source = (*File)(nil)

func NewFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("document: file source cannot be a directory")
	}
	return &File{
		path: path,
		meta: map[string]string{
			"filename": info.Name(),
			"modtime":  strconv.FormatInt(info.ModTime().Unix(), 10),
		},
	}, nil
}

func (f *File) Fetch(ctx context.Context) (*bytes.Reader, error) {
	bs, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(bs), nil
}

func (f *File) Meta() map[string]string {
	return f.meta
}
