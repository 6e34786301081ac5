package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/atomic"
)

// HTTP is a Source backed by an HTTP endpoint. The body is fetched once and
// cached; concurrent fetches are serialized through a read-state guard.
type HTTP struct {
	status *atomic.Int32
	client *http.Client
	method string
	link   string
	body   io.Reader
	buffer *bytes.Buffer
}

var _ Source = (*HTTP)(nil)

type HTTPOption func(*HTTP)

func WithHTTPMethod(method string) HTTPOption {
	return func(h *HTTP) {
		h.method = method
	}
}

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = client
	}
}

func WithHTTPBody(body io.Reader) HTTPOption {
	return func(h *HTTP) {
		h.body = body
	}
}

func NewHTTP(link string, opts ...HTTPOption) *HTTP {
	ret := &HTTP{
		status: atomic.NewInt32(Unread),
		client: http.DefaultClient,
		method: http.MethodGet,
		link:   link,
		buffer: new(bytes.Buffer),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (h *HTTP) ReadStatus() ReadStatus {
	return h.status.Load()
}

func (h *HTTP) Fetch(ctx context.Context) (*bytes.Reader, error) {
	if !h.status.CompareAndSwap(Unread, Reading) {
		if h.status.Load() == ReadCompleted {
			return bytes.NewReader(h.buffer.Bytes()), nil
		}
		return nil, ErrReading
	}
	req, err := http.NewRequestWithContext(ctx, h.method, h.link, h.body)
	if err != nil {
		h.status.Store(Unread)
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		h.status.Store(Unread)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		h.status.Store(Unread)
		return nil, fmt.Errorf("document: unexpected status %s fetching %s", resp.Status, h.link)
	}
	if _, err := io.Copy(h.buffer, resp.Body); err != nil {
		h.buffer.Reset()
		h.status.Store(Unread)
		return nil, err
	}
	h.status.Store(ReadCompleted)
	return bytes.NewReader(h.buffer.Bytes()), nil
}

func (h *HTTP) Meta() map[string]string {
	return map[string]string{
		"url":    h.link,
		"method": h.method,
	}
}
