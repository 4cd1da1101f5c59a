package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls int
	html  string
	pdf   []byte
	err   error
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.html = html
	return f.pdf, f.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	return b, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, pdf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = pdf
	return nil
}

type fakeExtractor struct {
	raw  json.RawMessage
	err  error
	text string
}

func (f *fakeExtractor) ExtractSkills(_ context.Context, text string) (json.RawMessage, error) {
	f.text = text
	return f.raw, f.err
}
