package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Runs only when REDIS_TEST_URL points at a disposable server.
func TestExportCacheRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	ctx := context.Background()
	c, err := NewExportCache(ctx, url, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := "export:test:" + uuid.NewString()
	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("fresh key: ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, key, []byte("%PDF-1.4")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok || !bytes.Equal(got, []byte("%PDF-1.4")) {
		t.Fatalf("get = %q %v %v", got, ok, err)
	}
}

func TestNewExportCacheRejectsBadURL(t *testing.T) {
	if _, err := NewExportCache(context.Background(), "http://not-redis", time.Minute); err == nil {
		t.Fatal("expected parse error")
	}
}
