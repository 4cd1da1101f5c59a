package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"resume-builder/pkg/ai/formatters"
)

func mockAI(t *testing.T, output string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Agent != "auto" || !strings.Contains(req.Input, "TEXT:") {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(chatResponse{Agent: "auto", Output: output})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractSkills(t *testing.T) {
	srv := mockAI(t, "Here is the result:\n[{\"category\":\"Databases\",\"skills\":[\"MySQL\"]}]", http.StatusOK)
	c := NewClient(srv.URL)
	raw, err := c.ExtractSkills(context.Background(), "I built things with MySQL")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `[{"category":"Databases","skills":["MySQL"]}]` {
		t.Fatalf("raw = %s", raw)
	}
}

func TestExtractSkillsNon200(t *testing.T) {
	srv := mockAI(t, "[]", http.StatusBadGateway)
	if _, err := NewClient(srv.URL).ExtractSkills(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("err = %v", err)
	}
}

func TestExtractSkillsProseOnly(t *testing.T) {
	srv := mockAI(t, "I could not find any skills.", http.StatusOK)
	_, err := NewClient(srv.URL).ExtractSkills(context.Background(), "x")
	if !errors.Is(err, formatters.ErrNoJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestDoPostWithRetryRetriesTransportErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("hijack unsupported")
			}
			conn, _, _ := hj.Hijack()
			_ = conn.Close()
			return
		}
		_ = json.NewEncoder(w).Encode(chatResponse{Output: "[]"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Backoff = time.Millisecond
	raw, err := c.ExtractSkills(context.Background(), "x")
	if err != nil {
		t.Fatalf("ExtractSkills: %v", err)
	}
	if string(raw) != "[]" || calls.Load() != 3 {
		t.Fatalf("raw = %s, calls = %d", raw, calls.Load())
	}
}

func TestDoPostWithRetryHonorsContext(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	c.Backoff = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.ExtractSkills(ctx, "x"); err == nil {
		t.Fatal("expected error")
	}
}
