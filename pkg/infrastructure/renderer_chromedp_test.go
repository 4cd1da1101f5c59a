package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
)

func TestNewChromedpRendererOptions(t *testing.T) {
	r := NewChromedpRenderer()
	if r.timeout != 30*time.Second || r.page != render.A4 || r.chromePath != "" {
		t.Fatalf("defaults = %+v", r)
	}
	letter := render.PageGeometry{WidthMM: 215.9, HeightMM: 279.4, MarginMM: 10}
	r = NewChromedpRenderer(WithChromePath("/usr/bin/chromium"), WithTimeout(5*time.Second), WithPage(letter))
	if r.chromePath != "/usr/bin/chromium" || r.timeout != 5*time.Second || r.page != letter {
		t.Fatalf("options not applied: %+v", r)
	}
	if r = NewChromedpRenderer(WithTimeout(0)); r.timeout != 30*time.Second {
		t.Errorf("zero timeout overrode default: %s", r.timeout)
	}
}

// A browser that never announces its DevTools endpoint must hit the deadline.
func TestRenderHTMLToPDFTimesOut(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a shell script as the browser binary")
	}
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	browser := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(browser, []byte("#!/bin/sh\nexec sleep 10\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewChromedpRenderer(WithChromePath(browser), WithTimeout(300*time.Millisecond))
	start := time.Now()
	_, err := r.RenderHTMLToPDF(context.Background(), "<html><body>x</body></html>")
	elapsed := time.Since(start)

	var timeout *domain.RenderTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("err = %v, want RenderTimeoutError", err)
	}
	if timeout.After != 300*time.Millisecond {
		t.Errorf("After = %s", timeout.After)
	}
	if elapsed > 5*time.Second {
		t.Errorf("returned after %s", elapsed)
	}
	left, err := filepath.Glob(filepath.Join(tmp, "resume-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("temp dirs left behind: %v", left)
	}
}
