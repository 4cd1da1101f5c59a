package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
)

// ChromedpRenderer prints HTML through a headless Chrome instance started per
// request.
type ChromedpRenderer struct {
	chromePath string
	timeout    time.Duration
	page       render.PageGeometry
}

// RendererOption customizes a ChromedpRenderer.
type RendererOption func(*ChromedpRenderer)

// WithChromePath uses a specific browser binary instead of the one on PATH.
func WithChromePath(p string) RendererOption {
	return func(r *ChromedpRenderer) { r.chromePath = p }
}

// WithTimeout bounds browser start, navigation and printing together.
func WithTimeout(d time.Duration) RendererOption {
	return func(r *ChromedpRenderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithPage overrides the paper geometry.
func WithPage(g render.PageGeometry) RendererOption {
	return func(r *ChromedpRenderer) { r.page = g }
}

func NewChromedpRenderer(opts ...RendererOption) *ChromedpRenderer {
	r := &ChromedpRenderer{timeout: 30 * time.Second, page: render.A4}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RenderHTMLToPDF loads html from a temporary file and prints it. A missed
// deadline is reported as *domain.RenderTimeoutError. The browser and the
// temporary directory are released on every path.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	tctx, cancelTimeout := context.WithTimeout(ctx, r.timeout)
	defer cancelTimeout()

	allocCtx, cancel := chromedp.NewExecAllocator(tctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write print document: %w", err)
	}

	var pdfBuf []byte
	margin := r.page.MarginIn()
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(r.page.WidthIn()).
				WithPaperHeight(r.page.HeightIn()).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(tctx.Err(), context.DeadlineExceeded) {
			return nil, &domain.RenderTimeoutError{After: r.timeout}
		}
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}
