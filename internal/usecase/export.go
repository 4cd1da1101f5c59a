package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/render/preview"
	"resume-builder/internal/render/printdoc"
	"resume-builder/internal/render/raster"

	"github.com/google/uuid"
)

// Renderer prints a standalone HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportCache keeps recent server exports. A miss is (nil, false, nil).
type ExportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, pdf []byte) error
}

// Export is the result of either export path.
type Export struct {
	Filename string
	PDF      []byte
}

// Exporter runs both export paths against owned documents.
type Exporter struct {
	repo     DocumentsRepo
	renderer Renderer
	cache    ExportCache
	raster   raster.Options
	log      *slog.Logger
}

func NewExporter(repo DocumentsRepo, renderer Renderer, cache ExportCache, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{repo: repo, renderer: renderer, cache: cache, raster: raster.DefaultOptions(), log: log}
}

var pdfMagic = []byte("%PDF")

// Server renders the print document through the headless browser. Output
// that does not look like a PDF is an ExportFailure.
func (e *Exporter) Server(ctx context.Context, owner, id uuid.UUID) (*Export, error) {
	d, err := e.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	out := &Export{Filename: Filename(d)}
	key := cacheKey(d)
	if e.cache != nil {
		if pdf, ok, err := e.cache.Get(ctx, key); err != nil {
			e.log.Warn("export cache read failed", "document_id", id, "error", err)
		} else if ok {
			out.PDF = pdf
			return out, nil
		}
	}

	html, err := printdoc.Render(d)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "markup", Err: err}
	}
	start := time.Now()
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		var timeout *domain.RenderTimeoutError
		if errors.As(err, &timeout) {
			e.log.Error("server export timed out", "document_id", id, "owner_id", owner, "after", timeout.After)
			return nil, err
		}
		e.log.Error("server export failed", "document_id", id, "owner_id", owner, "error", err)
		return nil, &domain.ExportFailure{Stage: "print", Err: err}
	}
	if !bytes.HasPrefix(pdf, pdfMagic) {
		return nil, &domain.ExportFailure{Stage: "print", Err: fmt.Errorf("renderer returned %d bytes without a PDF signature", len(pdf))}
	}
	e.log.Info("server export rendered", "document_id", id, "owner_id", owner, "bytes", len(pdf), "duration", time.Since(start))

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, pdf); err != nil {
			e.log.Warn("export cache write failed", "document_id", id, "error", err)
		}
	}
	out.PDF = pdf
	return out, nil
}

// Client rasterizes the preview markup in process.
func (e *Exporter) Client(ctx context.Context, owner, id uuid.UUID) (*Export, error) {
	d, err := e.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	markup, err := preview.Render(d, preview.Options{})
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "markup", Err: err}
	}
	pdf, err := raster.Export(markup, preview.TargetID, e.raster)
	if err != nil {
		return nil, err
	}
	e.log.Info("client export rendered", "document_id", id, "owner_id", owner, "bytes", len(pdf))
	return &Export{Filename: Filename(d), PDF: pdf}, nil
}

// Preview returns the standalone preview page for an owned document.
func (e *Exporter) Preview(ctx context.Context, owner, id uuid.UUID, opts preview.Options) (string, error) {
	d, err := e.repo.Get(ctx, owner, id)
	if err != nil {
		return "", err
	}
	return preview.Page(d, opts)
}

// Exports depend only on document content, so the update time identifies a
// rendition.
func cacheKey(d *domain.Document) string {
	return fmt.Sprintf("export:%s:%d", d.ID, d.UpdatedAt.UnixNano())
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives the download name from the Header name.
func Filename(d *domain.Document) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(d.DisplayName()), "-"), "-")
	if slug == "" {
		return "resume.pdf"
	}
	return slug + ".pdf"
}
