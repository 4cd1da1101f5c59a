// Command render turns a document JSON file into the preview page, the print
// document and the client PDF without a server or database. With -server the
// print document is also sent through headless Chrome.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render/preview"
	"resume-builder/internal/render/printdoc"
	"resume-builder/internal/render/raster"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/google/uuid"
)

func main() {
	in := flag.String("in", "document.json", "document JSON ({selectedSections, sectionValues})")
	out := flag.String("out", filepath.Join("resume-data", "generated"), "output directory")
	server := flag.Bool("server", false, "also print through headless Chrome")
	timeout := flag.Duration("timeout", 30*time.Second, "headless print timeout")
	flag.Parse()

	if err := run(*in, *out, *server, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
}

func run(in, out string, server bool, timeout time.Duration) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if err := model.ValidatePayload(b); err != nil {
		return err
	}
	var input domain.DocumentInput
	if err := json.Unmarshal(b, &input); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	now := time.Now().UTC()
	doc := &domain.Document{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := doc.Apply(input); err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create out: %w", err)
	}

	page, err := preview.Page(doc, preview.Options{})
	if err != nil {
		return err
	}
	if err := write(out, "preview.html", []byte(page)); err != nil {
		return err
	}
	printed, err := printdoc.Render(doc)
	if err != nil {
		return err
	}
	if err := write(out, "print.html", []byte(printed)); err != nil {
		return err
	}

	fragment, err := preview.Render(doc, preview.Options{})
	if err != nil {
		return err
	}
	pdf, err := raster.Export(fragment, preview.TargetID, raster.DefaultOptions())
	if err != nil {
		return err
	}
	name := usecase.Filename(doc)
	if err := write(out, "client-"+name, pdf); err != nil {
		return err
	}

	if server {
		r := infra.NewChromedpRenderer(infra.WithChromePath(os.Getenv("CHROME_PATH")), infra.WithTimeout(timeout))
		pdf, err := r.RenderHTMLToPDF(context.Background(), printed)
		if err != nil {
			return err
		}
		if err := write(out, "server-"+name, pdf); err != nil {
			return err
		}
	}
	return nil
}

func write(dir, name string, b []byte) error {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	fmt.Printf("wrote %s\n", p)
	return nil
}
