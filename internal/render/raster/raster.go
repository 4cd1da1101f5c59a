// Package raster is the in-process client export: it paints the preview
// fragment onto a bitmap and slices it into A4 pages of a PDF.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/net/html"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
)

// Options configures the rasterization.
type Options struct {
	// WidthPx is the CSS width of the preview element.
	WidthPx int
	// Scale multiplies the bitmap resolution.
	Scale float64
	Page  render.PageGeometry
}

// DefaultOptions matches the preview stylesheet at twice its resolution.
func DefaultOptions() Options {
	return Options{WidthPx: 794, Scale: 2, Page: render.A4}
}

var (
	fontsOnce sync.Once
	fonts     map[string]*truetype.Font
	fontsErr  error
)

func loadFonts() (map[string]*truetype.Font, error) {
	fontsOnce.Do(func() {
		fonts = make(map[string]*truetype.Font, 3)
		for name, ttf := range map[string][]byte{"regular": goregular.TTF, "bold": gobold.TTF, "italic": goitalic.TTF} {
			f, err := truetype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("failed to parse %s font: %w", name, err)
				return
			}
			fonts[name] = f
		}
	})
	return fonts, fontsErr
}

// Export rasterizes the element with id target inside markup and returns
// the paginated PDF.
func Export(markup, target string, opts Options) ([]byte, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "parse", Err: err}
	}
	node := findByID(root, target)
	if node == nil {
		return nil, &domain.RenderTargetMissingError{Target: target}
	}
	img, err := paint(collect(node, nil), opts)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "rasterize", Err: err}
	}
	pdf, err := Paginate(img, opts.Page)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "paginate", Err: err}
	}
	return pdf, nil
}

type style struct {
	face   string
	size   float64
	color  color.Color
	before float64
	indent float64
}

var (
	ink   = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	muted = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	rule  = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
)

var styles = map[itemKind]style{
	itemName:      {face: "bold", size: 26, color: ink},
	itemContacts:  {face: "regular", size: 11, color: muted, before: 4},
	itemTitle:     {face: "bold", size: 14, color: ink, before: 14},
	itemRecord:    {face: "bold", size: 12, color: ink, before: 6},
	itemField:     {face: "regular", size: 12, color: ink, before: 2},
	itemParagraph: {face: "regular", size: 12, color: muted, before: 2},
	itemBullet:    {face: "regular", size: 12, color: ink, before: 1, indent: 18},
}

type drawOp struct {
	face    font.Face
	text    string
	x, y    float64
	anchorX float64
	color   color.Color
	line    bool
}

// paint lays items out in two passes: the first measures and positions every
// line so the canvas height is known, the second draws onto it.
func paint(items []item, opts Options) (image.Image, error) {
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	width := float64(opts.WidthPx) * scale
	pad := 38 * scale
	inner := width - 2*pad

	faces := make(map[string]font.Face)
	face := func(name string, size float64) font.Face {
		key := fmt.Sprintf("%s/%.1f", name, size)
		if f, ok := faces[key]; ok {
			return f
		}
		f := truetype.NewFace(fs[name], &truetype.Options{Size: size * scale, DPI: 72, Hinting: font.HintingNone})
		faces[key] = f
		return f
	}

	measure := gg.NewContext(1, 1)
	var ops []drawOp
	y := pad
	for i, it := range items {
		st := styles[it.kind]
		if i > 0 {
			y += st.before * scale
		}
		f := face(st.face, st.size)
		measure.SetFontFace(f)
		lh := st.size * scale * 1.35
		x := pad + st.indent*scale
		avail := inner - st.indent*scale

		switch it.kind {
		case itemName, itemContacts:
			for _, l := range wrap(measure, it.text, inner) {
				y += lh
				ops = append(ops, drawOp{face: f, text: l, x: width / 2, y: y - lh*0.25, anchorX: 0.5, color: st.color})
			}
			continue
		case itemTitle:
			y += lh
			ops = append(ops, drawOp{face: f, text: strings.ToUpper(it.text), x: x, y: y - lh*0.25, color: st.color})
			y += 3 * scale
			ops = append(ops, drawOp{line: true, x: pad, y: y, color: rule})
			y += 2 * scale
			continue
		case itemRecord:
			if it.aside != "" {
				af := face("italic", 11)
				measure.SetFontFace(af)
				aw, _ := measure.MeasureString(it.aside)
				ops = append(ops, drawOp{face: af, text: it.aside, x: width - pad, y: y + lh*0.75, anchorX: 1, color: muted})
				avail -= aw + 12*scale
				measure.SetFontFace(f)
			}
		case itemField:
			lf := face("bold", st.size)
			measure.SetFontFace(lf)
			prefix := it.label + ": "
			pw, _ := measure.MeasureString(prefix)
			ops = append(ops, drawOp{face: lf, text: prefix, x: x, y: y + lh*0.75, color: st.color})
			measure.SetFontFace(f)
			lines := wrap(measure, it.text, avail-pw)
			for j, l := range lines {
				y += lh
				lx := x + pw
				if j > 0 {
					lx = x
				}
				ops = append(ops, drawOp{face: f, text: l, x: lx, y: y - lh*0.25, color: st.color})
			}
			if len(lines) == 0 {
				y += lh
			}
			continue
		case itemBullet:
			ops = append(ops, drawOp{face: f, text: "•", x: x - 10*scale, y: y + lh*0.75, color: st.color})
		}
		lines := wrap(measure, it.text, avail)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, l := range lines {
			y += lh
			ops = append(ops, drawOp{face: f, text: l, x: x, y: y - lh*0.25, color: st.color})
		}
	}
	height := int(math.Ceil(y + pad))

	dc := gg.NewContext(int(width), height)
	dc.SetColor(color.White)
	dc.Clear()
	for _, op := range ops {
		dc.SetColor(op.color)
		if op.line {
			dc.SetLineWidth(scale)
			dc.DrawLine(op.x, op.y, width-op.x, op.y)
			dc.Stroke()
			continue
		}
		if op.text == "" {
			continue
		}
		dc.SetFontFace(op.face)
		dc.DrawStringAnchored(op.text, op.x, op.y, op.anchorX, 0)
	}
	return dc.Image(), nil
}

func wrap(dc *gg.Context, s string, width float64) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return dc.WordWrap(s, width)
}

// Paginate maps the bitmap onto the page content width and cuts it into
// strips one content-height tall, one strip per page.
func Paginate(img image.Image, page render.PageGeometry) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty bitmap")
	}
	mmPerPx := page.ContentWidthMM() / float64(b.Dx())
	stripPx := int(math.Floor(page.ContentHeightMM() / mmPerPx))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(page.MarginMM, page.MarginMM, page.MarginMM)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("resume-builder", true)

	for i, r := range strips(b, stripPx) {
		strip := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(strip, strip.Bounds(), img, r.Min, draw.Src)
		var buf bytes.Buffer
		if err := png.Encode(&buf, strip); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}
		name := fmt.Sprintf("page-%d", i+1)
		opt := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opt, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, page.MarginMM, page.MarginMM, page.ContentWidthMM(), float64(r.Dy())*mmPerPx, false, opt, 0, "")
	}
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}

// strips cuts bounds into consecutive rectangles of at most height rows.
func strips(bounds image.Rectangle, height int) []image.Rectangle {
	if height <= 0 {
		return []image.Rectangle{bounds}
	}
	var out []image.Rectangle
	for y := bounds.Min.Y; y < bounds.Max.Y; y += height {
		out = append(out, image.Rect(bounds.Min.X, y, bounds.Max.X, min(y+height, bounds.Max.Y)))
	}
	return out
}
