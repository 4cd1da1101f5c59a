package render_test

import (
	"reflect"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/render/preview"
	"resume-builder/internal/render/printdoc"
	"resume-builder/internal/render/rendertest"
)

func renderBoth(t *testing.T, doc *domain.Document) (pv, pr []rendertest.Section) {
	t.Helper()
	a, err := preview.Render(doc, preview.Options{Editable: true})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	b, err := printdoc.Render(doc)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if pv, err = rendertest.Extract(a); err != nil {
		t.Fatal(err)
	}
	if pr, err = rendertest.Extract(b); err != nil {
		t.Fatal(err)
	}
	return pv, pr
}

func TestPreviewAndPrintShowSameContent(t *testing.T) {
	for _, kinds := range rendertest.FullSelections() {
		doc := rendertest.Document(kinds...)
		pv, pr := renderBoth(t, doc)
		if !reflect.DeepEqual(pv, pr) {
			t.Fatalf("preview and print differ:\npreview %q\nprint   %q", pv, pr)
		}
		blocks := render.Arrange(doc)
		if len(pv) != len(blocks) {
			t.Fatalf("rendered %d sections, contract has %d", len(pv), len(blocks))
		}
		for i, b := range blocks {
			if !reflect.DeepEqual(pv[i].Content, b.Content()) {
				t.Errorf("%s: got %q, want %q", b.Kind, pv[i].Content, b.Content())
			}
		}
	}
}

func TestHeaderAndEducationScenario(t *testing.T) {
	doc, err := domain.SelectSections([]model.SectionKind{model.KindEducation, model.KindHeader})
	if err != nil {
		t.Fatal(err)
	}
	_ = doc.SetSectionValue(model.KindHeader, model.Header{Name: "Grace Hopper", Email: "grace@navy.mil"})
	_ = doc.SetSectionValue(model.KindEducation, model.Education{{Degree: "PhD Mathematics", Institution: "Yale", Year: "1934"}})

	pv, pr := renderBoth(t, doc)
	want := []rendertest.Section{
		{Kind: "Header", Content: []string{"Grace Hopper", "Email", "grace@navy.mil"}},
		{Kind: "Education", Content: []string{"Education", "PhD Mathematics", "1934", "Yale"}},
	}
	if !reflect.DeepEqual(pv, want) {
		t.Errorf("preview = %q", pv)
	}
	if !reflect.DeepEqual(pr, want) {
		t.Errorf("print = %q", pr)
	}
}

func TestHeaderWithEmptyEducationScenario(t *testing.T) {
	doc, err := domain.SelectSections([]model.SectionKind{model.KindHeader, model.KindEducation})
	if err != nil {
		t.Fatal(err)
	}
	_ = doc.SetSectionValue(model.KindHeader, model.Header{Name: "A"})
	_ = doc.SetSectionValue(model.KindEducation, model.Education{})

	pv, pr := renderBoth(t, doc)
	want := []rendertest.Section{{Kind: "Header", Content: []string{"A"}}}
	if !reflect.DeepEqual(pv, want) {
		t.Errorf("preview = %q", pv)
	}
	if !reflect.DeepEqual(pr, want) {
		t.Errorf("print = %q", pr)
	}
}

func TestSuppressedSectionsAbsentFromBoth(t *testing.T) {
	doc, _ := domain.SelectSections([]model.SectionKind{model.KindHeader, model.KindProjects, model.KindHobbies, model.KindObjective})
	_ = doc.SetSectionValue(model.KindHeader, model.Header{Name: "X"})
	_ = doc.SetSectionValue(model.KindObjective, model.Objective("<p></p>"))
	pv, pr := renderBoth(t, doc)
	want := []rendertest.Section{{Kind: "Header", Content: []string{"X"}}}
	if !reflect.DeepEqual(pv, want) {
		t.Errorf("preview = %q", pv)
	}
	if !reflect.DeepEqual(pr, want) {
		t.Errorf("print = %q", pr)
	}
}
