package domain

import (
	"errors"
	"reflect"
	"testing"

	"resume-builder/internal/model"
)

func TestSelectSectionsProducesDefaultsForEveryKind(t *testing.T) {
	tests := [][]model.SectionKind{
		{model.KindHeader},
		{model.KindEducation, model.KindHeader},
		{model.KindHeader, model.KindObjective, model.KindEducation, model.KindProjects, model.KindWorkExperience, model.KindTechnicalSkills, model.KindLanguages},
		{model.KindHobbies, model.KindAchievements, model.KindHeader, model.KindPublications, model.KindCertifications, model.KindPositions},
	}
	for _, kinds := range tests {
		doc, err := SelectSections(kinds)
		if err != nil {
			t.Fatalf("SelectSections(%v): %v", kinds, err)
		}
		if !reflect.DeepEqual(doc.SelectedSections, kinds) {
			t.Errorf("order changed: %v", doc.SelectedSections)
		}
		if len(doc.SectionValues) != len(kinds) {
			t.Errorf("got %d values for %d kinds", len(doc.SectionValues), len(kinds))
		}
		for _, k := range kinds {
			v, ok := doc.SectionValues[k]
			if !ok {
				t.Errorf("missing value for %s", k)
				continue
			}
			if !model.IsEmpty(k, v) {
				t.Errorf("default value for %s not empty", k)
			}
		}
	}
}

func TestSelectSectionsRejects(t *testing.T) {
	tests := []struct {
		name  string
		kinds []model.SectionKind
	}{
		{"no header", []model.SectionKind{model.KindEducation}},
		{"empty", nil},
		{"too many", []model.SectionKind{model.KindHeader, model.KindObjective, model.KindEducation, model.KindProjects, model.KindWorkExperience, model.KindTechnicalSkills, model.KindLanguages, model.KindHobbies}},
		{"duplicate", []model.SectionKind{model.KindHeader, model.KindEducation, model.KindEducation}},
		{"unknown", []model.SectionKind{model.KindHeader, "Comments"}},
		{"blank", []model.SectionKind{model.KindHeader, ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectSections(tt.kinds)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false")
			}
		})
	}
}

func TestSetSectionValueRoundTrip(t *testing.T) {
	doc, err := SelectSections([]model.SectionKind{model.KindHeader, model.KindProjects, model.KindTechnicalSkills})
	if err != nil {
		t.Fatal(err)
	}
	values := []model.SectionValue{
		model.Header{Name: "A", Email: ""},
		model.Projects{{Title: "", Description: []string{"", "shipped"}}},
		model.FlatSkills("Go"),
	}
	for _, v := range values {
		if err := doc.SetSectionValue(v.Kind(), v); err != nil {
			t.Fatalf("SetSectionValue(%s): %v", v.Kind(), err)
		}
		if got := doc.Section(v.Kind()); !reflect.DeepEqual(got, v) {
			t.Errorf("read back %#v, want %#v", got, v)
		}
	}
}

func TestSetSectionValueUnselectedLeavesDocument(t *testing.T) {
	doc, err := SelectSections([]model.SectionKind{model.KindHeader})
	if err != nil {
		t.Fatal(err)
	}
	before := doc.Clone()
	err = doc.SetSectionValue(model.KindEducation, model.Education{{Degree: "BSc"}})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if !reflect.DeepEqual(before, doc) {
		t.Fatal("document modified by rejected edit")
	}
}

func TestSetSectionValueRejectsMismatchedKind(t *testing.T) {
	doc, _ := SelectSections([]model.SectionKind{model.KindHeader, model.KindHobbies})
	if err := doc.SetSectionValue(model.KindHobbies, model.Achievements{"x"}); err == nil {
		t.Fatal("expected error for value of another kind")
	}
}

func TestApplyFillsMissingDefaults(t *testing.T) {
	doc := &Document{}
	err := doc.Apply(DocumentInput{
		SelectedSections: []model.SectionKind{model.KindHeader, model.KindEducation},
		SectionValues:    model.SectionValues{model.KindHeader: model.Header{Name: "A"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.SectionValues[model.KindEducation].(model.Education); !ok {
		t.Fatalf("education default missing: %#v", doc.SectionValues)
	}
	if doc.DisplayName() != "A" {
		t.Errorf("DisplayName = %q", doc.DisplayName())
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	err := &ExportFailure{Stage: "print", Err: errors.New("chrome crashed at /tmp/secret")}
	if got := PublicMessage(err); got != "export failed: print" {
		t.Fatalf("PublicMessage = %q", got)
	}
	if got := PublicMessage(errors.New("boom")); got != "internal error" {
		t.Fatalf("PublicMessage = %q", got)
	}
}
