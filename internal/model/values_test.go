package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTechnicalSkillsJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TechnicalSkills
	}{
		{"legacy", `["Python","Go"]`, FlatSkills("Python", "Go")},
		{"categorized", `[{"category":"Databases","skills":["MySQL"]}]`,
			CategorizedSkills(SkillCategory{Category: "Databases", Skills: []string{"MySQL"}})},
		{"empty", `[]`, TechnicalSkills{Flat: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TechnicalSkills
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tt.in {
				t.Errorf("marshal = %s, want %s", out, tt.in)
			}
		})
	}
}

func TestTechnicalSkillsRejectsMixedShapes(t *testing.T) {
	var v TechnicalSkills
	if err := json.Unmarshal([]byte(`["Go",{"category":"x"}]`), &v); err == nil {
		t.Fatal("expected error for mixed entries")
	}
	if err := json.Unmarshal([]byte(`[1,2]`), &v); err == nil {
		t.Fatal("expected error for numeric entries")
	}
}

func TestSectionValuesDecodeTyped(t *testing.T) {
	body := `{
		"Header": {"name": "Ada"},
		"Objective": "Write compilers",
		"Projects": [{"title": "Engine", "technologies": ["Go"]}],
		"Technical Skills": ["Go"],
		"Languages": null
	}`
	var sv SectionValues
	if err := json.Unmarshal([]byte(body), &sv); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h, ok := sv[KindHeader].(Header); !ok || h.Name != "Ada" {
		t.Errorf("header = %#v", sv[KindHeader])
	}
	if o, ok := sv[KindObjective].(Objective); !ok || o != "Write compilers" {
		t.Errorf("objective = %#v", sv[KindObjective])
	}
	if p, ok := sv[KindProjects].(Projects); !ok || len(p) != 1 || p[0].Technologies[0] != "Go" {
		t.Errorf("projects = %#v", sv[KindProjects])
	}
	if _, ok := sv[KindLanguages].(Languages); !ok {
		t.Errorf("null languages should decode to default, got %#v", sv[KindLanguages])
	}
}

func TestSectionValuesRejectsUnknownKind(t *testing.T) {
	var sv SectionValues
	if err := json.Unmarshal([]byte(`{"Comments": []}`), &sv); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if err := json.Unmarshal([]byte(`{"Education": "MIT"}`), &sv); err == nil {
		t.Fatal("expected error for wrong shape")
	}
}

func TestNormalizeDoesNotAlias(t *testing.T) {
	v := FlatSkills("Go")
	n := v.Normalize()
	n[0].Skills[0] = "Rust"
	if v.Flat[0] != "Go" {
		t.Fatal("Normalize aliased the flat slice")
	}
}
