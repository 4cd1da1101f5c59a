package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMergeSkillsLegacyScenario(t *testing.T) {
	got := MergeSkills(FlatSkills("Python", "Go"), []SkillCategory{{Category: "Databases", Skills: []string{"MySQL"}}})
	want := CategorizedSkills(
		SkillCategory{Category: "Other Technical Skills", Skills: []string{"Python", "Go"}},
		SkillCategory{Category: "Databases", Skills: []string{"MySQL"}},
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestMergeSkillsUnionsExistingCategory(t *testing.T) {
	existing := CategorizedSkills(SkillCategory{Category: "Languages", Skills: []string{"Go", "C"}})
	got := MergeSkills(existing, []SkillCategory{
		{Category: "Languages", Skills: []string{"C", "go", "Rust", "Rust"}},
	})
	want := []string{"Go", "C", "go", "Rust"}
	if len(got.Categories) != 1 || !reflect.DeepEqual(got.Categories[0].Skills, want) {
		t.Fatalf("got %#v, want skills %v", got.Categories, want)
	}
}

func TestMergeSkillsIdempotent(t *testing.T) {
	incoming := []SkillCategory{
		{Category: "Databases", Skills: []string{"MySQL", "Redis"}},
		{Category: "Other Technical Skills", Skills: []string{"Go", "Docker"}},
	}
	once := MergeSkills(FlatSkills("Python", "Go"), incoming)
	twice := MergeSkills(once, incoming)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent:\nonce  %#v\ntwice %#v", once, twice)
	}
}

func TestMergeSkillsWrapsLegacyIntoOneCategory(t *testing.T) {
	got := MergeSkills(FlatSkills("A", "B"), nil)
	if !got.Categorized || len(got.Categories) != 1 || got.Categories[0].Category != LegacyCategory {
		t.Fatalf("got %#v", got)
	}
	empty := MergeSkills(FlatSkills(), nil)
	if !empty.Categorized || len(empty.Categories) != 0 {
		t.Fatalf("empty legacy list should migrate to no categories, got %#v", empty)
	}
}

func TestMergeSkillsMalformedKeepsExisting(t *testing.T) {
	existing := FlatSkills("Go")
	got := MergeSkills(existing, []SkillCategory{{Category: " ", Skills: []string{"x"}}})
	if !reflect.DeepEqual(got, existing) {
		t.Fatalf("malformed input changed value: %#v", got)
	}
}

func TestMergeExtracted(t *testing.T) {
	existing := FlatSkills("Go")
	tests := []struct {
		name    string
		raw     string
		changed bool
	}{
		{"array", `[{"category":"Cloud","skills":["GCP"]}]`, true},
		{"wrapped", `{"categories":[{"category":"Cloud","skills":["GCP"]}]}`, true},
		{"prose", `"I found some skills"`, false},
		{"missing category", `[{"skills":["GCP"]}]`, false},
		{"garbage", `{nope`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergeExtracted(existing, json.RawMessage(tt.raw))
			if ok != tt.changed {
				t.Errorf("ok = %v, want %v", ok, tt.changed)
			}
			if changed := !reflect.DeepEqual(got, existing); changed != tt.changed {
				t.Fatalf("changed = %v, want %v (got %#v)", changed, tt.changed, got)
			}
		})
	}
}
