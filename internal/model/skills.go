package model

import (
	"encoding/json"
	"strings"
)

// MergeSkills folds extracted categories into an existing Technical Skills
// value. The result is always categorized. Categories match by exact name;
// skills are de-duplicated case-sensitively in first-seen order. If incoming
// is malformed (a category with a blank name) existing is returned as is.
func MergeSkills(existing TechnicalSkills, incoming []SkillCategory) TechnicalSkills {
	if !wellFormed(incoming) {
		return existing
	}
	merged := existing.Normalize()
	index := make(map[string]int, len(merged))
	for i, c := range merged {
		if _, dup := index[c.Category]; !dup {
			index[c.Category] = i
		}
		merged[i].Skills = dedupe(nil, c.Skills)
	}
	for _, in := range incoming {
		if i, ok := index[in.Category]; ok {
			merged[i].Skills = dedupe(merged[i].Skills, in.Skills)
			continue
		}
		index[in.Category] = len(merged)
		merged = append(merged, SkillCategory{Category: in.Category, Skills: dedupe(nil, in.Skills)})
	}
	return CategorizedSkills(merged...)
}

// MergeExtracted decodes the extraction helper's raw output and merges it.
// ok is false, and existing is returned untouched, when the output is not a
// JSON array of {category, skills} objects.
func MergeExtracted(existing TechnicalSkills, raw json.RawMessage) (merged TechnicalSkills, ok bool) {
	incoming, ok := ParseExtracted(raw)
	if !ok {
		return existing, false
	}
	return MergeSkills(existing, incoming), true
}

// ParseExtracted accepts either a bare array of categories or an object
// wrapping it under "skills" or "categories".
func ParseExtracted(raw json.RawMessage) ([]SkillCategory, bool) {
	var cats []SkillCategory
	if err := json.Unmarshal(raw, &cats); err == nil {
		return cats, wellFormed(cats)
	}
	var wrapped struct {
		Skills     []SkillCategory `json:"skills"`
		Categories []SkillCategory `json:"categories"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, false
	}
	switch {
	case wrapped.Categories != nil:
		cats = wrapped.Categories
	case wrapped.Skills != nil:
		cats = wrapped.Skills
	default:
		return nil, false
	}
	return cats, wellFormed(cats)
}

func wellFormed(cats []SkillCategory) bool {
	for _, c := range cats {
		if strings.TrimSpace(c.Category) == "" {
			return false
		}
	}
	return true
}

func dedupe(into []string, add []string) []string {
	seen := make(map[string]struct{}, len(into)+len(add))
	out := make([]string, 0, len(into)+len(add))
	for _, s := range into {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range add {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
