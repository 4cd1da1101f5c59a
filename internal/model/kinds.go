package model

import "strings"

// SectionKind identifies one of the fixed résumé section types.
type SectionKind string

const (
	KindHeader          SectionKind = "Header"
	KindObjective       SectionKind = "Objective"
	KindEducation       SectionKind = "Education"
	KindProjects        SectionKind = "Projects"
	KindWorkExperience  SectionKind = "Work Experience"
	KindPositions       SectionKind = "Positions of Responsibility"
	KindCertifications  SectionKind = "Certifications"
	KindPublications    SectionKind = "Research/Publications"
	KindAchievements    SectionKind = "Achievements"
	KindHobbies         SectionKind = "Hobbies"
	KindLanguages       SectionKind = "Languages"
	KindTechnicalSkills SectionKind = "Technical Skills"
)

// Shape is the value shape a kind stores.
type Shape int

const (
	ShapeScalarText Shape = iota + 1
	ShapeStructuredSingleton
	ShapeRecordList
	ShapeStringList
	ShapeTaggedList
	ShapeCategorizedList
)

func (s Shape) String() string {
	switch s {
	case ShapeScalarText:
		return "scalar-text"
	case ShapeStructuredSingleton:
		return "structured-singleton"
	case ShapeRecordList:
		return "record-list"
	case ShapeStringList:
		return "string-list"
	case ShapeTaggedList:
		return "tagged-list"
	case ShapeCategorizedList:
		return "categorized-list"
	}
	return "unknown"
}

type kindInfo struct {
	shape Shape
	slug  string
}

// catalogue is ordered the way the section picker lists kinds.
var catalogue = []SectionKind{
	KindHeader,
	KindObjective,
	KindEducation,
	KindWorkExperience,
	KindProjects,
	KindTechnicalSkills,
	KindPositions,
	KindCertifications,
	KindPublications,
	KindAchievements,
	KindLanguages,
	KindHobbies,
}

var kinds = map[SectionKind]kindInfo{
	KindHeader:          {ShapeStructuredSingleton, "header"},
	KindObjective:       {ShapeScalarText, "objective"},
	KindEducation:       {ShapeRecordList, "education"},
	KindProjects:        {ShapeRecordList, "projects"},
	KindWorkExperience:  {ShapeRecordList, "work-experience"},
	KindPositions:       {ShapeRecordList, "positions-of-responsibility"},
	KindCertifications:  {ShapeRecordList, "certifications"},
	KindPublications:    {ShapeRecordList, "research-publications"},
	KindAchievements:    {ShapeStringList, "achievements"},
	KindHobbies:         {ShapeStringList, "hobbies"},
	KindLanguages:       {ShapeTaggedList, "languages"},
	KindTechnicalSkills: {ShapeCategorizedList, "technical-skills"},
}

// AllKinds returns the catalogue in picker order.
func AllKinds() []SectionKind {
	out := make([]SectionKind, len(catalogue))
	copy(out, catalogue)
	return out
}

// Valid reports whether k is part of the catalogue.
func (k SectionKind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Slug is the URL-safe form of the kind ("Work Experience" -> "work-experience").
func (k SectionKind) Slug() string {
	if info, ok := kinds[k]; ok {
		return info.slug
	}
	return strings.ToLower(strings.ReplaceAll(string(k), " ", "-"))
}

// KindFromSlug resolves a slug back to its kind.
func KindFromSlug(slug string) (SectionKind, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for k, info := range kinds {
		if info.slug == slug {
			return k, true
		}
	}
	return "", false
}

// ShapeOf returns the value shape for kind, or 0 for unknown kinds.
func ShapeOf(kind SectionKind) Shape {
	return kinds[kind].shape
}
