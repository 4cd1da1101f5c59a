package model

import "strings"

// Blank reports whether s carries no visible text.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmpty reports whether a section value should be suppressed entirely.
//
// Lists are empty only when they have no elements: a list holding blank
// records is not empty and renders blank lines. Header is empty only when
// every subfield is blank. A nil value is always empty.
func IsEmpty(kind SectionKind, value SectionValue) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case Objective:
		return Blank(string(v))
	case Header:
		return v.empty()
	case Education:
		return len(v) == 0
	case Projects:
		return len(v) == 0
	case WorkExperience:
		return len(v) == 0
	case Positions:
		return len(v) == 0
	case Certifications:
		return len(v) == 0
	case Publications:
		return len(v) == 0
	case Achievements:
		return len(v) == 0
	case Hobbies:
		return len(v) == 0
	case Languages:
		return len(v) == 0
	case TechnicalSkills:
		if v.Len() == 0 {
			return true
		}
		if !v.Categorized {
			return false
		}
		for _, c := range v.Categories {
			if len(c.Skills) > 0 {
				return false
			}
		}
		return true
	}
	return true
}

func (h Header) empty() bool {
	for _, f := range h.fields() {
		if !Blank(f) {
			return false
		}
	}
	return true
}

func (h Header) fields() []string {
	return []string{h.Name, h.Email, h.Phone, h.Location, h.LinkedIn, h.GitHub, h.Portfolio, h.LeetCode, h.Codeforces, h.CodeChef}
}

// DefaultValue is the empty value a freshly selected kind starts with.
func DefaultValue(kind SectionKind) SectionValue {
	switch kind {
	case KindHeader:
		return Header{}
	case KindObjective:
		return Objective("")
	case KindEducation:
		return Education{}
	case KindProjects:
		return Projects{}
	case KindWorkExperience:
		return WorkExperience{}
	case KindPositions:
		return Positions{}
	case KindCertifications:
		return Certifications{}
	case KindPublications:
		return Publications{}
	case KindAchievements:
		return Achievements{}
	case KindHobbies:
		return Hobbies{}
	case KindLanguages:
		return Languages{}
	case KindTechnicalSkills:
		return TechnicalSkills{Flat: []string{}}
	}
	return nil
}
