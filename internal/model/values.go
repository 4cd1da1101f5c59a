package model

import (
	"encoding/json"
	"fmt"
)

// SectionValue is the tagged union over all section shapes. Each concrete
// type reports the kind it belongs to.
type SectionValue interface {
	Kind() SectionKind
}

// Header holds contact details and profile links.
type Header struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Portfolio  string `json:"portfolio,omitempty"`
	LeetCode   string `json:"leetcode,omitempty"`
	Codeforces string `json:"codeforces,omitempty"`
	CodeChef   string `json:"codechef,omitempty"`
}

func (Header) Kind() SectionKind { return KindHeader }

// Objective is a free-text career objective.
type Objective string

func (Objective) Kind() SectionKind { return KindObjective }

type EducationRecord struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Year        string   `json:"year"`
	GPA         string   `json:"gpa,omitempty"`
	Description []string `json:"description,omitempty"`
}

type Education []EducationRecord

func (Education) Kind() SectionKind { return KindEducation }

type ProjectRecord struct {
	Title        string   `json:"title"`
	Technologies []string `json:"technologies,omitempty"`
	LiveLink     string   `json:"liveLink,omitempty"`
	GitHubLink   string   `json:"githubLink,omitempty"`
	Description  []string `json:"description,omitempty"`
}

type Projects []ProjectRecord

func (Projects) Kind() SectionKind { return KindProjects }

type WorkRecord struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Description []string `json:"description,omitempty"`
}

type WorkExperience []WorkRecord

func (WorkExperience) Kind() SectionKind { return KindWorkExperience }

type PositionRecord struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Duration     string   `json:"duration,omitempty"`
	Description  []string `json:"description,omitempty"`
}

type Positions []PositionRecord

func (Positions) Kind() SectionKind { return KindPositions }

type CertificationRecord struct {
	Name        string   `json:"name"`
	Issuer      string   `json:"issuer,omitempty"`
	Date        string   `json:"date,omitempty"`
	Link        string   `json:"link,omitempty"`
	Description []string `json:"description,omitempty"`
}

type Certifications []CertificationRecord

func (Certifications) Kind() SectionKind { return KindCertifications }

type PublicationRecord struct {
	Title       string   `json:"title"`
	Publisher   string   `json:"publisher,omitempty"`
	Date        string   `json:"date,omitempty"`
	Link        string   `json:"link,omitempty"`
	Description []string `json:"description,omitempty"`
}

type Publications []PublicationRecord

func (Publications) Kind() SectionKind { return KindPublications }

type Achievements []string

func (Achievements) Kind() SectionKind { return KindAchievements }

type Hobbies []string

func (Hobbies) Kind() SectionKind { return KindHobbies }

type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type Languages []LanguageEntry

func (Languages) Kind() SectionKind { return KindLanguages }

// SkillCategory groups skills under a heading such as "Databases".
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// LegacyCategory is the synthetic heading a flat skills list is migrated into.
const LegacyCategory = "Other Technical Skills"

// TechnicalSkills is either the legacy flat list or the categorized list.
// Exactly one of the two fields is meaningful, selected by Categorized.
type TechnicalSkills struct {
	Categorized bool
	Flat        []string
	Categories  []SkillCategory
}

func (TechnicalSkills) Kind() SectionKind { return KindTechnicalSkills }

// FlatSkills builds a legacy-shaped value.
func FlatSkills(skills ...string) TechnicalSkills {
	return TechnicalSkills{Flat: skills}
}

// CategorizedSkills builds a categorized value.
func CategorizedSkills(cats ...SkillCategory) TechnicalSkills {
	return TechnicalSkills{Categorized: true, Categories: cats}
}

// Len is the number of top-level list elements in whichever shape is held.
func (t TechnicalSkills) Len() int {
	if t.Categorized {
		return len(t.Categories)
	}
	return len(t.Flat)
}

// Normalize returns the categorized form. A non-empty flat list is wrapped
// into a single LegacyCategory; an empty flat list yields no categories.
func (t TechnicalSkills) Normalize() []SkillCategory {
	if t.Categorized {
		out := make([]SkillCategory, len(t.Categories))
		for i, c := range t.Categories {
			out[i] = SkillCategory{Category: c.Category, Skills: append([]string(nil), c.Skills...)}
		}
		return out
	}
	if len(t.Flat) == 0 {
		return []SkillCategory{}
	}
	return []SkillCategory{{Category: LegacyCategory, Skills: append([]string(nil), t.Flat...)}}
}

func (t TechnicalSkills) MarshalJSON() ([]byte, error) {
	if t.Categorized {
		if t.Categories == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(t.Categories)
	}
	if t.Flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Flat)
}

func (t *TechnicalSkills) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("technical skills must be an array: %w", err)
	}
	if len(raw) == 0 {
		*t = TechnicalSkills{Flat: []string{}}
		return nil
	}
	var strs, objs int
	for _, r := range raw {
		switch firstByte(r) {
		case '"':
			strs++
		case '{':
			objs++
		default:
			return fmt.Errorf("technical skills entries must be strings or objects")
		}
	}
	if strs > 0 && objs > 0 {
		return fmt.Errorf("technical skills cannot mix flat and categorized entries")
	}
	if strs > 0 {
		var flat []string
		if err := json.Unmarshal(b, &flat); err != nil {
			return err
		}
		*t = TechnicalSkills{Flat: flat}
		return nil
	}
	var cats []SkillCategory
	if err := json.Unmarshal(b, &cats); err != nil {
		return err
	}
	*t = TechnicalSkills{Categorized: true, Categories: cats}
	return nil
}

func firstByte(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}
