package render

import (
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Render formats one section. ok is false when the section is suppressed,
// in which case no heading and no body may be produced by any renderer.
func Render(kind model.SectionKind, value model.SectionValue) (b Block, ok bool) {
	if suppressed(kind, value) || value.Kind() != kind {
		return Block{}, false
	}
	fn, known := layouts[kind]
	if !known {
		return Block{}, false
	}
	title := string(kind)
	if h, isHeader := value.(model.Header); isHeader {
		title = clean(h.Name)
	}
	return Block{Kind: kind, Title: title, Lines: fn(value)}, true
}

// Arrange renders a document in display order: Header first when present,
// then the remaining selected kinds in selection order. Suppressed sections
// and values for unselected kinds are skipped.
func Arrange(doc *domain.Document) []Block {
	order := make([]model.SectionKind, 0, len(doc.SelectedSections))
	if doc.Selected(model.KindHeader) {
		order = append(order, model.KindHeader)
	}
	for _, k := range doc.SelectedSections {
		if k != model.KindHeader {
			order = append(order, k)
		}
	}
	blocks := make([]Block, 0, len(order))
	for _, k := range order {
		if b, ok := Render(k, doc.Section(k)); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// suppressed extends model.IsEmpty to text that is blank once markup is
// stripped. List kinds keep their element-count rule.
func suppressed(kind model.SectionKind, value model.SectionValue) bool {
	if model.IsEmpty(kind, value) {
		return true
	}
	switch v := value.(type) {
	case model.Objective:
		return clean(string(v)) == ""
	case model.Header:
		for _, f := range []string{v.Name, v.Email, v.Phone, v.Location, v.LinkedIn, v.GitHub, v.Portfolio, v.LeetCode, v.Codeforces, v.CodeChef} {
			if clean(f) != "" {
				return false
			}
		}
		return true
	}
	return false
}

type layoutFunc func(model.SectionValue) []Line

var layouts = map[model.SectionKind]layoutFunc{
	model.KindHeader:          headerLines,
	model.KindObjective:       objectiveLines,
	model.KindEducation:       educationLines,
	model.KindProjects:        projectLines,
	model.KindWorkExperience:  workLines,
	model.KindPositions:       positionLines,
	model.KindCertifications:  certificationLines,
	model.KindPublications:    publicationLines,
	model.KindAchievements:    achievementLines,
	model.KindHobbies:         hobbyLines,
	model.KindLanguages:       languageLines,
	model.KindTechnicalSkills: skillLines,
}

var headerLinks = []struct {
	label string
	get   func(model.Header) string
}{
	{"LinkedIn", func(h model.Header) string { return h.LinkedIn }},
	{"GitHub", func(h model.Header) string { return h.GitHub }},
	{"Portfolio", func(h model.Header) string { return h.Portfolio }},
	{"LeetCode", func(h model.Header) string { return h.LeetCode }},
	{"Codeforces", func(h model.Header) string { return h.Codeforces }},
	{"CodeChef", func(h model.Header) string { return h.CodeChef }},
}

func headerLines(v model.SectionValue) []Line {
	h := v.(model.Header)
	var lines []Line
	if s := clean(h.Email); s != "" {
		lines = append(lines, linkField("Email", s, safeHref("mailto:"+s)))
	}
	if s := clean(h.Phone); s != "" {
		lines = append(lines, field("Phone", s))
	}
	if s := clean(h.Location); s != "" {
		lines = append(lines, field("Location", s))
	}
	for _, l := range headerLinks {
		raw := l.get(h)
		if clean(raw) == "" {
			continue
		}
		lines = append(lines, linkField(l.label, displayURL(raw), safeHref(raw)))
	}
	return lines
}

func objectiveLines(v model.SectionValue) []Line {
	return []Line{paragraph(clean(string(v.(model.Objective))))}
}

func educationLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.Education) {
		lines = append(lines, record(clean(r.Degree), aside(r.Year)...))
		if s := clean(r.Institution); s != "" {
			lines = append(lines, paragraph(s))
		}
		if s := clean(r.GPA); s != "" {
			lines = append(lines, field("GPA", s))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

func projectLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.Projects) {
		var links []Span
		if href := safeHref(r.LiveLink); href != "" {
			links = append(links, Span{Text: "Live Demo", Href: href})
		}
		if href := safeHref(r.GitHubLink); href != "" {
			links = append(links, Span{Text: "Source", Href: href})
		}
		lines = append(lines, record(clean(r.Title), links...))
		if s := joinClean(r.Technologies, ", "); s != "" {
			lines = append(lines, field("Technologies", s))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

func workLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.WorkExperience) {
		lines = append(lines, record(clean(r.Position), aside(r.Duration)...))
		if s := joinClean([]string{r.Company, r.Location}, ", "); s != "" {
			lines = append(lines, paragraph(s))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

func positionLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.Positions) {
		lines = append(lines, record(clean(r.Title), aside(r.Duration)...))
		if s := clean(r.Organization); s != "" {
			lines = append(lines, paragraph(s))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

func certificationLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.Certifications) {
		lines = append(lines, record(clean(r.Name), aside(r.Date)...))
		if s := clean(r.Issuer); s != "" {
			lines = append(lines, paragraph(s))
		}
		if href := safeHref(r.Link); href != "" {
			lines = append(lines, linkField("Credential", domainLabel(r.Link, "link"), href))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

func publicationLines(v model.SectionValue) []Line {
	var lines []Line
	for _, r := range v.(model.Publications) {
		lines = append(lines, record(clean(r.Title), aside(r.Date)...))
		if s := clean(r.Publisher); s != "" {
			lines = append(lines, paragraph(s))
		}
		if href := safeHref(r.Link); href != "" {
			lines = append(lines, linkField("Link", domainLabel(r.Link, "link"), href))
		}
		lines = appendBullets(lines, r.Description)
	}
	return lines
}

// Flat lists pass every entry through, blanks included.
func achievementLines(v model.SectionValue) []Line {
	items := make([]string, 0, len(v.(model.Achievements)))
	for _, s := range v.(model.Achievements) {
		items = append(items, clean(s))
	}
	return []Line{{Kind: BulletsLine, Items: items}}
}

func hobbyLines(v model.SectionValue) []Line {
	items := make([]string, 0, len(v.(model.Hobbies)))
	for _, s := range v.(model.Hobbies) {
		items = append(items, clean(s))
	}
	return []Line{paragraph(strings.Join(items, ", "))}
}

func languageLines(v model.SectionValue) []Line {
	var lines []Line
	for _, e := range v.(model.Languages) {
		lines = append(lines, field(clean(e.Language), clean(e.Proficiency)))
	}
	return lines
}

func skillLines(v model.SectionValue) []Line {
	var lines []Line
	for _, c := range v.(model.TechnicalSkills).Normalize() {
		if len(c.Skills) == 0 {
			continue
		}
		lines = append(lines, field(clean(c.Category), joinClean(c.Skills, ", ")))
	}
	return lines
}

func aside(text string) []Span {
	if s := clean(text); s != "" {
		return []Span{{Text: s}}
	}
	return nil
}

func appendBullets(lines []Line, items []string) []Line {
	if l, ok := bullets(items); ok {
		return append(lines, l)
	}
	return lines
}
