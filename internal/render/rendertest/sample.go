// Package rendertest provides fixture documents for renderer tests.
package rendertest

import (
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Values holds one populated value for every section kind.
func Values() model.SectionValues {
	return model.SectionValues{
		model.KindHeader: model.Header{
			Name:      "Ada Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44 20 7946 0000",
			Location:  "London",
			LinkedIn:  "https://www.linkedin.com/in/ada",
			GitHub:    "github.com/ada",
			Portfolio: "https://ada.dev/",
		},
		model.KindObjective: model.Objective("Build <b>analytical</b> engines & the tools around them."),
		model.KindEducation: model.Education{
			{Degree: "BSc Mathematics", Institution: "University of London", Year: "1835", GPA: "3.9", Description: []string{"Thesis on Bernoulli numbers", ""}},
			{Degree: "", Institution: "Self-taught"},
		},
		model.KindProjects: model.Projects{
			{Title: "Analytical Engine Notes", Technologies: []string{"Punch cards", "Go"}, LiveLink: "https://engine.example.org", GitHubLink: "https://github.com/ada/engine", Description: []string{"First published algorithm", "Note G"}},
			{Title: "Loom Patterns", Description: []string{"   "}},
		},
		model.KindWorkExperience: model.WorkExperience{
			{Position: "Analyst", Company: "Babbage & Co", Location: "London", Duration: "1842 - 1843", Description: []string{"Translated Menabrea's memoir"}},
		},
		model.KindPositions: model.Positions{
			{Title: "Correspondent", Organization: "Royal Society", Duration: "1840"},
		},
		model.KindCertifications: model.Certifications{
			{Name: "Difference Engine Operator", Issuer: "Babbage Institute", Date: "1833", Link: "https://www.coursera.org/verify/ABC"},
		},
		model.KindPublications: model.Publications{
			{Title: "Sketch of the Analytical Engine", Publisher: "Taylor's Scientific Memoirs", Date: "1843", Link: "https://archive.org/details/sketch", Description: []string{"With notes A to G"}},
		},
		model.KindAchievements: model.Achievements{"First computer programmer", ""},
		model.KindHobbies:      model.Hobbies{"Poetry", "Horse riding"},
		model.KindLanguages:    model.Languages{{Language: "English", Proficiency: "Native"}, {Language: "French", Proficiency: "Fluent"}},
		model.KindTechnicalSkills: model.CategorizedSkills(
			model.SkillCategory{Category: "Mathematics", Skills: []string{"Calculus", "Number theory"}},
			model.SkillCategory{Category: "Empty", Skills: nil},
		),
	}
}

// Document returns the fixture values under the given selection.
func Document(kinds ...model.SectionKind) *domain.Document {
	values := Values()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Document{
		ID:               uuid.MustParse("5b6f0d0e-6a8f-4c1f-9d43-0d6a4c4f8a11"),
		OwnerID:          uuid.MustParse("9136d765-327d-4cf3-bf1c-98aa1449e52d"),
		SelectedSections: kinds,
		SectionValues:    values,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// FullSelections splits the twelve kinds across two valid selections so
// that together they cover the whole catalogue.
func FullSelections() [][]model.SectionKind {
	return [][]model.SectionKind{
		{model.KindObjective, model.KindHeader, model.KindEducation, model.KindProjects, model.KindWorkExperience, model.KindTechnicalSkills},
		{model.KindHeader, model.KindPositions, model.KindCertifications, model.KindPublications, model.KindAchievements, model.KindLanguages, model.KindHobbies},
	}
}
