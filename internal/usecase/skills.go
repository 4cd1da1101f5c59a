package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai/formatters"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// SkillExtractor returns categorized skills found in free text as raw JSON.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, text string) (json.RawMessage, error)
}

const maxExtractText = 20000

// Skills merges extracted skills into a document's Technical Skills section.
type Skills struct {
	docs      *Documents
	extractor SkillExtractor
	log       *slog.Logger
}

func NewSkills(docs *Documents, extractor SkillExtractor, log *slog.Logger) *Skills {
	if log == nil {
		log = slog.Default()
	}
	return &Skills{docs: docs, extractor: extractor, log: log}
}

// Extract runs the extractor on text and persists the merged value. When the
// extractor answers with something that is not a category list, the section
// is left as it was.
func (s *Skills) Extract(ctx context.Context, owner, id uuid.UUID, text string) (*domain.Document, error) {
	err := validation.Validate(strings.TrimSpace(text),
		validation.Required.Error("text is required"),
		validation.RuneLength(1, maxExtractText),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: "text: " + err.Error()}
	}
	d, err := s.docs.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if !d.Selected(model.KindTechnicalSkills) {
		return nil, domain.Invalid("section %q is not selected", model.KindTechnicalSkills)
	}
	raw, err := s.extractor.ExtractSkills(ctx, text)
	if errors.Is(err, formatters.ErrNoJSON) {
		s.log.Warn("extractor answered without json", "document_id", id, "owner_id", owner)
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("extract skills: %w", err)
	}
	existing, _ := d.Section(model.KindTechnicalSkills).(model.TechnicalSkills)
	merged, ok := model.MergeExtracted(existing, raw)
	if !ok {
		s.log.Warn("extractor output ignored", "document_id", id, "owner_id", owner)
		return d, nil
	}
	return s.docs.SetSection(ctx, owner, id, model.KindTechnicalSkills, merged)
}
