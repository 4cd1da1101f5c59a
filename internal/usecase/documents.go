package usecase

import (
	"context"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// DocumentsRepo persists documents. Every lookup is scoped by owner; a
// foreign document is reported as not found.
type DocumentsRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, owner uuid.UUID) ([]*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

// Documents implements the document operations. Edits are read-modify-write
// with last-write-wins; there is no version check.
type Documents struct {
	repo DocumentsRepo
	log  *slog.Logger
	now  func() time.Time
}

func NewDocuments(repo DocumentsRepo, log *slog.Logger) *Documents {
	if log == nil {
		log = slog.Default()
	}
	return &Documents{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Create validates the selection and stores a new document for owner.
func (s *Documents) Create(ctx context.Context, owner uuid.UUID, in domain.DocumentInput) (*domain.Document, error) {
	now := s.now()
	d := &domain.Document{ID: uuid.New(), OwnerID: owner, CreatedAt: now, UpdatedAt: now}
	if err := d.Apply(in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.log.Info("document created", "document_id", d.ID, "owner_id", owner, "sections", len(d.SelectedSections))
	return d, nil
}

func (s *Documents) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Document, error) {
	return s.repo.Get(ctx, owner, id)
}

func (s *Documents) List(ctx context.Context, owner uuid.UUID) ([]*domain.Document, error) {
	return s.repo.List(ctx, owner)
}

// Replace overwrites selection and values of an owned document.
func (s *Documents) Replace(ctx context.Context, owner, id uuid.UUID, in domain.DocumentInput) (*domain.Document, error) {
	d, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := d.Apply(in); err != nil {
		return nil, err
	}
	return d, s.save(ctx, d)
}

// SetSection replaces the value of one selected kind.
func (s *Documents) SetSection(ctx context.Context, owner, id uuid.UUID, kind model.SectionKind, value model.SectionValue) (*domain.Document, error) {
	d, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := d.SetSectionValue(kind, value); err != nil {
		return nil, err
	}
	return d, s.save(ctx, d)
}

func (s *Documents) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}
	s.log.Info("document deleted", "document_id", id, "owner_id", owner)
	return nil
}

func (s *Documents) save(ctx context.Context, d *domain.Document) error {
	d.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}
	s.log.Debug("document updated", "document_id", d.ID, "owner_id", d.OwnerID)
	return nil
}
