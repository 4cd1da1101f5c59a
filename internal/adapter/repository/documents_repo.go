package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

// DocumentsRepo stores documents in Postgres. Selection and values are kept
// as JSONB; values for unselected kinds are stored untouched.
type DocumentsRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentsRepo(pool *pgxpool.Pool) *DocumentsRepo {
	return &DocumentsRepo{pool: pool}
}

func (r *DocumentsRepo) Create(ctx context.Context, d *domain.Document) error {
	selB, valB, err := encode(d)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO documents (id, owner_id, selected_sections, section_values, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.OwnerID, selB, valB, d.CreatedAt, d.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.Invalid("document %s already exists", d.ID)
	}
	return err
}

func (r *DocumentsRepo) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Document, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, owner_id, selected_sections, section_values, created_at, updated_at
		FROM documents WHERE id = $1 AND owner_id = $2`, id, owner)
	d, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.DocumentNotFound()
	}
	return d, err
}

func (r *DocumentsRepo) List(ctx context.Context, owner uuid.UUID) ([]*domain.Document, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, owner_id, selected_sections, section_values, created_at, updated_at
		FROM documents WHERE owner_id = $1 ORDER BY updated_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Document{}
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DocumentsRepo) Update(ctx context.Context, d *domain.Document) error {
	selB, valB, err := encode(d)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE documents SET selected_sections = $3, section_values = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2`,
		d.ID, d.OwnerID, selB, valB, d.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.DocumentNotFound()
	}
	return nil
}

func (r *DocumentsRepo) Delete(ctx context.Context, owner, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND owner_id = $2`, id, owner)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.DocumentNotFound()
	}
	return nil
}

func encode(d *domain.Document) (sel, vals []byte, err error) {
	if sel, err = json.Marshal(d.SelectedSections); err != nil {
		return nil, nil, fmt.Errorf("encode selection: %w", err)
	}
	if vals, err = json.Marshal(d.SectionValues); err != nil {
		return nil, nil, fmt.Errorf("encode section values: %w", err)
	}
	return sel, vals, nil
}

func scan(row pgx.Row) (*domain.Document, error) {
	var (
		d          domain.Document
		selB, valB []byte
		created    time.Time
		updated    time.Time
	)
	if err := row.Scan(&d.ID, &d.OwnerID, &selB, &valB, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(selB, &d.SelectedSections); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}
	d.SectionValues = model.SectionValues{}
	if err := json.Unmarshal(valB, &d.SectionValues); err != nil {
		return nil, fmt.Errorf("decode section values: %w", err)
	}
	d.CreatedAt, d.UpdatedAt = created.UTC(), updated.UTC()
	return &d, nil
}
