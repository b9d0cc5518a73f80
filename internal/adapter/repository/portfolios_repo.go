package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
)

// ErrUnavailable is returned by read operations when the repo was built
// without a database pool. Writes in that mode are silent no-ops so the
// editor keeps working without persistence.
var ErrUnavailable = errors.New("portfolio store unavailable")

// ErrNotFound is returned when no portfolio exists for an id.
var ErrNotFound = errors.New("portfolio not found")

type PortfoliosRepo struct {
	pool *pgxpool.Pool
}

func NewPortfoliosRepo(pool *pgxpool.Pool) *PortfoliosRepo {
	return &PortfoliosRepo{pool: pool}
}

// Create inserts a portfolio seeded with starter content for the chosen
// template and returns the stored record.
func (r *PortfoliosRepo) Create(ctx context.Context, userID uuid.UUID, t model.Template) (*domain.Portfolio, error) {
	p := &domain.Portfolio{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   model.NewContentModel(t),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if r.pool == nil {
		return p, nil
	}

	content, err := json.Marshal(p.Content)
	if err != nil {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO portfolios (id, user_id, template, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.UserID, string(p.Content.Template), content, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID loads a portfolio. The content is normalized on the way out so
// callers always see non-nil slices and item ids.
func (r *PortfoliosRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Portfolio, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	var (
		p         domain.Portfolio
		content   []byte
		projectID *string
		domainStr *string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, content, vercel_project_id, vercel_domain, created_at, updated_at
		FROM portfolios WHERE id = $1`, id).
		Scan(&p.ID, &p.UserID, &content, &projectID, &domainStr, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &p.Content); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	p.Content = model.Normalize(p.Content)
	if projectID != nil {
		p.Content.VercelProjectID = *projectID
	}
	if domainStr != nil {
		p.Content.VercelDomain = *domainStr
	}
	return &p, nil
}

// UpdateContent replaces the stored content model (whole-model replace,
// last write wins across sessions).
func (r *PortfoliosRepo) UpdateContent(ctx context.Context, id uuid.UUID, m model.ContentModel) error {
	if r.pool == nil {
		return nil
	}

	content, err := json.Marshal(m)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `UPDATE portfolios SET content = $2, template = $3, updated_at = $4 WHERE id = $1`,
		id, content, string(m.Template), time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDeployment records the deployment metadata handed back by the
// hosting provider. Empty strings clear it.
func (r *PortfoliosRepo) UpdateDeployment(ctx context.Context, id uuid.UUID, projectID, domainStr string) error {
	if r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `UPDATE portfolios SET vercel_project_id = $2, vercel_domain = $3, updated_at = $4 WHERE id = $1`,
		id, projectID, domainStr, time.Now())
	return err
}

// Delete removes a portfolio.
func (r *PortfoliosRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return nil
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns a user's portfolios, newest first.
func (r *PortfoliosRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `SELECT id, user_id, content, vercel_project_id, vercel_domain, created_at, updated_at
		FROM portfolios WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Portfolio
	for rows.Next() {
		var (
			p         domain.Portfolio
			content   []byte
			projectID *string
			domainStr *string
		)
		if err := rows.Scan(&p.ID, &p.UserID, &content, &projectID, &domainStr, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(content, &p.Content); err != nil {
			return nil, fmt.Errorf("decode content for %s: %w", p.ID, err)
		}
		p.Content = model.Normalize(p.Content)
		if projectID != nil {
			p.Content.VercelProjectID = *projectID
		}
		if domainStr != nil {
			p.Content.VercelDomain = *domainStr
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
