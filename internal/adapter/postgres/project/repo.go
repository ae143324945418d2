package project

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/docugallery/gallery-backend/internal/adapter/postgres"
	"github.com/docugallery/gallery-backend/internal/domain"
)

// Repo provides access to the projects table.
type Repo struct {
	db postgres.Querier
}

func NewRepo(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, title, date, location, category, provider, resource_id,
	thumbnail_url, thumbnail_mode, visibility, legacy_is_private, status,
	created_at, updated_at`

const createProjectQuery = `
INSERT INTO projects (id, title, date, location, category, provider, resource_id,
	thumbnail_url, thumbnail_mode, visibility, legacy_is_private, status,
	created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + projectColumns

func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	row := db.QueryRow(ctx, createProjectQuery,
		p.ID,
		p.Title,
		p.Date,
		p.Location,
		p.Category,
		p.Provider,
		p.ResourceID,
		p.ThumbnailURL,
		p.ThumbnailMode,
		visibilityParam(p.Visibility),
		p.LegacyIsPrivate,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID.String())
	}
	return created, nil
}

const getProjectByIDQuery = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	row := db.QueryRow(ctx, getProjectByIDQuery, id)

	p, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", id.String())
	}
	return p, nil
}

const updateProjectQuery = `
UPDATE projects
SET title = $2,
	date = $3,
	location = $4,
	category = $5,
	provider = $6,
	resource_id = $7,
	thumbnail_url = $8,
	thumbnail_mode = $9,
	visibility = $10,
	legacy_is_private = $11,
	status = $12,
	updated_at = $13
WHERE id = $1
RETURNING ` + projectColumns

func (r *Repo) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	p.UpdatedAt = time.Now().UTC()

	row := db.QueryRow(ctx, updateProjectQuery,
		p.ID,
		p.Title,
		p.Date,
		p.Location,
		p.Category,
		p.Provider,
		p.ResourceID,
		p.ThumbnailURL,
		p.ThumbnailMode,
		visibilityParam(p.Visibility),
		p.LegacyIsPrivate,
		p.Status,
		p.UpdatedAt,
	)

	updated, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID.String())
	}
	return updated, nil
}

const deleteProjectQuery = `
DELETE FROM projects
WHERE id = $1`

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	db := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return postgres.MapError(err, "project", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const setVisibilityQuery = `
UPDATE projects
SET visibility = $2,
	legacy_is_private = $3,
	updated_at = $4
WHERE id = $1`

// SetVisibility persists a visibility tier together with its legacy flag.
// Used both for explicit tier changes and for backfilling migrated legacy rows.
func (r *Repo) SetVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility, legacyIsPrivate bool) error {
	db := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := db.Exec(ctx, setVisibilityQuery, id, visibilityParam(v), legacyIsPrivate, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "project", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const updateThumbnailQuery = `
UPDATE projects
SET thumbnail_url = $2,
	updated_at = $3
WHERE id = $1`

// UpdateThumbnail rewrites only the stored thumbnail URL. Used by the
// bulk repair sweep so a sweep never touches other columns.
func (r *Repo) UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error {
	db := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := db.Exec(ctx, updateThumbnailQuery, id, url, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "project", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := buildListQuery(fromDomain(f))
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project", "")
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project", "")
	}

	return projects, nil
}

// buildListQuery assembles the filtered SELECT. Kept separate from List so
// the SQL shape can be tested without a database.
func buildListQuery(f Filter) (string, []any, error) {
	f.normalize()

	b := sq.Select(
		"id", "title", "date", "location", "category", "provider", "resource_id",
		"thumbnail_url", "thumbnail_mode", "visibility", "legacy_is_private", "status",
		"created_at", "updated_at",
	).
		From("projects").
		PlaceholderFormat(sq.Dollar)

	if f.Tiers != nil {
		tiers := make([]string, 0, len(f.Tiers))
		for _, t := range f.Tiers {
			tiers = append(tiers, t.String())
		}
		// NULL tier rows are legacy records that have not been migrated yet.
		// They can only ever migrate to public or private, so every tier
		// restriction admits them.
		b = b.Where(sq.Or{
			sq.Eq{"visibility": nil},
			sq.Eq{"visibility": tiers},
		})
	}

	if f.Category != nil && *f.Category != "" {
		b = b.Where(sq.Eq{"category": *f.Category})
	}

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"location": pattern},
		})
	}

	b = b.OrderBy(f.SortBy + " " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	return b.ToSql()
}

// scanProject reads one projects row. Source may be a pgx.Row or pgx.Rows.
func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p          domain.Project
		visibility *string
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Date,
		&p.Location,
		&p.Category,
		&p.Provider,
		&p.ResourceID,
		&p.ThumbnailURL,
		&p.ThumbnailMode,
		&visibility,
		&p.LegacyIsPrivate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if visibility != nil {
		p.Visibility = domain.Visibility(*visibility)
	}

	return &p, nil
}

// visibilityParam maps the unset tier to NULL so unmigrated rows are
// distinguishable from explicitly public ones.
func visibilityParam(v domain.Visibility) *string {
	if !v.IsSet() {
		return nil
	}
	s := v.String()
	return &s
}
