package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/feedpulse/pulse/pkg/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID                  int64      `db:"id"`
	TenantID            int64      `db:"tenant_id"`
	URL                 string     `db:"url"`
	ConsecutiveFailures int        `db:"consecutive_failures"`
	LastFailureAt       *time.Time `db:"last_failure_at"`
	DisabledAt          *time.Time `db:"disabled_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new source for a tenant
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	sqlSrc := &sourceSQL{
		TenantID: src.TenantID,
		URL:      src.URL,
	}

	query := `
		INSERT INTO sources (tenant_id, url)
		VALUES (:tenant_id, :url)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlSrc)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	src.ID = id
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var sqlSrc sourceSQL
	err := r.db.GetContext(ctx, &sqlSrc, "SELECT * FROM sources WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return r.toDomainSource(&sqlSrc), nil
}

// GetSources retrieves all sources belonging to a tenant, newest first
func (r *SourceRepository) GetSources(ctx context.Context, tenantID int64) ([]domain.Source, error) {
	var sqlSources []sourceSQL
	query := "SELECT * FROM sources WHERE tenant_id = ? ORDER BY created_at DESC, id DESC"
	if err := r.db.SelectContext(ctx, &sqlSources, query, tenantID); err != nil {
		return nil, fmt.Errorf("get sources for tenant %d: %w", tenantID, err)
	}

	sources := make([]domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = *r.toDomainSource(&s)
	}
	return sources, nil
}

// UpdateSourceHealth persists the health fields after a recorded success,
// failure or re-enable. Retried with backoff on transient sqlite lock errors.
func (r *SourceRepository) UpdateSourceHealth(ctx context.Context, src *domain.Source) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE sources
			SET consecutive_failures = ?,
			    last_failure_at = ?,
			    disabled_at = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, src.ConsecutiveFailures, src.LastFailureAt, src.DisabledAt, src.ID)
		if err != nil {
			return fmt.Errorf("update source health: %w", err)
		}
		return nil
	})
}

// UpdateSourceURL changes the source URL keeping health state intact
func (r *SourceRepository) UpdateSourceURL(ctx context.Context, id int64, url string) error {
	query := `UPDATE sources SET url = ?, updated_at = datetime('now') WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("update source url: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSource removes a source, cascade-deleting its items
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// toDomainSource converts SQL representation to domain model
func (r *SourceRepository) toDomainSource(s *sourceSQL) *domain.Source {
	return &domain.Source{
		ID:                  s.ID,
		TenantID:            s.TenantID,
		URL:                 s.URL,
		ConsecutiveFailures: s.ConsecutiveFailures,
		LastFailureAt:       s.LastFailureAt,
		DisabledAt:          s.DisabledAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
