package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedpulse/pulse/pkg/domain"
)

// TenantRepository handles tenant-related database operations
type TenantRepository struct {
	db *sqlx.DB
}

// tenantSQL represents a tenant for SQL operations
type tenantSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(database *sqlx.DB) *TenantRepository {
	return &TenantRepository{db: database}
}

// CreateTenant inserts a new tenant
func (r *TenantRepository) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	result, err := r.db.NamedExecContext(ctx,
		"INSERT INTO tenants (name) VALUES (:name)", &tenantSQL{Name: tenant.Name})
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	tenant.ID = id
	return nil
}

// GetTenant retrieves a tenant by ID
func (r *TenantRepository) GetTenant(ctx context.Context, id int64) (*domain.Tenant, error) {
	var t tenantSQL
	err := r.db.GetContext(ctx, &t, "SELECT * FROM tenants WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &domain.Tenant{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}, nil
}

// ListTenantIDsWithSources returns IDs of tenants that have at least one source
func (r *TenantRepository) ListTenantIDsWithSources(ctx context.Context) ([]int64, error) {
	var ids []int64
	query := `
		SELECT DISTINCT t.id FROM tenants t
		JOIN sources s ON s.tenant_id = t.id
		ORDER BY t.id
	`
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, fmt.Errorf("list tenants with sources: %w", err)
	}
	return ids, nil
}

// CountTenants returns the total number of tenants
func (r *TenantRepository) CountTenants(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tenants"); err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return count, nil
}

// CountTenantsWithSources returns the number of tenants that have sources
func (r *TenantRepository) CountTenantsWithSources(ctx context.Context) (int, error) {
	var count int
	query := "SELECT COUNT(DISTINCT tenant_id) FROM sources"
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count tenants with sources: %w", err)
	}
	return count, nil
}
