package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/feedpulse/pulse/pkg/domain"
)

// ItemRepository handles item-related database operations
type ItemRepository struct {
	db *sqlx.DB
}

// itemSQL represents an item for SQL operations
type itemSQL struct {
	ID          int64      `db:"id"`
	TenantID    int64      `db:"tenant_id"`
	SourceID    *int64     `db:"source_id"`
	Title       string     `db:"title"`
	Source      string     `db:"source"`
	SourceURL   string     `db:"source_url"`
	Link        string     `db:"link"`
	PublishDate *time.Time `db:"publish_date"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
}

// NewItemRepository creates a new item repository
func NewItemRepository(database *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: database}
}

// LinkExists checks whether the tenant already has an item with the given link
func (r *ItemRepository) LinkExists(ctx context.Context, tenantID int64, link string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM items WHERE tenant_id = ? AND link = ?", tenantID, link)
	if err != nil {
		return false, fmt.Errorf("check link existence: %w", err)
	}
	return count > 0, nil
}

// ReconcileItems inserts staged items and purges expired ones in a single
// transaction. Inserts use ON CONFLICT DO NOTHING on (tenant_id, link) so
// races with concurrent fetch cycles are harmless. If the transactional batch
// fails it degrades to row-by-row inserts, skipping constraint violations,
// and runs the retention cleanup separately. Cleanup always runs, even when
// there is nothing to insert.
func (r *ItemRepository) ReconcileItems(ctx context.Context, tenantID int64, items []domain.Item, cutoff time.Time) (inserted, purged int, err error) {
	inserted, purged, err = r.reconcileTx(ctx, tenantID, items, cutoff)
	if err == nil {
		return inserted, purged, nil
	}

	lgr.Printf("[ERROR] batch insert failed for tenant %d, falling back to per-row inserts: %v", tenantID, err)

	inserted = 0
	for i := range items {
		if insErr := r.insertOne(ctx, &items[i]); insErr != nil {
			lgr.Printf("[WARN] failed to insert item for tenant %d link %q: %v", tenantID, items[i].Link, insErr)
			continue
		}
		if items[i].ID != 0 {
			inserted++
		}
	}

	purged, err = r.purgeExpired(ctx, r.db, tenantID, cutoff)
	if err != nil {
		return inserted, 0, fmt.Errorf("retention cleanup: %w", err)
	}
	return inserted, purged, nil
}

// reconcileTx is the happy-path transactional variant of ReconcileItems
func (r *ItemRepository) reconcileTx(ctx context.Context, tenantID int64, items []domain.Item, cutoff time.Time) (inserted, purged int, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				lgr.Printf("[WARN] rollback failed: %v", rbErr)
			}
		}
	}()

	for i := range items {
		res, execErr := tx.NamedExecContext(ctx, insertItemQuery, toItemSQL(&items[i]))
		if execErr != nil {
			err = fmt.Errorf("insert item link %q: %w", items[i].Link, execErr)
			return 0, 0, err
		}
		rows, raErr := res.RowsAffected()
		if raErr != nil {
			err = fmt.Errorf("get rows affected: %w", raErr)
			return 0, 0, err
		}
		if rows > 0 {
			inserted++
			if id, idErr := res.LastInsertId(); idErr == nil {
				items[i].ID = id
			}
		}
	}

	purged, err = r.purgeExpired(ctx, tx, tenantID, cutoff)
	if err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit transaction: %w", err)
	}
	return inserted, purged, nil
}

const insertItemQuery = `
	INSERT INTO items (tenant_id, source_id, title, source, source_url, link, publish_date, description)
	VALUES (:tenant_id, :source_id, :title, :source, :source_url, :link, :publish_date, :description)
	ON CONFLICT(tenant_id, link) DO NOTHING
`

// insertOne inserts a single item outside any transaction, used by the
// per-row fallback path. Duplicate links are silently skipped.
func (r *ItemRepository) insertOne(ctx context.Context, item *domain.Item) error {
	res, err := r.db.NamedExecContext(ctx, insertItemQuery, toItemSQL(item))
	if err != nil {
		if isConstraintError(err) {
			return nil
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows > 0 {
		if id, idErr := res.LastInsertId(); idErr == nil {
			item.ID = id
		}
	}
	return nil
}

// purgeExpired deletes the tenant's items older than the retention cutoff.
// Items without a publish date are never purged.
func (r *ItemRepository) purgeExpired(ctx context.Context, e sqlx.ExecerContext, tenantID int64, cutoff time.Time) (int, error) {
	res, err := e.ExecContext(ctx,
		"DELETE FROM items WHERE tenant_id = ? AND publish_date IS NOT NULL AND publish_date < ?",
		tenantID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge expired items: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return int(rows), nil
}

// GetItems retrieves a tenant's items, newest publish date first
func (r *ItemRepository) GetItems(ctx context.Context, tenantID int64, limit, offset int) ([]domain.Item, error) {
	var sqlItems []itemSQL
	query := `
		SELECT * FROM items WHERE tenant_id = ?
		ORDER BY publish_date IS NULL, publish_date DESC, id DESC
		LIMIT ? OFFSET ?
	`
	if err := r.db.SelectContext(ctx, &sqlItems, query, tenantID, limit, offset); err != nil {
		return nil, fmt.Errorf("get items for tenant %d: %w", tenantID, err)
	}

	items := make([]domain.Item, len(sqlItems))
	for i, it := range sqlItems {
		items[i] = *toDomainItem(&it)
	}
	return items, nil
}

// CountItems returns the total number of stored items across all tenants
func (r *ItemRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// CountRecentItems returns the number of items created after the given time
func (r *ItemRepository) CountRecentItems(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items WHERE created_at >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("count recent items: %w", err)
	}
	return count, nil
}

// toItemSQL converts domain model to SQL representation
func toItemSQL(item *domain.Item) *itemSQL {
	return &itemSQL{
		TenantID:    item.TenantID,
		SourceID:    item.SourceID,
		Title:       item.Title,
		Source:      item.Source,
		SourceURL:   item.SourceURL,
		Link:        item.Link,
		PublishDate: item.PublishDate,
		Description: item.Description,
	}
}

// toDomainItem converts SQL representation to domain model
func toDomainItem(it *itemSQL) *domain.Item {
	return &domain.Item{
		ID:          it.ID,
		TenantID:    it.TenantID,
		SourceID:    it.SourceID,
		Title:       it.Title,
		Source:      it.Source,
		SourceURL:   it.SourceURL,
		Link:        it.Link,
		PublishDate: it.PublishDate,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
	}
}
