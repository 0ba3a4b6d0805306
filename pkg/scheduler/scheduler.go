// Package scheduler orchestrates fetch cycles: it selects fetch-eligible
// sources per tenant, dispatches their URLs to the external fetch service,
// reconciles the returned items into storage and applies the source health
// policy on the outcome.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedpulse/pulse/pkg/domain"
	"github.com/feedpulse/pulse/pkg/fetcher"
)

//go:generate moq -out mocks/tenant_manager.go -pkg mocks -skip-ensure -fmt goimports . TenantManager
//go:generate moq -out mocks/source_manager.go -pkg mocks -skip-ensure -fmt goimports . SourceManager
//go:generate moq -out mocks/item_manager.go -pkg mocks -skip-ensure -fmt goimports . ItemManager
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// TenantManager provides tenant-level database operations
type TenantManager interface {
	ListTenantIDsWithSources(ctx context.Context) ([]int64, error)
	CountTenants(ctx context.Context) (int, error)
	CountTenantsWithSources(ctx context.Context) (int, error)
}

// SourceManager provides source-level database operations
type SourceManager interface {
	GetSources(ctx context.Context, tenantID int64) ([]domain.Source, error)
	UpdateSourceHealth(ctx context.Context, src *domain.Source) error
}

// ItemManager provides item-level database operations
type ItemManager interface {
	LinkExists(ctx context.Context, tenantID int64, link string) (bool, error)
	ReconcileItems(ctx context.Context, tenantID int64, items []domain.Item, cutoff time.Time) (inserted, purged int, err error)
	CountItems(ctx context.Context) (int, error)
	CountRecentItems(ctx context.Context, since time.Time) (int, error)
}

// Fetcher dispatches a batch of source URLs to the external fetch service
type Fetcher interface {
	Fetch(ctx context.Context, urls []string) ([]fetcher.ItemPayload, error)
}

// Scheduler runs fetch cycles periodically and on demand
type Scheduler struct {
	tenants TenantManager
	sources SourceManager
	items   ItemManager
	fetcher Fetcher

	updateInterval time.Duration
	maxWorkers     int
	retentionDays  int
	serviceURL     string

	now    func() time.Time
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and configuration
type Params struct {
	TenantManager  TenantManager
	SourceManager  SourceManager
	ItemManager    ItemManager
	Fetcher        Fetcher
	UpdateInterval time.Duration
	MaxWorkers     int
	RetentionDays  int
	ServiceURL     string
}

// NewScheduler creates a scheduler with the provided dependencies
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval == 0 {
		params.UpdateInterval = time.Hour
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	if params.RetentionDays == 0 {
		params.RetentionDays = 30
	}

	return &Scheduler{
		tenants:        params.TenantManager,
		sources:        params.SourceManager,
		items:          params.ItemManager,
		fetcher:        params.Fetcher,
		updateInterval: params.UpdateInterval,
		maxWorkers:     params.MaxWorkers,
		retentionDays:  params.RetentionDays,
		serviceURL:     params.ServiceURL,
		now:            time.Now,
	}
}

// Start begins the periodic fetch loop. The first cycle runs immediately.
// Cycles never overlap, a tick arriving while a run is still in flight is
// dropped by the ticker.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.runLoop(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, max workers %d", s.updateInterval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	if err := s.RunForAllTenants(ctx); err != nil {
		lgr.Printf("[ERROR] fetch cycle failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RunForAllTenants(ctx); err != nil {
				lgr.Printf("[ERROR] fetch cycle failed: %v", err)
			}
		}
	}
}

// RunForAllTenants processes every tenant that has at least one source.
// Tenants are processed with bounded parallelism, a failure in one tenant
// is logged and never aborts the others.
func (s *Scheduler) RunForAllTenants(ctx context.Context) error {
	tenantIDs, err := s.tenants.ListTenantIDsWithSources(ctx)
	if err != nil {
		return err
	}

	if len(tenantIDs) == 0 {
		lgr.Printf("[INFO] no tenants with sources, nothing to fetch")
		return nil
	}

	lgr.Printf("[INFO] running fetch cycle for %d tenants", len(tenantIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, tenantID := range tenantIDs {
		g.Go(func() error {
			if err := s.RunForTenant(gctx, tenantID); err != nil {
				lgr.Printf("[ERROR] fetch failed for tenant %d: %v", tenantID, err)
			}
			return nil // tenant errors must not stop the cycle
		})
	}

	_ = g.Wait() // workers never return errors
	lgr.Printf("[INFO] fetch cycle completed")
	return nil
}

// Stats returns a read-only aggregate across all tenants
func (s *Scheduler) Stats(ctx context.Context) (*domain.Stats, error) {
	tenants, err := s.tenants.CountTenants(ctx)
	if err != nil {
		return nil, err
	}
	withSources, err := s.tenants.CountTenantsWithSources(ctx)
	if err != nil {
		return nil, err
	}
	totalItems, err := s.items.CountItems(ctx)
	if err != nil {
		return nil, err
	}
	recentItems, err := s.items.CountRecentItems(ctx, s.now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		Tenants:            tenants,
		TenantsWithSources: withSources,
		TotalItems:         totalItems,
		RecentItems:        recentItems,
		ServiceURL:         s.serviceURL,
		RetentionDays:      s.retentionDays,
	}, nil
}
