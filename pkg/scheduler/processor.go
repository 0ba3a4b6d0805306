package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-pkgz/lgr"

	"github.com/feedpulse/pulse/pkg/domain"
	"github.com/feedpulse/pulse/pkg/fetcher"
)

// RunForTenant executes one fetch cycle for a single tenant: snapshot the
// tenant's sources, filter to the fetch-eligible subset, dispatch their URLs
// to the fetch service and reconcile the result. A transport-level dispatch
// failure penalizes every dispatched source and is not returned as an error,
// the next scheduled run is the retry mechanism.
func (s *Scheduler) RunForTenant(ctx context.Context, tenantID int64) error {
	sources, err := s.sources.GetSources(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("get sources for tenant %d: %w", tenantID, err)
	}

	now := s.now()
	eligible := domain.SelectEligible(sources, now)
	if len(eligible) == 0 {
		lgr.Printf("[INFO] no eligible sources for tenant %d (all disabled or in cooldown)", tenantID)
		return nil
	}

	urls := make([]string, len(eligible))
	for i, src := range eligible {
		urls[i] = src.URL
	}

	payloads, err := s.fetcher.Fetch(ctx, urls)
	if err != nil {
		lgr.Printf("[ERROR] fetch failed for tenant %d (%d urls): %v", tenantID, len(urls), err)
		s.recordBatchFailure(ctx, eligible)
		return nil
	}

	if err := s.reconcile(ctx, tenantID, payloads, sources); err != nil {
		return fmt.Errorf("reconcile items for tenant %d: %w", tenantID, err)
	}

	lgr.Printf("[INFO] fetched %d items for tenant %d from %d sources", len(payloads), tenantID, len(urls))
	return nil
}

// recordBatchFailure applies one failure to every source that was included
// in a failed dispatch. A single call cannot tell which source was at fault,
// so all attempted sources are penalized equally.
func (s *Scheduler) recordBatchFailure(ctx context.Context, dispatched []domain.Source) {
	now := s.now()
	for i := range dispatched {
		src := &dispatched[i]
		src.RecordFailure(now)
		if src.DisabledAt != nil && src.ConsecutiveFailures == domain.DisableFailures {
			lgr.Printf("[WARN] source %d (%s) disabled after %d consecutive failures", src.ID, src.URL, src.ConsecutiveFailures)
		}
		if err := s.sources.UpdateSourceHealth(ctx, src); err != nil {
			lgr.Printf("[ERROR] failed to persist failure for source %d: %v", src.ID, err)
		}
	}
}

// reconcile maps payload items back to the tenant's sources, dedups them
// against persisted history, stores the new ones and purges expired ones in
// one transaction, then credits the sources that returned items. Retention
// cleanup runs even when the payload is empty.
func (s *Scheduler) reconcile(ctx context.Context, tenantID int64, payloads []fetcher.ItemPayload, sources []domain.Source) error {
	cutoff := s.now().AddDate(0, 0, -s.retentionDays)

	// sources keyed by URL, the full set is used for mapping so items from a
	// source that slipped into cooldown mid-flight still resolve
	byURL := make(map[string]*domain.Source, len(sources))
	for i := range sources {
		byURL[sources[i].URL] = &sources[i]
	}

	contributed := make(map[string]*domain.Source) // once per distinct URL
	stagedLinks := make(map[string]struct{})
	staged := make([]domain.Item, 0, len(payloads))

	for _, p := range payloads {
		src, ok := byURL[p.RSSURL]
		if !ok {
			lgr.Printf("[WARN] item %q references unknown source %q for tenant %d, discarded", p.Link, p.RSSURL, tenantID)
			continue
		}
		contributed[p.RSSURL] = src

		// (tenant, link) is the sole dedup key, a missing link participates
		// as the empty string
		if _, seen := stagedLinks[p.Link]; seen {
			continue
		}
		exists, err := s.items.LinkExists(ctx, tenantID, p.Link)
		if err != nil {
			return fmt.Errorf("check link %q: %w", p.Link, err)
		}
		if exists {
			lgr.Printf("[DEBUG] item already exists for tenant %d: %q", tenantID, p.Link)
			continue
		}
		stagedLinks[p.Link] = struct{}{}

		sourceID := src.ID
		staged = append(staged, domain.Item{
			TenantID:    tenantID,
			SourceID:    &sourceID,
			Title:       p.Title,
			Source:      p.Source,
			SourceURL:   p.SourceURL,
			Link:        p.Link,
			PublishDate: parsePublishDate(p.PublishDate),
			Description: p.Description,
		})
	}

	inserted, purged, err := s.items.ReconcileItems(ctx, tenantID, staged, cutoff)
	if err != nil {
		return err
	}
	if inserted > 0 || purged > 0 {
		lgr.Printf("[INFO] tenant %d: %d new items, %d purged by retention", tenantID, inserted, purged)
	}

	// success is credited only after persistence is durable, and only to
	// sources that contributed at least one mapped item
	for _, src := range contributed {
		src.RecordSuccess()
		if err := s.sources.UpdateSourceHealth(ctx, src); err != nil {
			lgr.Printf("[ERROR] failed to persist success for source %d: %v", src.ID, err)
		}
	}

	return nil
}

// parsePublishDate parses a loosely formatted date string. An empty or
// unparseable value yields nil rather than rejecting the item.
func parsePublishDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	ts, err := dateparse.ParseAny(raw)
	if err != nil {
		lgr.Printf("[WARN] failed to parse publish date %q", raw)
		return nil
	}
	return &ts
}
