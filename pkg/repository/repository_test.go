package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedpulse/pulse/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})
	return repos
}

func makeTenant(t *testing.T, repos *Repositories, name string) *domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{Name: name}
	require.NoError(t, repos.Tenant.CreateTenant(context.Background(), tenant))
	require.NotZero(t, tenant.ID)
	return tenant
}

func makeSource(t *testing.T, repos *Repositories, tenantID int64, url string) *domain.Source {
	t.Helper()
	src := &domain.Source{TenantID: tenantID, URL: url}
	require.NoError(t, repos.Source.CreateSource(context.Background(), src))
	require.NotZero(t, src.ID)
	return src
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")

	src := makeSource(t, repos, tenant.ID, "https://example.com/feed.xml")

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.TenantID)
	assert.Equal(t, "https://example.com/feed.xml", got.URL)
	assert.Equal(t, 0, got.ConsecutiveFailures)
	assert.Nil(t, got.LastFailureAt)
	assert.Nil(t, got.DisabledAt)

	_, err = repos.Source.GetSource(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSourceRepository_UniquePerTenant(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	alice := makeTenant(t, repos, "alice")
	bob := makeTenant(t, repos, "bob")

	makeSource(t, repos, alice.ID, "https://example.com/feed.xml")

	// same URL for the same tenant violates the constraint
	dup := &domain.Source{TenantID: alice.ID, URL: "https://example.com/feed.xml"}
	require.Error(t, repos.Source.CreateSource(ctx, dup))

	// but another tenant can subscribe to the same URL
	other := &domain.Source{TenantID: bob.ID, URL: "https://example.com/feed.xml"}
	require.NoError(t, repos.Source.CreateSource(ctx, other))
}

func TestSourceRepository_UpdateSourceHealth(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://example.com/feed.xml")

	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < domain.DisableFailures; i++ {
		src.RecordFailure(now)
	}
	require.NoError(t, repos.Source.UpdateSourceHealth(ctx, src))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisableFailures, got.ConsecutiveFailures)
	require.NotNil(t, got.LastFailureAt)
	require.NotNil(t, got.DisabledAt)
	assert.Equal(t, domain.StatusDisabled, got.Status(time.Now()))

	// re-enable clears everything
	got.ReEnable()
	require.NoError(t, repos.Source.UpdateSourceHealth(ctx, got))

	fresh, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.ConsecutiveFailures)
	assert.Nil(t, fresh.LastFailureAt)
	assert.Nil(t, fresh.DisabledAt)
	assert.True(t, fresh.Eligible(time.Now()))
}

func TestSourceRepository_GetSources(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	other := makeTenant(t, repos, "bob")

	makeSource(t, repos, tenant.ID, "https://a.example.com/feed")
	makeSource(t, repos, tenant.ID, "https://b.example.com/feed")
	makeSource(t, repos, other.ID, "https://c.example.com/feed")

	sources, err := repos.Source.GetSources(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Len(t, sources, 2, "only the tenant's own sources")
}

func TestSourceRepository_UpdateURLAndDelete(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://old.example.com/feed")

	require.NoError(t, repos.Source.UpdateSourceURL(ctx, src.ID, "https://new.example.com/feed"))
	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com/feed", got.URL)

	assert.ErrorIs(t, repos.Source.UpdateSourceURL(ctx, 9999, "https://x.example.com"), ErrNotFound)

	require.NoError(t, repos.Source.DeleteSource(ctx, src.ID))
	_, err = repos.Source.GetSource(ctx, src.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repos.Source.DeleteSource(ctx, src.ID), ErrNotFound)
}

func TestItemRepository_ReconcileIdempotence(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	stage := func() []domain.Item {
		return []domain.Item{
			{TenantID: tenant.ID, SourceID: &src.ID, Title: "one", Link: "https://a.example.com/1"},
			{TenantID: tenant.ID, SourceID: &src.ID, Title: "two", Link: "https://a.example.com/2"},
		}
	}

	inserted, purged, err := repos.Item.ReconcileItems(ctx, tenant.ID, stage(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Zero(t, purged)

	// second run with the same payload inserts nothing
	inserted, _, err = repos.Item.ReconcileItems(ctx, tenant.ID, stage(), cutoff)
	require.NoError(t, err)
	assert.Zero(t, inserted, "reconciliation is idempotent")

	count, err := repos.Item.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestItemRepository_ReconcileRetention(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")

	now := time.Now().UTC()
	old := now.AddDate(0, 0, -35)
	fresh := now.AddDate(0, 0, -1)
	cutoff := now.AddDate(0, 0, -30)

	items := []domain.Item{
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/old", PublishDate: &old},
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/fresh", PublishDate: &fresh},
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/undated"},
	}
	inserted, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, items, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// an empty fetch still purges expired items
	_, purged, err := repos.Item.ReconcileItems(ctx, tenant.ID, nil, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, purged, "only the 35-day-old item is purged")

	stored, err := repos.Item.GetItems(ctx, tenant.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	links := []string{stored[0].Link, stored[1].Link}
	assert.Contains(t, links, "https://a.example.com/fresh")
	assert.Contains(t, links, "https://a.example.com/undated", "items without publish date are never purged")
}

func TestItemRepository_LinkExists(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	other := makeTenant(t, repos, "bob")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")

	_, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, []domain.Item{
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/1"},
		{TenantID: tenant.ID, SourceID: &src.ID, Link: ""}, // empty link participates like any value
	}, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)

	exists, err := repos.Item.LinkExists(ctx, tenant.ID, "https://a.example.com/1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Item.LinkExists(ctx, tenant.ID, "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Item.LinkExists(ctx, other.ID, "https://a.example.com/1")
	require.NoError(t, err)
	assert.False(t, exists, "dedup is per tenant")
}

func TestItemRepository_RaceToleratedByConflictClause(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")

	cutoff := time.Now().AddDate(0, 0, -30)

	// simulate a concurrent fetch cycle having stored the link already
	first := []domain.Item{{TenantID: tenant.ID, SourceID: &src.ID, Title: "theirs", Link: "https://a.example.com/1"}}
	_, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, first, cutoff)
	require.NoError(t, err)

	// staged before our check, inserted after theirs: conflict is silently ignored
	second := []domain.Item{{TenantID: tenant.ID, SourceID: &src.ID, Title: "ours", Link: "https://a.example.com/1"}}
	inserted, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, second, cutoff)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	items, err := repos.Item.GetItems(ctx, tenant.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "theirs", items[0].Title, "first writer wins")
}

func TestSourceCascadeDeletesItems(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")
	keep := makeSource(t, repos, tenant.ID, "https://b.example.com/feed")

	_, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, []domain.Item{
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/1"},
		{TenantID: tenant.ID, SourceID: &keep.ID, Link: "https://b.example.com/1"},
	}, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)

	require.NoError(t, repos.Source.DeleteSource(ctx, src.ID))

	items, err := repos.Item.GetItems(ctx, tenant.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "items of the deleted source are cascade-deleted")
	assert.Equal(t, "https://b.example.com/1", items[0].Link)
}

func TestTenantRepository_Counts(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		makeTenant(t, repos, fmt.Sprintf("tenant-%d", i))
	}
	withSources := makeTenant(t, repos, "subscribed")
	makeSource(t, repos, withSources.ID, "https://a.example.com/feed")
	makeSource(t, repos, withSources.ID, "https://b.example.com/feed")

	total, err := repos.Tenant.CountTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	subscribed, err := repos.Tenant.CountTenantsWithSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, subscribed)

	ids, err := repos.Tenant.ListTenantIDsWithSources(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, withSources.ID, ids[0])
}

func TestItemRepository_CountRecentItems(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	tenant := makeTenant(t, repos, "alice")
	src := makeSource(t, repos, tenant.ID, "https://a.example.com/feed")

	_, _, err := repos.Item.ReconcileItems(ctx, tenant.ID, []domain.Item{
		{TenantID: tenant.ID, SourceID: &src.ID, Link: "https://a.example.com/1"},
	}, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)

	recent, err := repos.Item.CountRecentItems(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, recent)

	recent, err = repos.Item.CountRecentItems(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, recent)
}
