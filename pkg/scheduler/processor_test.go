package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedpulse/pulse/pkg/domain"
	"github.com/feedpulse/pulse/pkg/fetcher"
	"github.com/feedpulse/pulse/pkg/scheduler/mocks"
)

func newTestScheduler(tenants *mocks.TenantManagerMock, sources *mocks.SourceManagerMock,
	items *mocks.ItemManagerMock, fetchMock *mocks.FetcherMock) *Scheduler {
	return NewScheduler(Params{
		TenantManager: tenants,
		SourceManager: sources,
		ItemManager:   items,
		Fetcher:       fetchMock,
		MaxWorkers:    2,
		RetentionDays: 30,
		ServiceURL:    "http://localhost:8080",
	})
}

func TestRunForTenant_DispatchFailurePenalizesBatch(t *testing.T) {
	srcA := domain.Source{ID: 1, TenantID: 7, URL: "https://a.example.com/feed"}
	srcB := domain.Source{ID: 2, TenantID: 7, URL: "https://b.example.com/feed"}

	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{srcA, srcB}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}
	items := &mocks.ItemManagerMock{}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			return nil, errors.New("status 500")
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	err := s.RunForTenant(context.Background(), 7)
	require.NoError(t, err, "dispatch failure is not surfaced as an error")

	updates := sources.UpdateSourceHealthCalls()
	require.Len(t, updates, 2, "every dispatched source gets one failure")
	for _, call := range updates {
		assert.Equal(t, 1, call.Src.ConsecutiveFailures)
		assert.NotNil(t, call.Src.LastFailureAt)
		assert.Nil(t, call.Src.DisabledAt)
	}
	assert.Empty(t, items.ReconcileItemsCalls(), "no items processed on dispatch failure")
}

func TestRunForTenant_AllSourcesIneligible(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Hour)

	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 1, URL: "https://a.example.com/feed", DisabledAt: &recent},
				{ID: 2, URL: "https://b.example.com/feed", ConsecutiveFailures: 5, LastFailureAt: &recent},
			}, nil
		},
	}
	fetchMock := &mocks.FetcherMock{}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, &mocks.ItemManagerMock{}, fetchMock)
	err := s.RunForTenant(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, fetchMock.FetchCalls(), "no outbound call when nothing is eligible")
}

func TestRunForTenant_CooldownSourceNotDispatched(t *testing.T) {
	now := time.Now()
	recent := now.Add(-12 * time.Hour)
	expired := now.Add(-25 * time.Hour)

	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 1, URL: "https://cool.example.com/feed", ConsecutiveFailures: 3, LastFailureAt: &recent},
				{ID: 2, URL: "https://back.example.com/feed", ConsecutiveFailures: 3, LastFailureAt: &expired},
			}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, _ string) (bool, error) { return false, nil },
		ReconcileItemsFunc: func(_ context.Context, _ int64, staged []domain.Item, _ time.Time) (int, int, error) {
			return len(staged), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, urls []string) ([]fetcher.ItemPayload, error) {
			return nil, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	calls := fetchMock.FetchCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"https://back.example.com/feed"}, calls[0].Urls,
		"only the source past its cooldown window is dispatched")
}

func TestRunForTenant_CrossMapping(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 11, TenantID: 7, URL: "https://a.example.com/feed"},
				{ID: 22, TenantID: 7, URL: "https://b.example.com/feed"},
			}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}

	var staged []domain.Item
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, _ string) (bool, error) { return false, nil },
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, _ time.Time) (int, int, error) {
			staged = its
			return len(its), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			return []fetcher.ItemPayload{
				{Title: "from a", Link: "https://a.example.com/1", RSSURL: "https://a.example.com/feed"},
				{Title: "from b", Link: "https://b.example.com/1", RSSURL: "https://b.example.com/feed"},
			}, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	require.Len(t, staged, 2)
	require.NotNil(t, staged[0].SourceID)
	require.NotNil(t, staged[1].SourceID)
	assert.Equal(t, int64(11), *staged[0].SourceID)
	assert.Equal(t, int64(22), *staged[1].SourceID)
}

func TestRunForTenant_UnknownSourceDiscarded(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 1, TenantID: 7, URL: "https://a.example.com/feed"}}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}

	var staged []domain.Item
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, _ string) (bool, error) { return false, nil },
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, _ time.Time) (int, int, error) {
			staged = its
			return len(its), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			return []fetcher.ItemPayload{
				{Title: "stranger", Link: "https://x.example.com/1", RSSURL: "https://unknown.example.com/feed"},
				{Title: "no origin", Link: "https://y.example.com/1"},
			}, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	assert.Empty(t, staged, "items without a recognized origin are discarded")
	assert.Empty(t, sources.UpdateSourceHealthCalls(),
		"no source contributed, so no success or failure recorded")
}

func TestRunForTenant_SuccessOnlyForContributingSources(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			lf := time.Now().Add(-time.Hour)
			return []domain.Source{
				{ID: 1, TenantID: 7, URL: "https://a.example.com/feed", ConsecutiveFailures: 2, LastFailureAt: &lf},
				{ID: 2, TenantID: 7, URL: "https://b.example.com/feed", ConsecutiveFailures: 2, LastFailureAt: &lf},
			}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, _ string) (bool, error) { return false, nil },
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, _ time.Time) (int, int, error) {
			return len(its), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			// only source A returns items, B comes back empty-handed
			return []fetcher.ItemPayload{
				{Title: "one", Link: "https://a.example.com/1", RSSURL: "https://a.example.com/feed"},
				{Title: "two", Link: "https://a.example.com/2", RSSURL: "https://a.example.com/feed"},
			}, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	updates := sources.UpdateSourceHealthCalls()
	require.Len(t, updates, 1, "success credited once per contributing source")
	assert.Equal(t, int64(1), updates[0].Src.ID)
	assert.Equal(t, 0, updates[0].Src.ConsecutiveFailures)
	assert.Nil(t, updates[0].Src.LastFailureAt)
}

func TestRunForTenant_DuplicateLinksFirstSeenWins(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 1, TenantID: 7, URL: "https://a.example.com/feed"}}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}

	var staged []domain.Item
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, link string) (bool, error) {
			return link == "https://a.example.com/persisted", nil
		},
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, _ time.Time) (int, int, error) {
			staged = its
			return len(its), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			return []fetcher.ItemPayload{
				{Title: "already stored", Link: "https://a.example.com/persisted", RSSURL: "https://a.example.com/feed"},
				{Title: "first", Description: "original", Link: "https://a.example.com/new", RSSURL: "https://a.example.com/feed"},
				{Title: "second", Description: "different", Link: "https://a.example.com/new", RSSURL: "https://a.example.com/feed"},
			}, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	require.Len(t, staged, 1)
	assert.Equal(t, "first", staged[0].Title, "first payload wins for a duplicated link")
	assert.Equal(t, "original", staged[0].Description)
}

func TestRunForTenant_EmptyPayloadStillRunsCleanup(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 1, TenantID: 7, URL: "https://a.example.com/feed"}}, nil
		},
	}
	items := &mocks.ItemManagerMock{
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, cutoff time.Time) (int, int, error) {
			assert.Empty(t, its)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), cutoff, time.Minute)
			return 0, 3, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) { return nil, nil },
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	require.Len(t, items.ReconcileItemsCalls(), 1, "retention cleanup runs even on an empty fetch")
	assert.Empty(t, sources.UpdateSourceHealthCalls())
}

func TestRunForTenant_PublishDateDefaults(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 1, TenantID: 7, URL: "https://a.example.com/feed"}}, nil
		},
		UpdateSourceHealthFunc: func(_ context.Context, _ *domain.Source) error { return nil },
	}

	var staged []domain.Item
	items := &mocks.ItemManagerMock{
		LinkExistsFunc: func(_ context.Context, _ int64, _ string) (bool, error) { return false, nil },
		ReconcileItemsFunc: func(_ context.Context, _ int64, its []domain.Item, _ time.Time) (int, int, error) {
			staged = its
			return len(its), 0, nil
		},
	}
	fetchMock := &mocks.FetcherMock{
		FetchFunc: func(_ context.Context, _ []string) ([]fetcher.ItemPayload, error) {
			return []fetcher.ItemPayload{
				{Link: "https://a.example.com/1", RSSURL: "https://a.example.com/feed", PublishDate: "2025-07-03T15:41:59Z"},
				{Link: "https://a.example.com/2", RSSURL: "https://a.example.com/feed", PublishDate: "not a date"},
				{Link: "https://a.example.com/3", RSSURL: "https://a.example.com/feed"},
			}, nil
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, items, fetchMock)
	require.NoError(t, s.RunForTenant(context.Background(), 7))

	require.Len(t, staged, 3)
	require.NotNil(t, staged[0].PublishDate)
	assert.Equal(t, 2025, staged[0].PublishDate.Year())
	assert.Nil(t, staged[1].PublishDate, "malformed date stored as null, item kept")
	assert.Nil(t, staged[2].PublishDate)
	assert.Empty(t, staged[1].Title, "missing fields default to empty strings")
}

func TestRunForTenant_GetSourcesError(t *testing.T) {
	sources := &mocks.SourceManagerMock{
		GetSourcesFunc: func(_ context.Context, _ int64) ([]domain.Source, error) {
			return nil, errors.New("db gone")
		},
	}

	s := newTestScheduler(&mocks.TenantManagerMock{}, sources, &mocks.ItemManagerMock{}, &mocks.FetcherMock{})
	err := s.RunForTenant(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db gone")
}

func TestParsePublishDate(t *testing.T) {
	assert.Nil(t, parsePublishDate(""))
	assert.Nil(t, parsePublishDate("definitely not a date"))

	ts := parsePublishDate("Thu, 03 Jul 2025 15:41:59 GMT")
	require.NotNil(t, ts)
	assert.Equal(t, time.July, ts.Month())
}
