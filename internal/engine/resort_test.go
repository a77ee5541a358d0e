package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/model"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStorage is an in-memory service.Storage for resort tests. Updates are
// applied to the stored rows so consecutive runs see each other's writes.
type mockStorage struct {
	mu       sync.Mutex
	listings map[string]*service.StoredListing
	order    []string
	updates  int
	failIDs  map[string]bool
}

func newMockStorage(listings ...service.StoredListing) *mockStorage {
	m := &mockStorage{
		listings: make(map[string]*service.StoredListing),
		failIDs:  make(map[string]bool),
	}
	for i := range listings {
		l := listings[i]
		m.listings[l.ID] = &l
		m.order = append(m.order, l.ID)
	}
	return m
}

func (m *mockStorage) UpsertListing(_ context.Context, listing *service.StoredListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[listing.ID]; !ok {
		m.order = append(m.order, listing.ID)
	}
	l := *listing
	m.listings[listing.ID] = &l
	return nil
}

func (m *mockStorage) GetListing(_ context.Context, id string) (*service.StoredListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	found := *l
	return &found, nil
}

func (m *mockStorage) ListListings(_ context.Context, _ service.ListingFilter) ([]service.StoredListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]service.StoredListing, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.listings[id])
	}
	return out, nil
}

func (m *mockStorage) UpdateClassification(_ context.Context, id string, result model.ClassificationResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failIDs[id] {
		return errors.New("disk I/O error")
	}
	l, ok := m.listings[id]
	if !ok {
		return errors.New("not found")
	}
	l.Category = result.Category
	l.Method = result.Method
	l.Confidence = result.Confidence
	m.updates++
	return nil
}

func (m *mockStorage) CatalogEntries(_ context.Context) ([]model.CatalogEntry, error) {
	return nil, nil
}

func (m *mockStorage) AppendFeedback(_ context.Context, _ model.FeedbackEntry) error {
	return nil
}

func (m *mockStorage) ListFeedback(_ context.Context, _ time.Time) ([]model.FeedbackEntry, error) {
	return nil, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }
func (m *mockStorage) Close() error                    { return nil }

func (m *mockStorage) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates
}

func (m *mockStorage) category(t *testing.T, id string) model.Category {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[id]
	require.True(t, ok)
	return l.Category
}

func unsortedCatalog() []service.StoredListing {
	return []service.StoredListing{
		{ID: "l-1", Name: "Tattu R-Line 4S 1550mAh LiPo Battery", Category: model.CategoryUnknown},
		{ID: "l-2", Name: "Badass 2207 Motor 1750KV", Category: model.CategoryUnknown},
		{ID: "l-3", Name: "Motor Mount", Category: model.CategoryUnknown},
	}
}

func TestResort_Run(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	resorter := NewResorter(newTestClassifier(t), store)

	summary, err := resorter.Run(context.Background(), ResortOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 2, summary.Reclassified)
	assert.Empty(t, summary.Errors)

	assert.Equal(t, model.CategoryBattery, store.category(t, "l-1"))
	assert.Equal(t, model.CategoryMotor, store.category(t, "l-2"))
	// Accessory listings stay unassigned.
	assert.Equal(t, model.CategoryUnknown, store.category(t, "l-3"))

	changed := make(map[string]ResortChange)
	for _, c := range summary.Changes {
		changed[c.ID] = c
	}
	require.Contains(t, changed, "l-1")
	assert.Equal(t, model.CategoryUnknown, changed["l-1"].From)
	assert.Equal(t, model.CategoryBattery, changed["l-1"].To)
}

func TestResort_SecondRunIsNoOp(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	resorter := NewResorter(newTestClassifier(t), store)

	_, err := resorter.Run(context.Background(), ResortOptions{Workers: 2})
	require.NoError(t, err)
	firstUpdates := store.updateCount()

	summary, err := resorter.Run(context.Background(), ResortOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Zero(t, summary.Reclassified)
	assert.Empty(t, summary.Changes)
	assert.Equal(t, firstUpdates, store.updateCount(), "no writes on an already-correct catalog")
}

func TestResort_ItemFailuresDoNotAbortBatch(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	store.failIDs["l-2"] = true
	resorter := NewResorter(newTestClassifier(t), store)

	summary, err := resorter.Run(context.Background(), ResortOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 1, summary.Reclassified)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "l-2", summary.Errors[0].ID)
	assert.ErrorContains(t, summary.Errors[0].Err, "failed to update classification")

	// The healthy items still landed.
	assert.Equal(t, model.CategoryBattery, store.category(t, "l-1"))
}

func TestResort_Cancellation(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	resorter := NewResorter(newTestClassifier(t), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := resorter.Run(ctx, ResortOptions{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, summary)
	assert.Zero(t, store.updateCount())
}

func TestResort_DryRun(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	resorter := NewResorter(newTestClassifier(t), store)

	summary, err := resorter.Run(context.Background(), ResortOptions{Workers: 2, DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Reclassified)
	assert.Zero(t, store.updateCount(), "dry run must not write")
	assert.Equal(t, model.CategoryUnknown, store.category(t, "l-1"))
}

func TestResort_OverwritePolicies(t *testing.T) {
	// An accessory name dressed with a stale manual assignment: the fresh
	// result is Unknown, so keep-confident preserves the assignment while
	// always clears it.
	stale := service.StoredListing{
		ID:         "l-stale",
		Name:       "Motor Mount",
		Category:   model.CategoryMotor,
		Confidence: 95,
	}
	// A weak manual guess that a confident fresh result may replace under
	// either policy.
	weak := service.StoredListing{
		ID:         "l-weak",
		Name:       "Tattu R-Line 4S 1550mAh LiPo Battery",
		Category:   model.CategoryFrame,
		Confidence: 10,
	}

	t.Run("keep-confident", func(t *testing.T) {
		store := newMockStorage(stale, weak)
		resorter := NewResorter(newTestClassifier(t), store)

		summary, err := resorter.Run(context.Background(), ResortOptions{
			Workers:   2,
			Overwrite: OverwriteKeepConfident,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Reclassified)
		assert.Equal(t, model.CategoryMotor, store.category(t, "l-stale"))
		assert.Equal(t, model.CategoryBattery, store.category(t, "l-weak"))
	})

	t.Run("always", func(t *testing.T) {
		store := newMockStorage(stale, weak)
		resorter := NewResorter(newTestClassifier(t), store)

		summary, err := resorter.Run(context.Background(), ResortOptions{
			Workers:   2,
			Overwrite: OverwriteAlways,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Reclassified)
		assert.Equal(t, model.CategoryUnknown, store.category(t, "l-stale"))
		assert.Equal(t, model.CategoryBattery, store.category(t, "l-weak"))
	})
}

func TestResort_ProgressCallback(t *testing.T) {
	store := newMockStorage(unsortedCatalog()...)
	resorter := NewResorter(newTestClassifier(t), store)

	var mu sync.Mutex
	var seen []int
	summary, err := resorter.Run(context.Background(), ResortOptions{
		Workers: 1,
		OnProgress: func(processed, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 3, total)
			seen = append(seen, processed)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

var _ service.Storage = (*mockStorage)(nil)
