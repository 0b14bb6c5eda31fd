package watch_test

import (
	"RecipeHub/domain"
	"RecipeHub/pkg/watch"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type watchRow struct {
	userID   uuid.UUID
	recipeID int
	viewedAt time.Time
}

// fakeWatchRepository keeps the same one-row-per-pair invariant the real
// upsert enforces.
type fakeWatchRepository struct {
	rows []watchRow
}

func (f *fakeWatchRepository) UpsertView(_ context.Context, userID uuid.UUID, recipeID int, viewedAt time.Time) error {
	for i, row := range f.rows {
		if row.userID == userID && row.recipeID == recipeID {
			f.rows[i].viewedAt = viewedAt
			return nil
		}
	}
	f.rows = append(f.rows, watchRow{userID, recipeID, viewedAt})
	return nil
}

func (f *fakeWatchRepository) ListWatched(_ context.Context, userID uuid.UUID, limit int) ([]int, error) {
	var mine []watchRow
	for _, row := range f.rows {
		if row.userID == userID {
			mine = append(mine, row)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].viewedAt.After(mine[j].viewedAt) })
	if limit > 0 && len(mine) > limit {
		mine = mine[:limit]
	}
	ids := make([]int, 0, len(mine))
	for _, row := range mine {
		ids = append(ids, row.recipeID)
	}
	return ids, nil
}

func (f *fakeWatchRepository) ClearWatched(_ context.Context, userID uuid.UUID) (int64, error) {
	var kept []watchRow
	var removed int64
	for _, row := range f.rows {
		if row.userID == userID {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return removed, nil
}

func TestRecordViewUpsertsSingleRow(t *testing.T) {
	repo := &fakeWatchRepository{}
	service := watch.NewWatchService(repo)
	userID := uuid.New().String()

	require.NoError(t, service.RecordView(context.Background(), userID, 11))
	first := repo.rows[0].viewedAt

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, service.RecordView(context.Background(), userID, 11))

	require.Len(t, repo.rows, 1)
	require.True(t, repo.rows[0].viewedAt.After(first))
}

func TestListOrderingAndRecentBound(t *testing.T) {
	repo := &fakeWatchRepository{}
	service := watch.NewWatchService(repo)
	userID := uuid.New().String()

	for _, recipeID := range []int{1, 2, 3, 4} {
		require.NoError(t, service.RecordView(context.Background(), userID, recipeID))
		time.Sleep(2 * time.Millisecond)
	}
	// Re-viewing an old recipe moves it to the front.
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, service.RecordView(context.Background(), userID, 1))

	all, err := service.ListAll(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 3, 2}, all)

	recent, err := service.ListRecent(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 3}, recent)
}

func TestClearAllReturnsCount(t *testing.T) {
	repo := &fakeWatchRepository{}
	service := watch.NewWatchService(repo)
	userA := uuid.New().String()
	userB := uuid.New().String()

	require.NoError(t, service.RecordView(context.Background(), userA, 1))
	require.NoError(t, service.RecordView(context.Background(), userA, 2))
	require.NoError(t, service.RecordView(context.Background(), userB, 3))

	removed, err := service.ClearAll(context.Background(), userA)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	all, err := service.ListAll(context.Background(), userA)
	require.NoError(t, err)
	require.Empty(t, all)

	// Other users keep their history.
	all, err = service.ListAll(context.Background(), userB)
	require.NoError(t, err)
	require.Equal(t, []int{3}, all)
}

func TestWatchRequiresIdentity(t *testing.T) {
	service := watch.NewWatchService(&fakeWatchRepository{})

	require.ErrorIs(t, service.RecordView(context.Background(), "", 1), domain.ErrUnauthorized)

	_, err := service.ListAll(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = service.ListRecent(context.Background(), "", 3)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = service.ClearAll(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
