package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_OpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStore_ReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(Run{Stage: "flat", Seed: 1, Score: 300})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns("flat", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 300, runs[0].Score)
}

func TestStore_SaveAndTopRuns(t *testing.T) {
	store := createTestStore(t)

	saved := []Run{
		{Stage: "flat", Seed: 1, Jump: "impulse", Score: 100, Coins: 1, Ticks: 60},
		{Stage: "flat", Seed: 2, Jump: "arc", Score: 50, Ticks: 3000},
		{Stage: "flat", Seed: 3, Jump: "impulse", Score: 700, Coins: 3, Defeated: 2, Ticks: 600},
		{Stage: "classic", Seed: 4, Jump: "impulse", Score: 900},
	}
	for _, r := range saved {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	tests := []struct {
		name   string
		stage  string
		limit  int
		scores []int
	}{
		{"one stage", "flat", 10, []int{700, 100, 50}},
		{"limited", "flat", 2, []int{700, 100}},
		{"all stages", "", 10, []int{900, 700, 100, 50}},
		{"default limit", "classic", 0, []int{900}},
		{"unknown stage", "castle", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.TopRuns(tt.stage, tt.limit)
			require.NoError(t, err)

			var scores []int
			for _, r := range runs {
				scores = append(scores, r.Score)
			}
			assert.Equal(t, tt.scores, scores)
		})
	}

	runs, err := store.TopRuns("flat", 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	best := runs[0]
	assert.Equal(t, int64(3), best.Seed)
	assert.Equal(t, "impulse", best.Jump)
	assert.Equal(t, 3, best.Coins)
	assert.Equal(t, 2, best.Defeated)
	assert.Equal(t, 600, best.Ticks)
	assert.False(t, best.CreatedAt.IsZero())
}

func TestStore_Best(t *testing.T) {
	store := createTestStore(t)

	best, err := store.Best("flat")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	for _, score := range []int{120, 480, 90} {
		_, err := store.SaveRun(Run{Stage: "flat", Score: score})
		require.NoError(t, err)
	}

	best, err = store.Best("flat")
	require.NoError(t, err)
	assert.Equal(t, 480, best)
}

func TestStore_CloseNil(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())
}
