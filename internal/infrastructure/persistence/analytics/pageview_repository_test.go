package analytics

import (
	"testing"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLPageViewRepository {
	t.Helper()
	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewTableCreator().CreateSchema(db.DB))
	return NewSQLPageViewRepository(db)
}

func record(t *testing.T, repo *SQLPageViewRepository, path, visitor string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&analytics.PageView{
		PagePath:  path,
		VisitorID: visitor,
		CreatedAt: at,
	}))
}

func TestPageViewCounts(t *testing.T) {
	repo := setupRepo(t)
	now := time.Now().UTC()

	record(t, repo, "/", "v_aaa", now.Add(-time.Hour))
	record(t, repo, "/", "v_aaa", now.Add(-time.Minute))
	record(t, repo, "/gallery", "v_bbb", now.Add(-time.Minute))
	record(t, repo, "/about", "v_ccc", now.Add(-48*time.Hour))

	total, err := repo.CountTotal()
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	recent, err := repo.CountSince(now.Add(-2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, recent)

	between, err := repo.CountBetween(now.Add(-2*time.Hour), now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, between)
}

func TestUniqueVisitorsExcludesAnonymous(t *testing.T) {
	repo := setupRepo(t)
	now := time.Now().UTC()

	record(t, repo, "/", "v_aaa", now)
	record(t, repo, "/", "v_aaa", now)
	record(t, repo, "/", "v_bbb", now)
	record(t, repo, "/", "", now)

	unique, err := repo.CountUniqueVisitorsSince(now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, unique, "blank visitor ids never count as a visitor")
}

func TestTopPages(t *testing.T) {
	repo := setupRepo(t)
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		record(t, repo, "/", "v_a", now)
	}
	for i := 0; i < 3; i++ {
		record(t, repo, "/gallery", "v_a", now)
	}
	record(t, repo, "/about", "v_a", now)

	top, err := repo.TopPages(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "/", top[0].Path)
	assert.Equal(t, 5, top[0].Count)
	assert.Equal(t, "/gallery", top[1].Path)
	assert.Equal(t, 3, top[1].Count)
}
