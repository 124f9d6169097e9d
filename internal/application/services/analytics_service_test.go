package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) *AnalyticsService {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel:  slog.LevelError,
		ChannelLevels: map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewTableCreator().CreateSchema(db.DB))

	return NewAnalyticsService(logger, performance.NewTracker(100), persistence.NewSQLPageViewRepository(db))
}

// Views are stored in UTC, so the dashboard windows must be UTC too.
// A server in a zone whose local date is ahead of the UTC date must
// still count a view recorded just after UTC midnight as today's.
func TestStatsWindowsIgnoreServerZone(t *testing.T) {
	svc := newAnalyticsService(t)

	utcNow := time.Now().UTC()
	today := startOfDay(utcNow)

	require.NoError(t, svc.views.Create(&analytics.PageView{
		PagePath:  "/gallery",
		VisitorID: "v_today",
		CreatedAt: today.Add(time.Minute),
	}))
	require.NoError(t, svc.views.Create(&analytics.PageView{
		PagePath:  "/gallery",
		VisitorID: "v_yesterday",
		CreatedAt: today.Add(-time.Minute),
	}))

	// Zone chosen so its local calendar date is one day ahead of UTC
	// right now.
	secsIntoDay := int(utcNow.Sub(today).Seconds())
	offset := 86400 - secsIntoDay + 1800
	if offset > 86399 {
		offset = 86399
	}
	restore := time.Local
	time.Local = time.FixedZone("ahead", offset)
	defer func() { time.Local = restore }()

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TodayPV)
	assert.Equal(t, 1, stats.TodayUV)
	assert.Equal(t, 2, stats.TotalPV)
	require.Len(t, stats.DailyStats, 7)
	assert.Equal(t, today.Format("01-02"), stats.DailyStats[6].Date)
	assert.Equal(t, 1, stats.DailyStats[6].PV)

	todayPV, todayUV, totalPV, err := svc.LiveCounters()
	require.NoError(t, err)
	assert.Equal(t, 1, todayPV)
	assert.Equal(t, 1, todayUV)
	assert.Equal(t, 2, totalPV)
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, 6, 14, 15, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), startOfDay(at))
}

func TestStartOfWeek(t *testing.T) {
	// 2024-06-14 is a Friday; the week starts on the preceding Monday.
	friday := time.Date(2024, 6, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), startOfWeek(friday))

	monday := time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), startOfWeek(monday))

	// Sunday belongs to the week that began six days earlier.
	sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
}

func TestStartOfMonth(t *testing.T) {
	at := time.Date(2024, 6, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), startOfMonth(at))
}
