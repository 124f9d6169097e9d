package services

import (
	"fmt"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/analytics"
)

const (
	topPagesLimit = 5
	dailyStatDays = 7
)

// AnalyticsService records visits and aggregates the dashboard counters
type AnalyticsService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	views       *persistence.SQLPageViewRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker, views *persistence.SQLPageViewRepository) *AnalyticsService {
	return &AnalyticsService{
		logger:      logger,
		perfTracker: perfTracker,
		views:       views,
	}
}

// Track records a single page view
func (s *AnalyticsService) Track(path, visitorID, ip, userAgent, referrer string) error {
	if path == "" {
		return fmt.Errorf("page path is required")
	}
	view := &analytics.PageView{
		PagePath:  path,
		VisitorID: visitorID,
		IPAddress: ip,
		UserAgent: truncate(userAgent, 500),
		Referrer:  truncate(referrer, 500),
	}
	if err := s.views.Create(view); err != nil {
		s.logger.Analytics().Error("Failed to record page view", "path", path, "error", err.Error())
		return err
	}
	return nil
}

// Stats aggregates all dashboard counters in one call
func (s *AnalyticsService) Stats() (*analytics.StatsSummary, error) {
	marker := s.perfTracker.StartOperation("analytics_stats")
	defer marker.Complete()

	// Views are stored in UTC; windows must be computed in UTC too or
	// rows near local midnight fall outside them.
	today := startOfDay(time.Now().UTC())

	todayPV, err := s.views.CountSince(today)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	todayUV, err := s.views.CountUniqueVisitorsSince(today)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	weekPV, err := s.views.CountSince(startOfWeek(today))
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	monthPV, err := s.views.CountSince(startOfMonth(today))
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	totalPV, err := s.views.CountTotal()
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	topPages, err := s.views.TopPages(topPagesLimit)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	daily := make([]analytics.DailyStat, 0, dailyStatDays)
	for i := dailyStatDays - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		count, err := s.views.CountBetween(dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			marker.SetError(err)
			return nil, err
		}
		daily = append(daily, analytics.DailyStat{
			Date: dayStart.Format("01-02"),
			PV:   count,
		})
	}

	marker.SetSuccess(true)
	return &analytics.StatsSummary{
		TodayPV:    todayPV,
		TodayUV:    todayUV,
		WeekPV:     weekPV,
		MonthPV:    monthPV,
		TotalPV:    totalPV,
		TopPages:   topPages,
		DailyStats: daily,
	}, nil
}

// LiveCounters returns the subset of counters pushed over the live
// stats websocket
func (s *AnalyticsService) LiveCounters() (int, int, int, error) {
	today := startOfDay(time.Now().UTC())

	todayPV, err := s.views.CountSince(today)
	if err != nil {
		return 0, 0, 0, err
	}
	todayUV, err := s.views.CountUniqueVisitorsSince(today)
	if err != nil {
		return 0, 0, 0, err
	}
	totalPV, err := s.views.CountTotal()
	if err != nil {
		return 0, 0, 0, err
	}
	return todayPV, todayUV, totalPV, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return startOfDay(t).AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
