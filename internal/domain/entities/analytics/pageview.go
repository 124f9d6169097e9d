// Package analytics defines the visitor tracking entities and the
// aggregate shapes served to the admin dashboard.
package analytics

import "time"

// PageView is one recorded public page visit. The visitor id is a
// client-generated identifier stable for the browser's lifetime.
type PageView struct {
	ID        int64     `json:"id"`
	PagePath  string    `json:"page_path"`
	VisitorID string    `json:"visitor_id"`
	IPAddress string    `json:"-"`
	UserAgent string    `json:"-"`
	Referrer  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TopPage is one entry of the most-visited ranking.
type TopPage struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DailyStat is one day of the PV trend series.
type DailyStat struct {
	Date string `json:"date"` // MM-DD
	PV   int    `json:"pv"`
}

// StatsSummary is the dashboard aggregate for visitor analytics.
type StatsSummary struct {
	TodayPV    int         `json:"todayPV"`
	TodayUV    int         `json:"todayUV"`
	WeekPV     int         `json:"weekPV"`
	MonthPV    int         `json:"monthPV"`
	TotalPV    int         `json:"totalPV"`
	TopPages   []TopPage   `json:"topPages"`
	DailyStats []DailyStat `json:"dailyStats"`
}

// ContentStats counts the managed content for the admin overview.
type ContentStats struct {
	JewelryCount int `json:"jewelryCount"`
	ImageCount   int `json:"imageCount"`
	VisibleCount int `json:"visibleCount"`
}
