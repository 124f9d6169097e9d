// Package analytics provides the concrete SQL-based implementation of
// the page-view repository and its dashboard aggregations.
package analytics

import (
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/analytics"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLPageViewRepository is the SQL-based implementation of the
// page-view repository.
type SQLPageViewRepository struct {
	db *database.DB
}

// NewSQLPageViewRepository creates a new instance of the repository.
func NewSQLPageViewRepository(db *database.DB) *SQLPageViewRepository {
	return &SQLPageViewRepository{db: db}
}

// Create saves one recorded page view.
func (r *SQLPageViewRepository) Create(view *analytics.PageView) error {
	const query = `
		INSERT INTO page_views (page_path, visitor_id, ip_address, user_agent, referrer, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now().UTC()
	}
	result, err := r.db.Exec(query,
		view.PagePath, view.VisitorID, view.IPAddress, view.UserAgent, view.Referrer, view.CreatedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	view.ID = id
	return nil
}

// CountSince counts page views recorded at or after the given time.
func (r *SQLPageViewRepository) CountSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM page_views WHERE created_at >= ?`, since).Scan(&count)
	return count, err
}

// CountBetween counts page views recorded in [from, to).
func (r *SQLPageViewRepository) CountBetween(from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM page_views WHERE created_at >= ? AND created_at < ?`,
		from, to).Scan(&count)
	return count, err
}

// CountTotal counts every recorded page view.
func (r *SQLPageViewRepository) CountTotal() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM page_views`).Scan(&count)
	return count, err
}

// CountUniqueVisitorsSince counts distinct visitor ids at or after the
// given time. Views without a visitor id are excluded.
func (r *SQLPageViewRepository) CountUniqueVisitorsSince(since time.Time) (int, error) {
	const query = `
		SELECT COUNT(DISTINCT visitor_id) FROM page_views
		WHERE created_at >= ? AND visitor_id IS NOT NULL AND visitor_id != ''`

	var count int
	err := r.db.QueryRow(query, since).Scan(&count)
	return count, err
}

// TopPages ranks the most visited paths.
func (r *SQLPageViewRepository) TopPages(limit int) ([]analytics.TopPage, error) {
	const query = `
		SELECT page_path, COUNT(id) AS views FROM page_views
		GROUP BY page_path
		ORDER BY views DESC
		LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []analytics.TopPage
	for rows.Next() {
		var page analytics.TopPage
		if err := rows.Scan(&page.Path, &page.Count); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}
