package content

import (
	"database/sql"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLPageRepository is the SQL-based implementation of the page blob
// repository.
type SQLPageRepository struct {
	db *database.DB
}

// NewSQLPageRepository creates a new instance of the repository.
func NewSQLPageRepository(db *database.DB) *SQLPageRepository {
	return &SQLPageRepository{db: db}
}

// FindAll retrieves every page blob.
func (r *SQLPageRepository) FindAll() ([]*content.Page, error) {
	const query = `SELECT id, page_key, content, updated_at FROM pages ORDER BY page_key ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*content.Page
	for rows.Next() {
		page, err := r.scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// FindByKey retrieves one page blob, or nil when the key is unknown.
func (r *SQLPageRepository) FindByKey(pageKey string) (*content.Page, error) {
	const query = `SELECT id, page_key, content, updated_at FROM pages WHERE page_key = ?`

	rows, err := r.db.Query(query, pageKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return r.scanPage(rows)
}

// Upsert writes a page's blob, creating the page on first write, and
// returns the stored record.
func (r *SQLPageRepository) Upsert(pageKey, blob string) (*content.Page, error) {
	now := time.Now().UTC()

	const query = `
		INSERT INTO pages (page_key, content, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(page_key) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`

	if _, err := r.db.Exec(query, pageKey, blob, now); err != nil {
		return nil, err
	}
	return r.FindByKey(pageKey)
}

func (r *SQLPageRepository) scanPage(rows *sql.Rows) (*content.Page, error) {
	var page content.Page
	if err := rows.Scan(&page.ID, &page.PageKey, &page.Content, &page.UpdatedAt); err != nil {
		return nil, err
	}
	return &page, nil
}
