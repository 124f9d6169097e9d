// Package content provides the concrete SQL-based implementations of
// the content repositories (Jewelry, Image, GalleryImage, Page).
package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLJewelryRepository is the SQL-based implementation of the catalog
// item repository.
type SQLJewelryRepository struct {
	db     *database.DB
	images *SQLImageRepository
}

// NewSQLJewelryRepository creates a new instance of the repository.
func NewSQLJewelryRepository(db *database.DB, images *SQLImageRepository) *SQLJewelryRepository {
	return &SQLJewelryRepository{db: db, images: images}
}

// ListFilter narrows FindAll results. Zero value lists every item.
type ListFilter struct {
	VisibleOnly  bool
	FeaturedOnly bool
	Limit        int
}

// FindAll retrieves catalog items ordered by order index, with their
// images attached in image order.
func (r *SQLJewelryRepository) FindAll(filter ListFilter) ([]*content.Jewelry, error) {
	query := `
		SELECT id, name, name_en, category, description, description_en,
		       order_index, is_visible, is_featured, created_at, updated_at
		FROM jewelry`

	var clauses []string
	if filter.VisibleOnly {
		clauses = append(clauses, "is_visible = 1")
	}
	if filter.FeaturedOnly {
		clauses = append(clauses, "is_featured = 1")
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY order_index ASC"

	var args []any
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*content.Jewelry
	for rows.Next() {
		item, err := r.scanJewelry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID retrieves one catalog item with its images, or nil when the
// id is unknown.
func (r *SQLJewelryRepository) FindByID(id int64) (*content.Jewelry, error) {
	const query = `
		SELECT id, name, name_en, category, description, description_en,
		       order_index, is_visible, is_featured, created_at, updated_at
		FROM jewelry
		WHERE id = ?`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	item, err := r.scanJewelry(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachImages([]*content.Jewelry{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// Create saves a new catalog item and fills in its assigned id.
func (r *SQLJewelryRepository) Create(item *content.Jewelry) error {
	const query = `
		INSERT INTO jewelry (name, name_en, category, description, description_en,
			order_index, is_visible, is_featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	result, err := r.db.Exec(query,
		item.Name, item.NameEn, item.Category, item.Description, item.DescriptionEn,
		item.OrderIndex, item.IsVisible, item.IsFeatured, now, now)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// Update rewrites the full record for an existing catalog item.
func (r *SQLJewelryRepository) Update(item *content.Jewelry) error {
	const query = `
		UPDATE jewelry
		SET name = ?, name_en = ?, category = ?, description = ?, description_en = ?,
			order_index = ?, is_visible = ?, is_featured = ?, updated_at = ?
		WHERE id = ?`

	now := time.Now().UTC()
	result, err := r.db.Exec(query,
		item.Name, item.NameEn, item.Category, item.Description, item.DescriptionEn,
		item.OrderIndex, item.IsVisible, item.IsFeatured, now, item.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("jewelry %d not found", item.ID)
	}
	item.UpdatedAt = now
	return nil
}

// Delete removes a catalog item. Its images survive in the pool with
// their assignment cleared.
func (r *SQLJewelryRepository) Delete(id int64) error {
	if _, err := r.db.Exec(`UPDATE images SET jewelry_id = NULL WHERE jewelry_id = ?`, id); err != nil {
		return err
	}

	result, err := r.db.Exec(`DELETE FROM jewelry WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("jewelry %d not found", id)
	}
	return nil
}

// Count returns total and visible catalog item counts.
func (r *SQLJewelryRepository) Count() (total, visible int, err error) {
	if err = r.db.QueryRow(`SELECT COUNT(*) FROM jewelry`).Scan(&total); err != nil {
		return 0, 0, err
	}
	if err = r.db.QueryRow(`SELECT COUNT(*) FROM jewelry WHERE is_visible = 1`).Scan(&visible); err != nil {
		return 0, 0, err
	}
	return total, visible, nil
}

func (r *SQLJewelryRepository) attachImages(items []*content.Jewelry) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[int64]*content.Jewelry, len(items))
	for _, item := range items {
		item.Images = []*content.Image{}
		byID[item.ID] = item
	}

	images, err := r.images.findAssigned()
	if err != nil {
		return err
	}
	for _, img := range images {
		if img.JewelryID == nil {
			continue
		}
		if item, ok := byID[*img.JewelryID]; ok {
			item.Images = append(item.Images, img)
		}
	}
	return nil
}

func (r *SQLJewelryRepository) scanJewelry(rows *sql.Rows) (*content.Jewelry, error) {
	var item content.Jewelry
	err := rows.Scan(
		&item.ID, &item.Name, &item.NameEn, &item.Category,
		&item.Description, &item.DescriptionEn,
		&item.OrderIndex, &item.IsVisible, &item.IsFeatured,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
