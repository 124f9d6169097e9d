package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLGalleryRepository is the SQL-based implementation of the home
// gallery image repository.
type SQLGalleryRepository struct {
	db *database.DB
}

// NewSQLGalleryRepository creates a new instance of the repository.
func NewSQLGalleryRepository(db *database.DB) *SQLGalleryRepository {
	return &SQLGalleryRepository{db: db}
}

const galleryColumns = `id, filename, original_name, path, title, title_en,
	alt, order_index, is_visible, created_at`

// FindAll retrieves gallery images in display order, optionally limited
// to visible ones.
func (r *SQLGalleryRepository) FindAll(visibleOnly bool) ([]*content.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images`
	if visibleOnly {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY order_index ASC, id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*content.GalleryImage
	for rows.Next() {
		img, err := r.scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// FindByID retrieves one gallery image, or nil when the id is unknown.
func (r *SQLGalleryRepository) FindByID(id int64) (*content.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = ?`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return r.scanGalleryImage(rows)
}

// Create saves a new gallery image at the end of the display order.
func (r *SQLGalleryRepository) Create(img *content.GalleryImage) error {
	var maxOrder sql.NullInt64
	if err := r.db.QueryRow(`SELECT MAX(order_index) FROM gallery_images`).Scan(&maxOrder); err != nil {
		return err
	}
	img.OrderIndex = int(maxOrder.Int64) + 1

	const query = `
		INSERT INTO gallery_images (filename, original_name, path, title, title_en,
			alt, order_index, is_visible, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	result, err := r.db.Exec(query,
		img.Filename, img.OriginalName, img.Path, img.Title, img.TitleEn,
		img.Alt, img.OrderIndex, img.IsVisible, now)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = id
	img.CreatedAt = now
	return nil
}

// Update rewrites a gallery image's titles, alt text, ordering and
// visibility.
func (r *SQLGalleryRepository) Update(img *content.GalleryImage) error {
	const query = `
		UPDATE gallery_images
		SET title = ?, title_en = ?, alt = ?, order_index = ?, is_visible = ?
		WHERE id = ?`

	result, err := r.db.Exec(query,
		img.Title, img.TitleEn, img.Alt, img.OrderIndex, img.IsVisible, img.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("gallery image %d not found", img.ID)
	}
	return nil
}

// Delete removes a gallery image record.
func (r *SQLGalleryRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM gallery_images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("gallery image %d not found", id)
	}
	return nil
}

// Reorder applies a full batch of order index assignments. Unknown ids
// are skipped silently; last write wins between concurrent admins.
func (r *SQLGalleryRepository) Reorder(entries []content.ReorderEntry) error {
	for _, entry := range entries {
		if _, err := r.db.Exec(`UPDATE gallery_images SET order_index = ? WHERE id = ?`,
			entry.OrderIndex, entry.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLGalleryRepository) scanGalleryImage(rows *sql.Rows) (*content.GalleryImage, error) {
	var img content.GalleryImage
	err := rows.Scan(
		&img.ID, &img.Filename, &img.OriginalName, &img.Path,
		&img.Title, &img.TitleEn, &img.Alt,
		&img.OrderIndex, &img.IsVisible, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}
