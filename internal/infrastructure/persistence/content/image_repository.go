package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLImageRepository is the SQL-based implementation of the image pool
// repository.
type SQLImageRepository struct {
	db *database.DB
}

// NewSQLImageRepository creates a new instance of the repository.
func NewSQLImageRepository(db *database.DB) *SQLImageRepository {
	return &SQLImageRepository{db: db}
}

const imageColumns = `id, filename, original_name, path, jewelry_id,
	description, description_en, order_index, created_at`

// FindAll retrieves every image, newest first.
func (r *SQLImageRepository) FindAll() ([]*content.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

// FindByID retrieves one image, or nil when the id is unknown.
func (r *SQLImageRepository) FindByID(id int64) (*content.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = ?`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return r.scanImage(rows)
}

// Create saves a new image record and fills in its assigned id.
func (r *SQLImageRepository) Create(img *content.Image) error {
	const query = `
		INSERT INTO images (filename, original_name, path, jewelry_id,
			description, description_en, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	result, err := r.db.Exec(query,
		img.Filename, img.OriginalName, img.Path, img.JewelryID,
		img.Description, img.DescriptionEn, img.OrderIndex, now)
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

// Update rewrites an image's assignment, ordering and descriptions.
func (r *SQLImageRepository) Update(img *content.Image) error {
	const query = `
		UPDATE images
		SET jewelry_id = ?, description = ?, description_en = ?, order_index = ?
		WHERE id = ?`

	result, err := r.db.Exec(query,
		img.JewelryID, img.Description, img.DescriptionEn, img.OrderIndex, img.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("image %d not found", img.ID)
	}
	return nil
}

// Delete removes an image record.
func (r *SQLImageRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("image %d not found", id)
	}
	return nil
}

// Reorder applies a full batch of order index assignments.
func (r *SQLImageRepository) Reorder(entries []content.ReorderEntry) error {
	for _, entry := range entries {
		if _, err := r.db.Exec(`UPDATE images SET order_index = ? WHERE id = ?`,
			entry.OrderIndex, entry.ID); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the total image count.
func (r *SQLImageRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&count)
	return count, err
}

// findAssigned retrieves every assigned image in image order, used to
// attach image lists to catalog items.
func (r *SQLImageRepository) findAssigned() ([]*content.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images
		WHERE jewelry_id IS NOT NULL
		ORDER BY order_index ASC, id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *SQLImageRepository) collect(rows *sql.Rows) ([]*content.Image, error) {
	var images []*content.Image
	for rows.Next() {
		img, err := r.scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *SQLImageRepository) scanImage(rows *sql.Rows) (*content.Image, error) {
	var img content.Image
	err := rows.Scan(
		&img.ID, &img.Filename, &img.OriginalName, &img.Path, &img.JewelryID,
		&img.Description, &img.DescriptionEn, &img.OrderIndex, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}
