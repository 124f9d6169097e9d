// Package user provides the concrete SQL-based implementation of the
// admin account repository.
package user

import (
	"database/sql"
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/user"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
)

// SQLAdminRepository is the SQL-based implementation of the admin
// account repository.
type SQLAdminRepository struct {
	db *database.DB
}

// NewSQLAdminRepository creates a new instance of the repository.
func NewSQLAdminRepository(db *database.DB) *SQLAdminRepository {
	return &SQLAdminRepository{db: db}
}

// FindByUsername retrieves an account by username, or nil when unknown.
func (r *SQLAdminRepository) FindByUsername(username string) (*user.Admin, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`
	return r.scanAdmin(r.db.QueryRow(query, username))
}

// FindByID retrieves an account by id, or nil when unknown.
func (r *SQLAdminRepository) FindByID(id int64) (*user.Admin, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admins WHERE id = ?`
	return r.scanAdmin(r.db.QueryRow(query, id))
}

// UpdatePassword replaces an account's password hash.
func (r *SQLAdminRepository) UpdatePassword(id int64, passwordHash string) error {
	result, err := r.db.Exec(`UPDATE admins SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("admin %d not found", id)
	}
	return nil
}

func (r *SQLAdminRepository) scanAdmin(row *sql.Row) (*user.Admin, error) {
	var admin user.Admin
	err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
