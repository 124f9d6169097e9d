package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/security"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS jewelry (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_en TEXT DEFAULT '',
		category TEXT DEFAULT 'earrings',
		description TEXT DEFAULT '',
		description_en TEXT DEFAULT '',
		order_index INTEGER DEFAULT 0,
		is_visible INTEGER DEFAULT 1,
		is_featured INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		original_name TEXT DEFAULT '',
		path TEXT NOT NULL,
		jewelry_id INTEGER REFERENCES jewelry(id),
		description TEXT DEFAULT '',
		description_en TEXT DEFAULT '',
		order_index INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		original_name TEXT DEFAULT '',
		path TEXT NOT NULL,
		title TEXT DEFAULT '',
		title_en TEXT DEFAULT '',
		alt TEXT DEFAULT '',
		order_index INTEGER DEFAULT 0,
		is_visible INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		page_key TEXT NOT NULL UNIQUE,
		content TEXT DEFAULT '{}',
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS page_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		page_path TEXT NOT NULL,
		visitor_id TEXT,
		ip_address TEXT,
		user_agent TEXT,
		referrer TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_images_jewelry_id ON images(jewelry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jewelry_order ON jewelry(order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_gallery_order ON gallery_images(order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_created ON page_views(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(page_path)`,
}

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialContent adds the default admin account and the empty page
// blobs a fresh install needs to function. Idempotent.
func (tc *TableCreator) SeedInitialContent(db *sql.DB) error {
	var adminExists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM admins WHERE username = ?)", config.DefaultAdminUser).Scan(&adminExists)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	if !adminExists {
		hash, err := security.HashPassword(config.DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		_, err = db.Exec(`INSERT INTO admins (username, password_hash, created_at) VALUES (?, ?, ?)`,
			config.DefaultAdminUser, hash, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert default admin: %w", err)
		}
	}

	for _, pageKey := range config.DefaultPageKeys {
		var pageExists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM pages WHERE page_key = ?)", pageKey).Scan(&pageExists)
		if err != nil {
			return fmt.Errorf("failed to check for page %s: %w", pageKey, err)
		}
		if !pageExists {
			_, err = db.Exec(`INSERT INTO pages (page_key, content, updated_at) VALUES (?, '{}', ?)`,
				pageKey, time.Now().UTC())
			if err != nil {
				return fmt.Errorf("failed to seed page %s: %w", pageKey, err)
			}
		}
	}

	return nil
}
