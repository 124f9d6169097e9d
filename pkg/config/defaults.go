// Package config provides centralized default values for Pearlsite
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func loadEnvFile() {
	// .env file is optional, don't error if it doesn't exist
	if err := godotenv.Load(); err == nil {
		log.Println("Loading configuration overrides from .env file...")
	}
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration. A libsql URL switches the driver from the
	// local SQLite file to a remote Turso database.
	DatabasePath     string
	LibSQLURL        string
	LibSQLAuthToken  string
	DBMaxOpenConns   int
	DBMaxIdleConns   int
	DBConnMaxIdleMin int

	// Auth Configuration
	JWTSecret            string
	TokenTTL             time.Duration
	DefaultAdminUser     string
	DefaultAdminPassword string
	MinPasswordLength    int

	// Upload Configuration
	UploadDir      string
	MaxUploadBytes int64
	ImageMaxWidth  int
	ImageMaxHeight int
	ImageQuality   int
	ThumbMaxWidth  int
	ThumbMaxHeight int
	ThumbQuality   int

	// Public Site Configuration
	SiteName        string
	CatalogPageSize int
	DefaultPageKeys []string
	TrackingEnabled bool

	// Collaborator Configuration
	ResendAPIKey     string
	ContactEmailFrom string
	ContactEmailTo   string
	TranslateAPIKey  string

	// Live Stats Configuration
	LiveStatsInterval time.Duration
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database Configuration
	DatabasePath = getEnvString("DATABASE_PATH", "database.sqlite")
	LibSQLURL = getEnvString("LIBSQL_DATABASE_URL", "")
	LibSQLAuthToken = getEnvString("LIBSQL_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxIdleMin = getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 3)

	// Auth Configuration
	JWTSecret = getEnvString("JWT_SECRET_KEY", "pearl-jwt-secret-key-2024")
	TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)
	DefaultAdminUser = getEnvString("DEFAULT_ADMIN_USER", "admin")
	DefaultAdminPassword = getEnvString("DEFAULT_ADMIN_PASSWORD", "pearl2024")
	MinPasswordLength = getEnvInt("MIN_PASSWORD_LENGTH", 6)

	// Upload Configuration
	UploadDir = getEnvString("UPLOAD_DIR", "uploads")
	MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_MB", 16)) * 1024 * 1024
	ImageMaxWidth = getEnvInt("IMAGE_MAX_WIDTH", 1200)
	ImageMaxHeight = getEnvInt("IMAGE_MAX_HEIGHT", 1200)
	ImageQuality = getEnvInt("IMAGE_QUALITY", 85)
	ThumbMaxWidth = getEnvInt("THUMB_MAX_WIDTH", 400)
	ThumbMaxHeight = getEnvInt("THUMB_MAX_HEIGHT", 400)
	ThumbQuality = getEnvInt("THUMB_QUALITY", 80)

	// Public Site Configuration
	SiteName = getEnvString("SITE_NAME", "Pearl Atelier")
	CatalogPageSize = getEnvInt("CATALOG_PAGE_SIZE", 30)
	DefaultPageKeys = []string{"home", "about", "contact"}
	TrackingEnabled = getEnvBool("TRACKING_ENABLED", true)

	// Collaborator Configuration
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	ContactEmailFrom = getEnvString("CONTACT_EMAIL_FROM", "noreply@pearlatelier.example")
	ContactEmailTo = getEnvString("CONTACT_EMAIL_TO", "")
	TranslateAPIKey = getEnvString("TRANSLATE_API_KEY", "")

	// Live Stats Configuration
	LiveStatsInterval = getEnvDuration("LIVE_STATS_INTERVAL", 20*time.Second)
}
