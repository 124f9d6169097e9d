package client

import "time"

// Admin is the admin account shape returned by login.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResult is the login response.
type LoginResult struct {
	Token string `json:"token"`
	User  Admin  `json:"user"`
}

// Image is one pool image, optionally assigned to a jewelry piece.
type Image struct {
	ID            int64     `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"original_name"`
	Path          string    `json:"path"`
	JewelryID     *int64    `json:"jewelry_id"`
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
}

// Jewelry is one catalog piece with its ordered images.
type Jewelry struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"name_en"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	OrderIndex    int       `json:"order_index"`
	IsVisible     bool      `json:"is_visible"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	Images        []Image   `json:"images"`
}

// JewelryInput carries the mutable fields of a jewelry piece.
type JewelryInput struct {
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	OrderIndex    int    `json:"order_index"`
	IsVisible     *bool  `json:"is_visible,omitempty"`
	IsFeatured    *bool  `json:"is_featured,omitempty"`
}

// ImageInput carries the mutable fields of a pool image.
type ImageInput struct {
	JewelryID     *int64 `json:"jewelry_id"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	OrderIndex    int    `json:"order_index"`
}

// GalleryImage is one inspiration gallery entry.
type GalleryImage struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	Title        string    `json:"title"`
	TitleEn      string    `json:"title_en"`
	Alt          string    `json:"alt"`
	OrderIndex   int       `json:"order_index"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
}

// GalleryInput carries the mutable fields of a gallery image.
type GalleryInput struct {
	Title     string `json:"title"`
	TitleEn   string `json:"title_en"`
	Alt       string `json:"alt"`
	IsVisible *bool  `json:"is_visible,omitempty"`
}

// Page is one stored content page.
type Page struct {
	ID        int64     `json:"id"`
	PageKey   string    `json:"page_key"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReorderEntry assigns one record its new position.
type ReorderEntry struct {
	ID         int64 `json:"id"`
	OrderIndex int   `json:"order_index"`
}

// TopPage is one entry of the most-visited list.
type TopPage struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DailyStat is one day of the PV trend.
type DailyStat struct {
	Date string `json:"date"`
	PV   int    `json:"pv"`
}

// Stats is the visit statistics summary.
type Stats struct {
	TodayPV    int         `json:"todayPV"`
	TodayUV    int         `json:"todayUV"`
	WeekPV     int         `json:"weekPV"`
	MonthPV    int         `json:"monthPV"`
	TotalPV    int         `json:"totalPV"`
	TopPages   []TopPage   `json:"topPages"`
	DailyStats []DailyStat `json:"dailyStats"`
}

// ContentStats is the content counter summary.
type ContentStats struct {
	JewelryCount int `json:"jewelryCount"`
	ImageCount   int `json:"imageCount"`
	VisibleCount int `json:"visibleCount"`
}
