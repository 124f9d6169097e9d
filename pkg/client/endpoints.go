package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Login authenticates and saves the returned token. A 401 here means
// bad credentials, not an expired session, so it bypasses the
// unauthorized interceptor.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	err := c.request(ctx, http.MethodPost, "/api/auth/login", body, &result, requestOptions{skipIntercept: true})
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(result.Token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}
	return &result, nil
}

// Logout clears the stored token. The server keeps no session state.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// ChangePassword rotates the admin password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.request(ctx, http.MethodPost, "/api/auth/change-password", body, nil, requestOptions{})
}

// ListJewelry fetches the catalog; all=true includes hidden pieces.
func (c *Client) ListJewelry(ctx context.Context, all bool) ([]Jewelry, error) {
	endpoint := "/api/jewelry"
	if all {
		endpoint += "?all=true"
	}
	var items []Jewelry
	if err := c.get(ctx, endpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetJewelry fetches one piece.
func (c *Client) GetJewelry(ctx context.Context, id int64) (*Jewelry, error) {
	var item Jewelry
	if err := c.get(ctx, fmt.Sprintf("/api/jewelry/%d", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateJewelry adds a piece.
func (c *Client) CreateJewelry(ctx context.Context, input JewelryInput) (*Jewelry, error) {
	var item Jewelry
	err := c.request(ctx, http.MethodPost, "/api/jewelry", input, &item, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateJewelry submits the full record for a piece.
func (c *Client) UpdateJewelry(ctx context.Context, id int64, input JewelryInput) (*Jewelry, error) {
	var item Jewelry
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/jewelry/%d", id), input, &item, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteJewelry removes a piece.
func (c *Client) DeleteJewelry(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/jewelry/%d", id), nil, nil, requestOptions{})
}

// ListImages fetches the image pool.
func (c *Client) ListImages(ctx context.Context) ([]Image, error) {
	var images []Image
	if err := c.get(ctx, "/api/images", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// UploadFile is one local file to send.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadImages sends one or more files to the pool, optionally
// assigning them to a jewelry piece.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile, jewelryID *int64) ([]Image, error) {
	fields := map[string]string{}
	if jewelryID != nil {
		fields["jewelry_id"] = fmt.Sprintf("%d", *jewelryID)
	}
	parts := make([]filePart, 0, len(files))
	for _, f := range files {
		parts = append(parts, filePart{field: "images", name: f.Name, r: f.Reader})
	}

	body, contentType, err := multipartBody(fields, parts)
	if err != nil {
		return nil, err
	}

	var result struct {
		Images []Image `json:"images"`
	}
	err = c.request(ctx, http.MethodPost, "/api/upload", nil, &result, requestOptions{
		rawBody:     body,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return result.Images, nil
}

// UpdateImage changes an image's assignment, captions or position.
func (c *Client) UpdateImage(ctx context.Context, id int64, input ImageInput) (*Image, error) {
	var img Image
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/images/%d", id), input, &img, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteImage removes an image.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/images/%d", id), nil, nil, requestOptions{})
}

// ReorderImages submits the full image order list.
func (c *Client) ReorderImages(ctx context.Context, order []ReorderEntry) error {
	body := map[string]any{"order": order}
	return c.request(ctx, http.MethodPost, "/api/images/reorder", body, nil, requestOptions{})
}

// ListGallery fetches gallery images; all=true includes hidden ones
// and requires a session.
func (c *Client) ListGallery(ctx context.Context, all bool) ([]GalleryImage, error) {
	endpoint := "/api/gallery"
	if all {
		endpoint = "/api/gallery/all"
	}
	var images []GalleryImage
	if err := c.get(ctx, endpoint, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// UploadGalleryImage sends one gallery image with its titles and alt
// text.
func (c *Client) UploadGalleryImage(ctx context.Context, file UploadFile, title, titleEn, alt string) (*GalleryImage, error) {
	fields := map[string]string{"title": title, "title_en": titleEn, "alt": alt}
	body, contentType, err := multipartBody(fields, []filePart{
		{field: "image", name: file.Name, r: file.Reader},
	})
	if err != nil {
		return nil, err
	}

	var img GalleryImage
	err = c.request(ctx, http.MethodPost, "/api/gallery/upload", nil, &img, requestOptions{
		rawBody:     body,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// UpdateGalleryImage changes a gallery image's titles or visibility.
func (c *Client) UpdateGalleryImage(ctx context.Context, id int64, input GalleryInput) (*GalleryImage, error) {
	var img GalleryImage
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/gallery/%d", id), input, &img, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteGalleryImage removes a gallery image.
func (c *Client) DeleteGalleryImage(ctx context.Context, id int64) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/gallery/%d", id), nil, nil, requestOptions{})
}

// ReorderGallery submits the full gallery order list.
func (c *Client) ReorderGallery(ctx context.Context, order []ReorderEntry) error {
	body := map[string]any{"order": order}
	return c.request(ctx, http.MethodPost, "/api/gallery/reorder", body, nil, requestOptions{})
}

// ListPages fetches all stored pages.
func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	var pages []Page
	if err := c.get(ctx, "/api/pages", &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// GetPageFields fetches a page's parsed field map.
func (c *Client) GetPageFields(ctx context.Context, key string) (map[string]string, error) {
	fields := map[string]string{}
	if err := c.get(ctx, "/api/pages/"+key, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// SavePage stores a page's field map.
func (c *Client) SavePage(ctx context.Context, key string, fields map[string]string) (*Page, error) {
	var page Page
	err := c.request(ctx, http.MethodPut, "/api/pages/"+key, fields, &page, requestOptions{})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// AnalyticsStats fetches the visit counters.
func (c *Client) AnalyticsStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/api/analytics/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ContentCounters fetches the content counters.
func (c *Client) ContentCounters(ctx context.Context) (*ContentStats, error) {
	var stats ContentStats
	if err := c.get(ctx, "/api/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Translate converts Chinese source text to English.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	body := map[string]string{"text": text}
	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	err := c.request(ctx, http.MethodPost, "/api/translate", body, &result, requestOptions{})
	if err != nil {
		return "", err
	}
	return result.TranslatedText, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/api/health", nil)
}
