// Package media provides image processing for uploads: format
// validation, compression and thumbnail generation.
package media

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// AllowedFile reports whether a filename carries a supported image
// extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return allowedExtensions[ext]
}

// Ext returns the normalized extension for a filename (jpeg → jpg).
func Ext(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	return ext
}

// ImageProcessor handles upload processing under a base directory.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates a new ImageProcessor instance.
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{basePath: basePath}
}

// SaveUpload writes an uploaded stream under the base directory, then
// compresses it in place and generates a `_thumb` thumbnail. It returns
// the public path of the stored file.
func (p *ImageProcessor) SaveUpload(r io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(p.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	target := filepath.Join(p.basePath, filename)
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := p.Compress(target, config.ImageMaxWidth, config.ImageMaxHeight, config.ImageQuality); err != nil {
		os.Remove(target)
		return "", err
	}
	if err := p.Thumbnail(target, config.ThumbMaxWidth, config.ThumbMaxHeight, config.ThumbQuality); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

// Compress bounds an image to maxW×maxH in place, keeping aspect ratio.
// Images already within bounds are only re-encoded.
func (p *ImageProcessor) Compress(path string, maxW, maxH, quality int) error {
	img, err := p.open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	fitted := imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	if err := p.save(fitted, path, quality); err != nil {
		return fmt.Errorf("failed to save compressed image: %w", err)
	}
	return nil
}

// Thumbnail writes a bounded copy next to the source with a `_thumb`
// suffix before the extension.
func (p *ImageProcessor) Thumbnail(path string, maxW, maxH, quality int) error {
	img, err := p.open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	thumb := imaging.Fit(img, maxW, maxH, imaging.Lanczos)

	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + "_thumb" + ext
	if err := p.save(thumb, thumbPath, quality); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return nil
}

// Remove deletes a stored file and its thumbnail, ignoring files that
// are already gone.
func (p *ImageProcessor) Remove(filename string) {
	target := filepath.Join(p.basePath, filename)
	os.Remove(target)

	ext := filepath.Ext(target)
	os.Remove(strings.TrimSuffix(target, ext) + "_thumb" + ext)
}

// open decodes an image, routing webp through its dedicated decoder.
func (p *ImageProcessor) open(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return webp.Decode(f)
	}
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// save encodes an image with format-specific quality settings.
func (p *ImageProcessor) save(img image.Image, path string, quality int) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Quality: float32(quality)})
	}
	return imaging.Save(img, path, imaging.JPEGQuality(quality))
}
