package services

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"testing"

	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/media"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	persistence "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryService(t *testing.T) (*GalleryService, *persistence.SQLGalleryRepository) {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		DefaultLevel:  slog.LevelError,
		ChannelLevels: map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewTableCreator().CreateSchema(db.DB))

	repo := persistence.NewSQLGalleryRepository(db)
	processor := media.NewImageProcessor(t.TempDir())
	return NewGalleryService(logger, performance.NewTracker(100), repo, processor), repo
}

func pngBytes(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return &buf
}

func TestGalleryUploadPersistsAltText(t *testing.T) {
	svc, repo := newGalleryService(t)

	img, err := svc.Upload(pngBytes(t), "pearl.png", "珍珠特写", "Pearl close-up", "手工珍珠项链特写")
	require.NoError(t, err)
	assert.Equal(t, "珍珠特写", img.Title)
	assert.Equal(t, "Pearl close-up", img.TitleEn)
	assert.Equal(t, "手工珍珠项链特写", img.Alt)
	assert.True(t, img.IsVisible)

	stored, err := repo.FindByID(img.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "手工珍珠项链特写", stored.Alt)
}

func TestGalleryUploadRejectsUnsupportedType(t *testing.T) {
	svc, _ := newGalleryService(t)

	_, err := svc.Upload(bytes.NewReader([]byte("plain text")), "notes.txt", "", "", "")
	assert.Error(t, err)
}
