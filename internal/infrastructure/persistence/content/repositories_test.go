package content

import (
	"testing"

	entities "github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *database.DB {
	t.Helper()
	// cache=shared so every pooled connection sees the same in-memory DB.
	db, err := database.NewConnection("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewTableCreator().CreateSchema(db.DB))
	return db
}

func TestJewelryCRUD(t *testing.T) {
	db := setupDB(t)
	images := NewSQLImageRepository(db)
	repo := NewSQLJewelryRepository(db, images)

	item := &entities.Jewelry{
		Name:      "月光项链",
		NameEn:    "Moonlight Necklace",
		Category:  "necklaces",
		IsVisible: true,
	}
	require.NoError(t, repo.Create(item))
	require.NotZero(t, item.ID)

	loaded, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "月光项链", loaded.Name)
	assert.NotNil(t, loaded.Images, "images is always a slice, never null")

	loaded.Name = "新名字"
	loaded.IsVisible = false
	require.NoError(t, repo.Update(loaded))

	reloaded, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "新名字", reloaded.Name)
	assert.False(t, reloaded.IsVisible)

	missing, err := repo.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.Update(&entities.Jewelry{ID: 9999, Name: "x"}))
}

func TestJewelryListFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLJewelryRepository(db, NewSQLImageRepository(db))

	specs := []struct {
		name     string
		visible  bool
		featured bool
		order    int
	}{
		{"a", true, true, 2},
		{"b", true, false, 1},
		{"c", false, true, 3},
	}
	for _, s := range specs {
		require.NoError(t, repo.Create(&entities.Jewelry{
			Name: s.name, IsVisible: s.visible, IsFeatured: s.featured, OrderIndex: s.order,
		}))
	}

	visible, err := repo.FindAll(ListFilter{VisibleOnly: true})
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "b", visible[0].Name, "ordered by order_index")
	assert.Equal(t, "a", visible[1].Name)

	featured, err := repo.FindAll(ListFilter{VisibleOnly: true, FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "a", featured[0].Name)

	all, err := repo.FindAll(ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := repo.FindAll(ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	total, visibleCount, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, visibleCount)
}

func TestJewelryDeleteReleasesImages(t *testing.T) {
	db := setupDB(t)
	images := NewSQLImageRepository(db)
	repo := NewSQLJewelryRepository(db, images)

	item := &entities.Jewelry{Name: "耳环", IsVisible: true}
	require.NoError(t, repo.Create(item))

	img := &entities.Image{Filename: "a.jpg", OriginalName: "a.jpg", Path: "/uploads/a.jpg", JewelryID: &item.ID}
	require.NoError(t, images.Create(img))

	withImages, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	require.Len(t, withImages.Images, 1)

	require.NoError(t, repo.Delete(item.ID))

	orphan, err := images.FindByID(img.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.JewelryID, "deleting a piece returns its images to the pool")
}

func TestImageReorder(t *testing.T) {
	db := setupDB(t)
	images := NewSQLImageRepository(db)

	var ids []int64
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		img := &entities.Image{Filename: name, OriginalName: name, Path: "/uploads/" + name}
		require.NoError(t, images.Create(img))
		ids = append(ids, img.ID)
	}

	require.NoError(t, images.Reorder([]entities.ReorderEntry{
		{ID: ids[0], OrderIndex: 2},
		{ID: ids[1], OrderIndex: 0},
		{ID: ids[2], OrderIndex: 1},
	}))

	loaded, err := images.FindByID(ids[0])
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.OrderIndex)
}

func TestGalleryUploadOrderAndReorder(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLGalleryRepository(db)

	first := &entities.GalleryImage{Filename: "g1.jpg", OriginalName: "g1.jpg", Path: "/uploads/g1.jpg", IsVisible: true}
	require.NoError(t, repo.Create(first))
	second := &entities.GalleryImage{Filename: "g2.jpg", OriginalName: "g2.jpg", Path: "/uploads/g2.jpg", IsVisible: true}
	require.NoError(t, repo.Create(second))

	assert.Greater(t, second.OrderIndex, first.OrderIndex, "new uploads append at the end")

	hidden := &entities.GalleryImage{Filename: "g3.jpg", OriginalName: "g3.jpg", Path: "/uploads/g3.jpg", IsVisible: false}
	require.NoError(t, repo.Create(hidden))

	visible, err := repo.FindAll(true)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	all, err := repo.FindAll(false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Unknown ids in a reorder list are skipped, not an error.
	require.NoError(t, repo.Reorder([]entities.ReorderEntry{
		{ID: first.ID, OrderIndex: 10},
		{ID: 9999, OrderIndex: 0},
	}))
	moved, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, moved.OrderIndex)
}

func TestPageUpsert(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLPageRepository(db)

	page, err := repo.Upsert("about", `{"title":"关于"}`)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "about", page.PageKey)

	updated, err := repo.Upsert("about", `{"title":"新"}`)
	require.NoError(t, err)
	assert.Equal(t, page.ID, updated.ID, "upsert keeps the row")
	assert.Equal(t, `{"title":"新"}`, updated.Content)

	missing, err := repo.FindByKey("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
