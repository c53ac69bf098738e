package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafe_backend/internal/feature/cafes/domain/entity"
	"cafe_backend/internal/feature/cafes/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Cafe{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestCafe(name, mapURL string) *entity.Cafe {
	return &entity.Cafe{
		Name:        name,
		MapURL:      mapURL,
		ImgURL:      "http://i.example/" + name + ".png",
		Location:    "Town",
		Seats:       "10",
		CoffeePrice: "2.50",
	}
}

func TestCafeGorm_CreateAndList(t *testing.T) {
	repo := NewCafeGorm(setupTestDB(t))

	require.NoError(t, repo.Create(context.Background(), newTestCafe("First", "http://m.example/1")))
	require.NoError(t, repo.Create(context.Background(), newTestCafe("Second", "http://m.example/2")))

	cafes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cafes, 2)
	// Primary-key order keeps the listing stable.
	assert.Equal(t, "First", cafes[0].Name)
	assert.Equal(t, "Second", cafes[1].Name)
}

func TestCafeGorm_Create_DuplicateMapURL(t *testing.T) {
	repo := NewCafeGorm(setupTestDB(t))

	require.NoError(t, repo.Create(context.Background(), newTestCafe("First", "http://m.example/same")))

	err := repo.Create(context.Background(), newTestCafe("Second", "http://m.example/same"))
	assert.ErrorIs(t, err, usecase.ErrMapURLTaken)
}

func TestCafeGorm_FindByID(t *testing.T) {
	repo := NewCafeGorm(setupTestDB(t))
	cafe := newTestCafe("Joe's", "http://m.example/joe")
	require.NoError(t, repo.Create(context.Background(), cafe))

	t.Run("existing cafe", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), cafe.ID)
		require.NoError(t, err)
		assert.Equal(t, "Joe's", found.Name)
	})

	t.Run("missing cafe", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrCafeNotFound)
	})
}

func TestCafeGorm_FindByMapURL(t *testing.T) {
	repo := NewCafeGorm(setupTestDB(t))
	require.NoError(t, repo.Create(context.Background(), newTestCafe("Joe's", "http://m.example/joe")))

	found, err := repo.FindByMapURL(context.Background(), "http://m.example/joe")
	require.NoError(t, err)
	assert.Equal(t, "Joe's", found.Name)

	_, err = repo.FindByMapURL(context.Background(), "http://m.example/other")
	assert.ErrorIs(t, err, usecase.ErrCafeNotFound)
}

func TestCafeGorm_Save_FullReplace(t *testing.T) {
	repo := NewCafeGorm(setupTestDB(t))
	cafe := newTestCafe("Joe's", "http://m.example/joe")
	cafe.HasSockets = true
	require.NoError(t, repo.Create(context.Background(), cafe))

	// Resubmission with wifi ticked and sockets absent: every field is
	// overwritten, booleans included.
	replacement := newTestCafe("Joe's", "http://m.example/joe")
	replacement.ID = cafe.ID
	replacement.HasWifi = true
	require.NoError(t, repo.Save(context.Background(), replacement))

	found, err := repo.FindByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	assert.True(t, found.HasWifi)
	assert.False(t, found.HasSockets, "unticked flag must be written back as false")
	assert.Equal(t, "Town", found.Location)
	assert.Equal(t, "2.50", found.CoffeePrice)
}

func TestCafeGorm_Delete(t *testing.T) {
	t.Run("deleted cafe is gone", func(t *testing.T) {
		repo := NewCafeGorm(setupTestDB(t))
		cafe := newTestCafe("Joe's", "http://m.example/joe")
		require.NoError(t, repo.Create(context.Background(), cafe))

		require.NoError(t, repo.Delete(context.Background(), cafe.ID))

		_, err := repo.FindByID(context.Background(), cafe.ID)
		assert.ErrorIs(t, err, usecase.ErrCafeNotFound)
	})

	t.Run("missing cafe", func(t *testing.T) {
		repo := NewCafeGorm(setupTestDB(t))
		err := repo.Delete(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrCafeNotFound)
	})
}
