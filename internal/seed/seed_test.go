package seed

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"estate-portal/internal/database"
	"estate-portal/internal/models"
	"estate-portal/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}

func newTestSeeder(t *testing.T) (*Seeder, *database.GormDB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db := database.NewFromDB(gdb)
	require.NoError(t, db.InitSchema())

	store, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewSeeder(db, store, nil, log), db
}

func TestRunCreatesCatalog(t *testing.T) {
	seeder, db := newTestSeeder(t)

	require.NoError(t, seeder.Run(Options{SkipImages: true, BcryptCost: bcrypt.MinCost}))

	var count int64
	require.NoError(t, db.DB().Model(&models.Property{}).Count(&count).Error)
	assert.Equal(t, int64(len(Catalog)), count)

	seller, err := db.GetUserByUsername("seller_demo")
	require.NoError(t, err)
	assert.True(t, seller.IsSeller())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte("demo1234")))

	// every listing belongs to the demo seller with plausible views
	var properties []models.Property
	require.NoError(t, db.DB().Find(&properties).Error)
	for _, p := range properties {
		assert.Equal(t, seller.ID, p.OwnerID)
		assert.GreaterOrEqual(t, p.Views, 10)
		assert.LessOrEqual(t, p.Views, 500)
		assert.True(t, p.IsActive)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	seeder, db := newTestSeeder(t)

	require.NoError(t, seeder.Run(Options{SkipImages: true, BcryptCost: bcrypt.MinCost}))
	require.NoError(t, seeder.Run(Options{SkipImages: true, BcryptCost: bcrypt.MinCost}))

	var count int64
	require.NoError(t, db.DB().Model(&models.Property{}).Count(&count).Error)
	assert.Equal(t, int64(len(Catalog)), count)

	var users int64
	require.NoError(t, db.DB().Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestRunDownloadsImages(t *testing.T) {
	seeder, db := newTestSeeder(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(jpegBytes)
	}))
	defer srv.Close()

	require.NoError(t, seeder.Run(Options{
		ImageBaseURL: srv.URL + "/seed/%d/800/600",
		BcryptCost:   bcrypt.MinCost,
	}))

	var images int64
	require.NoError(t, db.DB().Model(&models.PropertyImage{}).Count(&images).Error)
	// 1 to 3 images per listing
	assert.GreaterOrEqual(t, images, int64(len(Catalog)))
	assert.LessOrEqual(t, images, int64(3*len(Catalog)))

	var img models.PropertyImage
	require.NoError(t, db.DB().First(&img).Error)
	assert.Equal(t, 0, img.SortOrder)
	assert.NotEmpty(t, img.StoragePath)
}

func TestRunToleratesDownloadFailures(t *testing.T) {
	seeder, db := newTestSeeder(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	require.NoError(t, seeder.Run(Options{
		ImageBaseURL: srv.URL + "/seed/%d/800/600",
		BcryptCost:   bcrypt.MinCost,
	}))

	// listings survive even when every download fails
	var count int64
	require.NoError(t, db.DB().Model(&models.Property{}).Count(&count).Error)
	assert.Equal(t, int64(len(Catalog)), count)

	var images int64
	require.NoError(t, db.DB().Model(&models.PropertyImage{}).Count(&images).Error)
	assert.Zero(t, images)
}

func TestCatalogCoversAllTypes(t *testing.T) {
	types := make(map[models.PropertyType]bool)
	sales := make(map[models.SaleType]bool)
	for _, e := range Catalog {
		types[e.PropertyType] = true
		sales[e.SaleType] = true
		assert.NotEmpty(t, e.TitleAR)
		assert.NotEmpty(t, e.LocationAR)
		assert.Positive(t, e.Price)
	}
	assert.Len(t, types, len(models.PropertyTypes))
	assert.Len(t, sales, len(models.SaleTypes))
}
