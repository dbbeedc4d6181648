// Package seed loads the demo catalog: a seller account plus fifteen
// bilingual listings with downloaded placeholder photos.
package seed

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"estate-portal/internal/database"
	"estate-portal/internal/models"
	"estate-portal/internal/search"
	"estate-portal/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoUsername = "seller_demo"
	demoEmail    = "seller@demo.com"
	demoPassword = "demo1234"

	imageURLPattern = "https://picsum.photos/seed/%d/800/600"
)

// Options control a seeding run.
type Options struct {
	// SkipImages leaves listings without photos, for offline runs.
	SkipImages bool

	// ImageBaseURL overrides the placeholder photo service.
	ImageBaseURL string

	BcryptCost int
}

// Seeder loads the demo catalog into the database and media store.
type Seeder struct {
	db     *database.GormDB
	store  *storage.MediaStore
	search *search.SearchClient
	log    *logrus.Logger
	client *http.Client
	rand   *rand.Rand
}

func NewSeeder(db *database.GormDB, store *storage.MediaStore, sc *search.SearchClient, log *logrus.Logger) *Seeder {
	return &Seeder{
		db:     db,
		store:  store,
		search: sc,
		log:    log,
		client: &http.Client{Timeout: 15 * time.Second},
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds the demo seller and catalog. Listings that already exist
// (matched by English title) are left untouched, so reruns are safe.
func (s *Seeder) Run(opts Options) error {
	seller, err := s.ensureSeller(opts)
	if err != nil {
		return fmt.Errorf("failed to ensure demo seller: %w", err)
	}

	created := 0
	for _, entry := range Catalog {
		property, wasCreated, err := s.ensureListing(seller, entry)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", entry.TitleEN, err)
		}
		if !wasCreated {
			continue
		}
		created++
		s.log.WithField("title", property.TitleEN).Info("seed: created listing")

		if !opts.SkipImages {
			s.attachImages(property, opts.ImageBaseURL)
		}

		if s.search != nil {
			if err := s.search.IndexProperty(property); err != nil {
				s.log.WithError(err).WithField("property_id", property.ID).Warn("seed: indexing failed")
			}
		}
	}

	s.log.WithField("created", created).Info("seed: completed")
	return nil
}

// ensureSeller finds or creates the demo seller account.
func (s *Seeder) ensureSeller(opts Options) (*models.User, error) {
	user, err := s.db.GetUserByUsername(demoUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cost)
	if err != nil {
		return nil, err
	}

	seller := &models.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Seller",
	}
	profile := &models.UserProfile{UserType: models.UserTypeSeller}
	if err := s.db.CreateUserWithProfile(seller, profile); err != nil {
		return nil, err
	}
	s.log.WithField("username", demoUsername).Info("seed: created demo seller")
	return seller, nil
}

// ensureListing creates the listing unless one with the same English
// title already exists.
func (s *Seeder) ensureListing(seller *models.User, entry Entry) (*models.Property, bool, error) {
	var existing models.Property
	err := s.db.DB().Where("title_en = ?", entry.TitleEN).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	property := &models.Property{
		OwnerID:       seller.ID,
		TitleEN:       entry.TitleEN,
		TitleAR:       entry.TitleAR,
		DescriptionEN: entry.DescriptionEN,
		DescriptionAR: entry.DescriptionAR,
		LocationEN:    entry.LocationEN,
		LocationAR:    entry.LocationAR,
		Price:         entry.Price,
		PropertyType:  entry.PropertyType,
		SaleType:      entry.SaleType,
		Phone:         entry.Phone,
		IsActive:      true,
		Views:         s.rand.Intn(491) + 10,
	}
	if err := s.db.CreatePropertyWithImages(property, nil); err != nil {
		return nil, false, err
	}
	return property, true, nil
}

// attachImages downloads 1 to 3 placeholder photos for the listing.
// Download failures are logged and skipped; the listing stays.
func (s *Seeder) attachImages(property *models.Property, baseURL string) {
	if baseURL == "" {
		baseURL = imageURLPattern
	}

	count := s.rand.Intn(3) + 1
	for i := 0; i < count; i++ {
		imgSeed := int(property.ID)*100 + i
		url := fmt.Sprintf(baseURL, imgSeed)

		data, err := s.download(url)
		if err != nil {
			s.log.WithError(err).WithField("url", url).Warn("seed: image download failed")
			continue
		}

		name := fmt.Sprintf("property_%d_%d.jpg", property.ID, i)
		rel, err := s.store.Save("properties", name, data)
		if err != nil {
			s.log.WithError(err).Warn("seed: image write failed")
			continue
		}

		image := models.PropertyImage{
			PropertyID:  property.ID,
			StoragePath: rel,
			FileName:    name,
			ContentType: http.DetectContentType(data),
			SortOrder:   i,
		}
		if err := s.db.DB().Create(&image).Error; err != nil {
			s.log.WithError(err).Warn("seed: image row create failed")
			_ = s.store.Remove(rel)
		}
	}
}

func (s *Seeder) download(url string) ([]byte, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
