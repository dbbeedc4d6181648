package database

import (
	"sort"
	"strings"

	"estate-portal/internal/models"
	"estate-portal/internal/pagination"

	"gorm.io/gorm"
)

// PropertyFilters are the optional listing filter parameters. A zero
// field imposes no constraint; supplied fields are combined as a
// conjunction. Location and Search are case-insensitive substring
// matches across both language columns.
type PropertyFilters struct {
	PropertyType string
	SaleType     string
	Location     string
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
}

// PropertyPage is one page of filtered listings plus page metadata.
type PropertyPage struct {
	Properties []models.Property
	Page       pagination.Page
}

// ListingFacets are the distinct values offered as listing filter
// controls. Locations union both language columns into one set.
type ListingFacets struct {
	Locations     []string              `json:"locations"`
	PropertyTypes []models.PropertyType `json:"property_types"`
	SaleTypes     []models.SaleType     `json:"sale_types"`
}

// applyFilters builds the conjunctive filter query over active rows.
func applyFilters(db *gorm.DB, f PropertyFilters) *gorm.DB {
	q := db.Model(&models.Property{}).Where("is_active = ?", true)

	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.SaleType != "" {
		q = q.Where("sale_type = ?", f.SaleType)
	}
	if f.Location != "" {
		pattern := "%" + strings.ToLower(f.Location) + "%"
		q = q.Where("lower(location_en) LIKE ? OR lower(location_ar) LIKE ?", pattern, pattern)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"lower(title_en) LIKE ? OR lower(title_ar) LIKE ? OR lower(description_en) LIKE ? OR lower(description_ar) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	return q
}

// ListProperties runs the listing pipeline: filter, order by creation
// time descending, then slice out the requested page. Out-of-range
// page numbers clamp rather than fail. Images are preloaded in display
// order.
func (gdb *GormDB) ListProperties(f PropertyFilters, requestedPage int) (*PropertyPage, error) {
	q := applyFilters(gdb.db, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	page := pagination.New(int(total), pagination.PerPage, requestedPage)

	var properties []models.Property
	err := q.
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return &PropertyPage{Properties: properties, Page: page}, nil
}

// GetFacets computes the filter facets over active listings: the
// distinct location strings of both languages unioned into one sorted
// set, plus the static type enumerations.
func (gdb *GormDB) GetFacets() (*ListingFacets, error) {
	var locationsEN, locationsAR []string

	base := gdb.db.Model(&models.Property{}).Where("is_active = ?", true)
	if err := base.Session(&gorm.Session{}).Distinct("location_en").Pluck("location_en", &locationsEN).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Distinct("location_ar").Pluck("location_ar", &locationsAR).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(locationsEN)+len(locationsAR))
	locations := make([]string, 0, len(seen))
	for _, loc := range append(locationsEN, locationsAR...) {
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	return &ListingFacets{
		Locations:     locations,
		PropertyTypes: models.PropertyTypes,
		SaleTypes:     models.SaleTypes,
	}, nil
}

// GetActiveProperty retrieves an active property with its images in
// display order. Inactive or missing rows return ErrRecordNotFound.
func (gdb *GormDB) GetActiveProperty(id uint) (*models.Property, error) {
	var property models.Property
	err := gdb.db.
		Where("id = ? AND is_active = ?", id, true).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetProperty retrieves a property regardless of active flag, with
// images in display order. Used by owner edit flows.
func (gdb *GormDB) GetProperty(id uint) (*models.Property, error) {
	var property models.Property
	err := gdb.db.
		Where("id = ?", id).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetAllActiveProperties returns every active listing, newest first.
// Used by the search reindex job.
func (gdb *GormDB) GetAllActiveProperties() ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		Find(&properties).Error
	return properties, err
}

// IncrementViews bumps the view counter by one. This is a plain
// read-modify-write: concurrent viewers may lose updates, which is an
// accepted approximation for a popularity counter.
func (gdb *GormDB) IncrementViews(p *models.Property) error {
	p.Views++
	return gdb.db.Model(p).UpdateColumn("views", p.Views).Error
}

// CreatePropertyWithImages persists a new property and all of its
// images in one transaction. Any failure rolls the whole write back so
// no orphan images are left behind.
func (gdb *GormDB) CreatePropertyWithImages(p *models.Property, images []models.PropertyImage) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].PropertyID = p.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ImageReconciliation describes the image set changes submitted with a
// property update: rows to delete, new rows to add, and in-place order
// changes keyed by image ID.
type ImageReconciliation struct {
	Add     []models.PropertyImage
	Remove  []int64
	Reorder map[int64]int
}

// UpdatePropertyWithImages overwrites the property's fields and
// reconciles its image set in one transaction. Removed rows' storage
// paths are returned so the caller can clean up files after commit.
// Only images belonging to the property are touched.
func (gdb *GormDB) UpdatePropertyWithImages(p *models.Property, rec ImageReconciliation) ([]string, error) {
	var removedPaths []string

	err := gdb.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}

		if len(rec.Remove) > 0 {
			var doomed []models.PropertyImage
			if err := tx.Where("property_id = ? AND id IN ?", p.ID, rec.Remove).Find(&doomed).Error; err != nil {
				return err
			}
			for _, img := range doomed {
				removedPaths = append(removedPaths, img.StoragePath)
			}
			if err := tx.Where("property_id = ? AND id IN ?", p.ID, rec.Remove).
				Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
		}

		for id, order := range rec.Reorder {
			if err := tx.Model(&models.PropertyImage{}).
				Where("property_id = ? AND id = ?", p.ID, id).
				Update("sort_order", order).Error; err != nil {
				return err
			}
		}

		for i := range rec.Add {
			rec.Add[i].PropertyID = p.ID
		}
		if len(rec.Add) > 0 {
			if err := tx.Create(&rec.Add).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return removedPaths, nil
}

// DeleteProperty removes a property and its images. Image rows go
// first, then the parent, inside one transaction; the foreign-key
// cascade is not relied on. Returns the removed images' storage paths
// for file cleanup.
func (gdb *GormDB) DeleteProperty(id uint) ([]string, error) {
	var paths []string

	err := gdb.db.Transaction(func(tx *gorm.DB) error {
		var images []models.PropertyImage
		if err := tx.Where("property_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			paths = append(paths, img.StoragePath)
		}

		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// CountProperties returns listing counts grouped for the admin stats
// endpoint.
func (gdb *GormDB) CountProperties() (map[string]int64, error) {
	counts := make(map[string]int64)

	var active, inactive int64
	if err := gdb.db.Model(&models.Property{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return nil, err
	}
	if err := gdb.db.Model(&models.Property{}).Where("is_active = ?", false).Count(&inactive).Error; err != nil {
		return nil, err
	}
	counts["active"] = active
	counts["inactive"] = inactive
	counts["total"] = active + inactive

	var totalViews int64
	if err := gdb.db.Model(&models.Property{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(views), 0)").Scan(&totalViews).Error; err != nil {
		return nil, err
	}
	counts["views_total"] = totalViews

	for _, pt := range models.PropertyTypes {
		var n int64
		if err := gdb.db.Model(&models.Property{}).
			Where("is_active = ? AND property_type = ?", true, pt).Count(&n).Error; err != nil {
			return nil, err
		}
		counts["type_"+strings.ToLower(string(pt))] = n
	}
	for _, st := range models.SaleTypes {
		var n int64
		if err := gdb.db.Model(&models.Property{}).
			Where("is_active = ? AND sale_type = ?", true, st).Count(&n).Error; err != nil {
			return nil, err
		}
		counts["sale_"+strings.ToLower(string(st))] = n
	}

	return counts, nil
}
