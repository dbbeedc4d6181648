package models

import "time"

// PropertyType classifies a listing
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeLand      PropertyType = "Land"
	PropertyTypeOffice    PropertyType = "Office"
)

// PropertyTypes lists the valid property type values in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeVilla,
	PropertyTypeLand,
	PropertyTypeOffice,
}

// IsValid reports whether the value is one of the known property types.
func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// SaleType distinguishes sale listings from rentals
type SaleType string

const (
	SaleTypeSale SaleType = "Sale"
	SaleTypeRent SaleType = "Rent"
)

// SaleTypes lists the valid sale type values.
var SaleTypes = []SaleType{SaleTypeSale, SaleTypeRent}

// IsValid reports whether the value is one of the known sale types.
func (t SaleType) IsValid() bool {
	return t == SaleTypeSale || t == SaleTypeRent
}

// Property is a real-estate listing with independent English and Arabic
// content fields. There is no automatic translation between the two.
type Property struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	// Bilingual content
	TitleEN       string `gorm:"type:varchar(200);not null" json:"title_en"`
	TitleAR       string `gorm:"type:varchar(200);not null" json:"title_ar"`
	DescriptionEN string `gorm:"type:text;not null" json:"description_en"`
	DescriptionAR string `gorm:"type:text;not null" json:"description_ar"`
	LocationEN    string `gorm:"type:varchar(200);not null;index" json:"location_en"`
	LocationAR    string `gorm:"type:varchar(200);not null;index" json:"location_ar"`

	// Listing details
	Price        float64      `gorm:"type:decimal(12,2);not null" json:"price"`
	PropertyType PropertyType `gorm:"type:varchar(20);not null;index" json:"property_type"`
	SaleType     SaleType     `gorm:"type:varchar(10);not null;index" json:"sale_type"`
	Phone        string       `gorm:"type:varchar(20);not null" json:"phone"`

	// Status. No column default: creation sites set the flag
	// explicitly, so a false value survives the insert.
	IsActive bool `gorm:"not null;index" json:"is_active"`
	Views    int  `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`
}

func (Property) TableName() string {
	return "properties"
}

// Title returns the title in the requested language ("en" or "ar").
func (p *Property) Title(lang string) string {
	if lang == "ar" {
		return p.TitleAR
	}
	return p.TitleEN
}

// Description returns the description in the requested language.
func (p *Property) Description(lang string) string {
	if lang == "ar" {
		return p.DescriptionAR
	}
	return p.DescriptionEN
}

// Location returns the location in the requested language.
func (p *Property) Location(lang string) string {
	if lang == "ar" {
		return p.LocationAR
	}
	return p.LocationEN
}

// PropertyView is the localized read model served to clients. Field
// values are selected from the EN/AR columns by the request language.
type PropertyView struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Price        float64      `json:"price"`
	PropertyType PropertyType `json:"property_type"`
	SaleType     SaleType     `json:"sale_type"`
	Phone        string       `json:"phone"`
	Views        int          `json:"views"`
	Language     string       `json:"language"`
	CreatedAt    time.Time    `json:"created_at"`
	Images       []ImageView  `json:"images"`
}

// ImageView is the client-facing shape of a property image.
type ImageView struct {
	ID        int64  `json:"id"`
	Path      string `json:"path"`
	SortOrder int    `json:"order"`
}

// View builds the localized read model for the given language.
func (p *Property) View(lang string) PropertyView {
	images := make([]ImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageView{ID: img.ID, Path: img.StoragePath, SortOrder: img.SortOrder})
	}
	return PropertyView{
		ID:           p.ID,
		Title:        p.Title(lang),
		Description:  p.Description(lang),
		Location:     p.Location(lang),
		Price:        p.Price,
		PropertyType: p.PropertyType,
		SaleType:     p.SaleType,
		Phone:        p.Phone,
		Views:        p.Views,
		Language:     lang,
		CreatedAt:    p.CreatedAt,
		Images:       images,
	}
}
