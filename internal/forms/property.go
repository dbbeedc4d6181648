package forms

import (
	"net/http"
	"strconv"
	"strings"

	"estate-portal/internal/models"
)

// PropertyForm carries the raw submitted fields for creating or
// updating a property. Price arrives as text and is parsed during
// validation; a malformed price is a field error, not a panic.
type PropertyForm struct {
	TitleEN       string
	TitleAR       string
	DescriptionEN string
	DescriptionAR string
	LocationEN    string
	LocationAR    string
	Price         string
	PropertyType  string
	SaleType      string
	Phone         string

	price float64
}

// Validate checks every field and returns the full list of failures.
// All bilingual content fields are required; price must parse and be
// non-negative; type fields must be known enum values.
func (f *PropertyForm) Validate() Errors {
	var errs Errors

	required := []struct{ field, value string }{
		{"title_en", f.TitleEN},
		{"title_ar", f.TitleAR},
		{"description_en", f.DescriptionEN},
		{"description_ar", f.DescriptionAR},
		{"location_en", f.LocationEN},
		{"location_ar", f.LocationAR},
		{"phone", f.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs.Add(r.field, "This field is required.")
		}
	}

	if strings.TrimSpace(f.Price) == "" {
		errs.Add("price", "This field is required.")
	} else {
		price, err := strconv.ParseFloat(f.Price, 64)
		switch {
		case err != nil:
			errs.Add("price", "Enter a valid number.")
		case price < 0:
			errs.Add("price", "Price must not be negative.")
		default:
			f.price = price
		}
	}

	if !models.PropertyType(f.PropertyType).IsValid() {
		errs.Add("property_type", "Select a valid property type.")
	}
	if !models.SaleType(f.SaleType).IsValid() {
		errs.Add("sale_type", "Select a valid sale type.")
	}

	return errs
}

// Apply copies the validated fields onto a property. Owner, status and
// timestamps are untouched. Call only after Validate passed.
func (f *PropertyForm) Apply(p *models.Property) {
	p.TitleEN = strings.TrimSpace(f.TitleEN)
	p.TitleAR = strings.TrimSpace(f.TitleAR)
	p.DescriptionEN = strings.TrimSpace(f.DescriptionEN)
	p.DescriptionAR = strings.TrimSpace(f.DescriptionAR)
	p.LocationEN = strings.TrimSpace(f.LocationEN)
	p.LocationAR = strings.TrimSpace(f.LocationAR)
	p.Price = f.price
	p.PropertyType = models.PropertyType(f.PropertyType)
	p.SaleType = models.SaleType(f.SaleType)
	p.Phone = strings.TrimSpace(f.Phone)
}

// ImageUpload is one submitted image: payload plus display order.
// Order defaults to 0 when the client sends nothing.
type ImageUpload struct {
	FileName  string
	Data      []byte
	SortOrder int

	contentType string
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ContentType returns the sniffed media type. Valid only after
// ValidateImages has run.
func (u *ImageUpload) ContentType() string {
	return u.contentType
}

// ValidateImages checks every upload in the set. Any failure rejects
// the whole submission so the edit flow stays all-or-nothing.
func ValidateImages(uploads []*ImageUpload) Errors {
	var errs Errors
	for i, u := range uploads {
		field := "images[" + strconv.Itoa(i) + "]"
		if len(u.Data) == 0 {
			errs.Add(field, "Uploaded file is empty.")
			continue
		}
		ct := http.DetectContentType(u.Data)
		if !allowedImageTypes[ct] {
			errs.Add(field, "Upload a JPEG, PNG or WebP image.")
			continue
		}
		u.contentType = ct
	}
	return errs
}

// ParseOrder converts a submitted order value, defaulting to 0 for
// missing or malformed input.
func ParseOrder(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
