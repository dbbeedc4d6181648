package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"estate-portal/internal/database"
	"estate-portal/internal/forms"
	"estate-portal/internal/language"
	"estate-portal/internal/models"
	"estate-portal/internal/pagination"
	"estate-portal/internal/search"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parsePrice converts a price query parameter. Empty or unparseable
// values impose no constraint.
func parsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func filtersFromQuery(c *gin.Context) database.PropertyFilters {
	return database.PropertyFilters{
		PropertyType: c.Query("type"),
		SaleType:     c.Query("sale_type"),
		Location:     c.Query("location"),
		Search:       c.Query("search"),
		MinPrice:     parsePrice(c.Query("min_price")),
		MaxPrice:     parsePrice(c.Query("max_price")),
	}
}

// ListProperties serves the filtered, paginated listing feed in the
// request language.
func (h *Handler) ListProperties(c *gin.Context) {
	lang := language.FromRequest(c.Request)
	page := pagination.ParseNumber(c.Query("page"))

	result, err := h.db.ListProperties(filtersFromQuery(c), page)
	if err != nil {
		h.log.WithError(err).Error("listing query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views := make([]models.PropertyView, 0, len(result.Properties))
	for i := range result.Properties {
		views = append(views, result.Properties[i].View(lang))
	}

	facets, err := h.db.GetFacets()
	if err != nil {
		h.log.WithError(err).Error("facet query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": views,
		"pagination": gin.H{
			"page":        result.Page.Number,
			"page_size":   result.Page.Size,
			"total_items": result.Page.TotalItems,
			"total_pages": result.Page.TotalPages,
			"has_next":    result.Page.HasNext(),
			"has_prev":    result.Page.HasPrevious(),
		},
		"facets":   facets,
		"language": lang,
	})
}

// GetProperty serves one active listing and counts the visit.
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	property, err := h.db.GetActiveProperty(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.log.WithError(err).Error("property lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// best effort, a lost count is acceptable
	if err := h.db.IncrementViews(property); err != nil {
		h.log.WithError(err).WithField("property_id", property.ID).Warn("view counter update failed")
	}

	lang := language.FromRequest(c.Request)
	c.JSON(http.StatusOK, property.View(lang))
}

// GetFacets serves the listing filter facets on their own, for filter
// form controls.
func (h *Handler) GetFacets(c *gin.Context) {
	facets, err := h.db.GetFacets()
	if err != nil {
		h.log.WithError(err).Error("facet query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, facets)
}

func propertyFormFromRequest(c *gin.Context) forms.PropertyForm {
	return forms.PropertyForm{
		TitleEN:       c.PostForm("title_en"),
		TitleAR:       c.PostForm("title_ar"),
		DescriptionEN: c.PostForm("description_en"),
		DescriptionAR: c.PostForm("description_ar"),
		LocationEN:    c.PostForm("location_en"),
		LocationAR:    c.PostForm("location_ar"),
		Price:         c.PostForm("price"),
		PropertyType:  c.PostForm("property_type"),
		SaleType:      c.PostForm("sale_type"),
		Phone:         c.PostForm("phone"),
	}
}

// imageUploadsFromRequest reads the multipart image files with their
// submitted display orders. Missing orders default to 0.
func imageUploadsFromRequest(c *gin.Context) ([]*forms.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	files := form.File["images"]
	orders := form.Value["image_orders"]

	uploads := make([]*forms.ImageUpload, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		order := 0
		if i < len(orders) {
			order = forms.ParseOrder(orders[i])
		}
		uploads = append(uploads, &forms.ImageUpload{
			FileName:  fh.Filename,
			Data:      data,
			SortOrder: order,
		})
	}
	return uploads, nil
}

// saveUploads writes the image files and returns the created rows. On
// any failure the already written files are removed.
func (h *Handler) saveUploads(uploads []*forms.ImageUpload) ([]models.PropertyImage, error) {
	var images []models.PropertyImage
	for _, u := range uploads {
		rel, err := h.store.Save("properties", u.FileName, u.Data)
		if err != nil {
			for _, img := range images {
				_ = h.store.Remove(img.StoragePath)
			}
			return nil, err
		}
		images = append(images, models.PropertyImage{
			StoragePath: rel,
			FileName:    u.FileName,
			ContentType: u.ContentType(),
			SortOrder:   u.SortOrder,
		})
	}
	return images, nil
}

func (h *Handler) removeFiles(paths []string) {
	for _, p := range paths {
		if err := h.store.Remove(p); err != nil {
			h.log.WithError(err).WithField("path", p).Warn("media cleanup failed")
		}
	}
}

func (h *Handler) indexProperty(id uint) {
	if h.search == nil {
		return
	}
	property, err := h.db.GetActiveProperty(id)
	if err != nil {
		return
	}
	if err := h.search.IndexProperty(property); err != nil {
		h.log.WithError(err).WithField("property_id", id).Warn("search indexing failed")
	}
}

// CreateProperty adds a new listing for the authenticated seller.
func (h *Handler) CreateProperty(c *gin.Context) {
	user := currentUser(c)
	if !user.IsSeller() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only sellers can add properties."})
		return
	}

	form := propertyFormFromRequest(c)
	errs := form.Validate()

	uploads, err := imageUploadsFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed upload"})
		return
	}
	errs = append(errs, forms.ValidateImages(uploads)...)

	if errs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	property := models.Property{OwnerID: user.ID, IsActive: true}
	form.Apply(&property)

	images, err := h.saveUploads(uploads)
	if err != nil {
		h.log.WithError(err).Error("media write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.db.CreatePropertyWithImages(&property, images); err != nil {
		for _, img := range images {
			_ = h.store.Remove(img.StoragePath)
		}
		h.log.WithError(err).Error("property create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.indexProperty(property.ID)

	lang := language.FromRequest(c.Request)
	created, err := h.db.GetProperty(property.ID)
	if err != nil {
		c.JSON(http.StatusCreated, property.View(lang))
		return
	}
	c.JSON(http.StatusCreated, created.View(lang))
}

// parseReorder reads "id:order" pairs submitted with an update.
func parseReorder(values []string) map[int64]int {
	reorder := make(map[int64]int)
	for _, v := range values {
		var id int64
		var order int
		if n, err := fmt.Sscanf(v, "%d:%d", &id, &order); err == nil && n == 2 && order >= 0 {
			reorder[id] = order
		}
	}
	return reorder
}

func parseRemoveIDs(values []string) []int64 {
	var ids []int64
	for _, v := range values {
		if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// UpdateProperty overwrites a listing's fields and reconciles its
// image set. Only the owner may edit.
func (h *Handler) UpdateProperty(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	property, err := h.db.GetProperty(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.log.WithError(err).Error("property lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if property.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own properties."})
		return
	}

	form := propertyFormFromRequest(c)
	errs := form.Validate()

	uploads, err := imageUploadsFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed upload"})
		return
	}
	if len(uploads) > 0 {
		errs = append(errs, forms.ValidateImages(uploads)...)
	}

	if errs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	form.Apply(property)
	property.Images = nil

	added, err := h.saveUploads(uploads)
	if err != nil {
		h.log.WithError(err).Error("media write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rec := database.ImageReconciliation{
		Add:     added,
		Remove:  parseRemoveIDs(c.PostFormArray("remove_images")),
		Reorder: parseReorder(c.PostFormArray("reorder_images")),
	}

	removedPaths, err := h.db.UpdatePropertyWithImages(property, rec)
	if err != nil {
		for _, img := range added {
			_ = h.store.Remove(img.StoragePath)
		}
		h.log.WithError(err).Error("property update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	h.removeFiles(removedPaths)

	h.indexProperty(property.ID)

	lang := language.FromRequest(c.Request)
	updated, err := h.db.GetProperty(property.ID)
	if err != nil {
		c.JSON(http.StatusOK, property.View(lang))
		return
	}
	c.JSON(http.StatusOK, updated.View(lang))
}

// DeleteProperty removes a listing and its media. Only the owner may
// delete.
func (h *Handler) DeleteProperty(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	property, err := h.db.GetProperty(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.log.WithError(err).Error("property lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if property.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own properties."})
		return
	}

	paths, err := h.db.DeleteProperty(property.ID)
	if err != nil {
		h.log.WithError(err).Error("property delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	h.removeFiles(paths)

	if h.search != nil {
		if err := h.search.RemoveProperty(property.ID); err != nil {
			h.log.WithError(err).WithField("property_id", property.ID).Warn("search removal failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

// SearchProperties serves the full-text search path backed by
// Meilisearch, with the same structured filters as the listing feed.
func (h *Handler) SearchProperties(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search is not configured"})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	result, err := h.search.Search(search.Request{
		Query:        c.Query("q"),
		PropertyType: c.Query("type"),
		SaleType:     c.Query("sale_type"),
		MinPrice:     parsePrice(c.Query("min_price")),
		MaxPrice:     parsePrice(c.Query("max_price")),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		h.log.WithError(err).Error("search query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hits":               result.Hits,
		"total_hits":         result.TotalHits,
		"processing_time_ms": result.ProcessingTimeMs,
	})
}

// SetLanguage persists the display language preference and sends the
// client back where it came from.
func (h *Handler) SetLanguage(c *gin.Context) {
	lang := c.PostForm("lang")
	if lang == "" {
		lang = c.Query("lang")
	}
	if !language.Valid(lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}

	c.SetCookie(language.CookieName, lang, 365*24*3600, "/", "", false, false)

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}
