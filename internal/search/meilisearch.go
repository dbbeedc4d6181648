package search

import (
	"fmt"
	"strconv"
	"strings"

	"estate-portal/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// Document is the flattened listing record held in the search index.
// Both language variants are indexed side by side so one query matches
// either language.
type Document struct {
	ID            uint    `json:"id"`
	TitleEN       string  `json:"title_en"`
	TitleAR       string  `json:"title_ar"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	LocationEN    string  `json:"location_en"`
	LocationAR    string  `json:"location_ar"`
	Price         float64 `json:"price"`
	PropertyType  string  `json:"property_type"`
	SaleType      string  `json:"sale_type"`
	Views         int     `json:"views"`
	CreatedAt     int64   `json:"created_at"`
}

// DocumentFromProperty flattens a property row into its index form.
func DocumentFromProperty(p *models.Property) Document {
	return Document{
		ID:            p.ID,
		TitleEN:       p.TitleEN,
		TitleAR:       p.TitleAR,
		DescriptionEN: p.DescriptionEN,
		DescriptionAR: p.DescriptionAR,
		LocationEN:    p.LocationEN,
		LocationAR:    p.LocationAR,
		Price:         p.Price,
		PropertyType:  string(p.PropertyType),
		SaleType:      string(p.SaleType),
		Views:         p.Views,
		CreatedAt:     p.CreatedAt.Unix(),
	}
}

type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(host, apiKey string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &SearchClient{
		client: client,
		index:  "properties",
	}
}

// InitIndex creates the listings index and configures its attributes.
func (s *SearchClient) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// index already existing is fine
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"title_en",
		"title_ar",
		"description_en",
		"description_ar",
		"location_en",
		"location_ar",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"id",
		"price",
		"property_type",
		"sale_type",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"price",
		"views",
		"created_at",
	})
	if err != nil {
		return err
	}

	return nil
}

// IndexProperty upserts a single listing into the index.
func (s *SearchClient) IndexProperty(p *models.Property) error {
	_, err := s.client.Index(s.index).AddDocuments([]Document{DocumentFromProperty(p)})
	return err
}

// IndexProperties upserts multiple listings at once.
func (s *SearchClient) IndexProperties(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	docs := make([]Document, 0, len(properties))
	for i := range properties {
		docs = append(docs, DocumentFromProperty(&properties[i]))
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

// RemoveProperty drops a listing from the index.
func (s *SearchClient) RemoveProperty(id uint) error {
	_, err := s.client.Index(s.index).DeleteDocument(strconv.FormatUint(uint64(id), 10))
	return err
}

// Request are the search endpoint parameters.
type Request struct {
	Query        string
	PropertyType string
	SaleType     string
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int64
	Offset       int64
	Sort         []string
}

// Result is one page of search hits.
type Result struct {
	Hits             []Document
	TotalHits        int64
	ProcessingTimeMs int64
}

// Search runs a full-text query with the optional structured filters
// joined as a conjunction, mirroring the database listing filters.
func (s *SearchClient) Search(req Request) (*Result, error) {
	if req.Limit == 0 {
		req.Limit = 20
	}

	searchReq := &meilisearch.SearchRequest{
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	var filters []string
	if req.PropertyType != "" {
		filters = append(filters, fmt.Sprintf("property_type = %q", req.PropertyType))
	}
	if req.SaleType != "" {
		filters = append(filters, fmt.Sprintf("sale_type = %q", req.SaleType))
	}
	if req.MinPrice != nil {
		filters = append(filters, fmt.Sprintf("price >= %g", *req.MinPrice))
	}
	if req.MaxPrice != nil {
		filters = append(filters, fmt.Sprintf("price <= %g", *req.MaxPrice))
	}
	if len(filters) > 0 {
		searchReq.Filter = strings.Join(filters, " AND ")
	}

	if len(req.Sort) > 0 {
		searchReq.Sort = req.Sort
	}

	searchRes, err := s.client.Index(s.index).Search(req.Query, searchReq)
	if err != nil {
		return nil, err
	}

	hits := make([]Document, 0, len(searchRes.Hits))
	for _, hit := range searchRes.Hits {
		hits = append(hits, documentFromHit(hit))
	}

	return &Result{
		Hits:             hits,
		TotalHits:        searchRes.EstimatedTotalHits,
		ProcessingTimeMs: searchRes.ProcessingTimeMs,
	}, nil
}

func documentFromHit(hit interface{}) Document {
	hitMap, ok := hit.(map[string]interface{})
	if !ok {
		return Document{}
	}

	doc := Document{
		TitleEN:       getString(hitMap, "title_en"),
		TitleAR:       getString(hitMap, "title_ar"),
		DescriptionEN: getString(hitMap, "description_en"),
		DescriptionAR: getString(hitMap, "description_ar"),
		LocationEN:    getString(hitMap, "location_en"),
		LocationAR:    getString(hitMap, "location_ar"),
		PropertyType:  getString(hitMap, "property_type"),
		SaleType:      getString(hitMap, "sale_type"),
	}
	if id, ok := hitMap["id"].(float64); ok {
		doc.ID = uint(id)
	}
	if price, ok := hitMap["price"].(float64); ok {
		doc.Price = price
	}
	if views, ok := hitMap["views"].(float64); ok {
		doc.Views = int(views)
	}
	if created, ok := hitMap["created_at"].(float64); ok {
		doc.CreatedAt = int64(created)
	}
	return doc
}

func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
