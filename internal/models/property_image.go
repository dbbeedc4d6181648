package models

import "time"

// PropertyImage is an image attached to a property. The binary payload
// lives in media storage; the row keeps the storage path. SortOrder
// defines the display sequence ascending, ties broken newest-first.
type PropertyImage struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID  uint      `gorm:"not null;index" json:"property_id"`
	StoragePath string    `gorm:"type:varchar(512);not null" json:"path"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(128)" json:"content_type,omitempty"`
	SortOrder   int       `gorm:"not null;default:0;index" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}
