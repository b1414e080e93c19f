package models

import "gorm.io/gorm"

// Product represents a product in the store catalog.
type Product struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required,min=3,max=100"`
	Slug         string  `json:"slug" gorm:"uniqueIndex;type:varchar(120)" validate:"omitempty,max=120"`
	Description  string  `json:"description" validate:"omitempty,max=500"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	Images       string  `json:"images" gorm:"type:text"` // JSON-encoded list of image URLs
	BrandID      *string `json:"brand_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	CollectionID *string `json:"collection_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	IsFeatured   bool    `json:"is_featured"`
	IsArchived   bool    `json:"is_archived"`

	Brand      *Brand      `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Collection *Collection `json:"collection,omitempty" gorm:"foreignKey:CollectionID"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
