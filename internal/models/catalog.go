package models

import "gorm.io/gorm"

// Brand groups products by manufacturer.
type Brand struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	LogoURL    string `json:"logo_url" validate:"omitempty,url"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Billboard is a promotional banner shown on the storefront.
type Billboard struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Label      string `json:"label" validate:"required,min=2,max=100"`
	ImageURL   string `json:"image_url" validate:"required,url"`
	IsActive   bool   `json:"is_active"`
	gorm.Model
}

// Collection is a curated set of products, fronted by a billboard.
type Collection struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	BillboardID *string `json:"billboard_id" gorm:"type:varchar(36)" validate:"omitempty,uuid"`

	Billboard *Billboard `json:"billboard,omitempty" gorm:"foreignKey:BillboardID"`
	gorm.Model
}

// Store is an admin-managed storefront record (name, contact, settings).
type Store struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=32"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	gorm.Model
}
