package models

import "gorm.io/gorm"

// Document is a back-office file reference (invoices, policies, assets).
type Document struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=2,max=200"`
	URL        string `json:"url" validate:"required,url"`
	Type       string `json:"type" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Note is a free-form admin annotation.
type Note struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=2,max=200"`
	Content    string `json:"content" gorm:"type:text" validate:"omitempty,max=5000"`
	gorm.Model
}
