package models

import "gorm.io/gorm"

// Address is a user-owned shipping address. At most one address per user
// may have IsDefault set; the service unsets siblings before setting a new
// default.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(36)"`
	Recipient  string `json:"recipient" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,max=32"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=16"`
	IsDefault  bool   `json:"is_default"`
	gorm.Model
}
