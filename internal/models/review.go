package models

import "gorm.io/gorm"

// Review is a customer review of a product. One review per user per
// product, enforced by the composite unique index.
type Review struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_review_user_product;type:varchar(36)" validate:"required,uuid"`
	UserID    string `json:"user_id" gorm:"uniqueIndex:idx_review_user_product;type:varchar(36)"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model
}
