package entities

import (
	"github.com/shopspring/decimal"
)

type Recipe struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	TimeMinutes int             `gorm:"not null" json:"time_minutes"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string          `gorm:"size:255" json:"link"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `gorm:"size:1024" json:"image,omitempty"`

	User        *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags        []*Tag        `gorm:"many2many:recipe_tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients"`
	Timestamp
}

// Tag names are unique per owner, not globally.
type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"user_id"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_tags_user_name" json:"name"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipes []*Recipe `gorm:"many2many:recipe_tags"`
	Timestamp
}

type Ingredient struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"user_id"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_ingredients_user_name" json:"name"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipes []*Recipe `gorm:"many2many:recipe_ingredients"`
	Timestamp
}
