package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:80" json:"name"`

	SubCategories []SubCategory `json:"-"`
}
