package entity

import (
	"gorm.io/gorm"
)

type SubCategory struct {
	gorm.Model
	Name string `gorm:"size:80" json:"name"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
