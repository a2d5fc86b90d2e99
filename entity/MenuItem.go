package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"size:120" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`

	SubCategoryID uint        `json:"subCategoryId"`
	SubCategory   SubCategory `json:"-"` // preload for classification/detail only

	OrderItems []OrderItem `json:"-"`
}
