package entity

import (
	"gorm.io/gorm"
)

// PrinterCategoryMapping routes tickets touching a category (or, more
// specifically, a subcategory) to a printer.
type PrinterCategoryMapping struct {
	gorm.Model
	PrinterID uint    `json:"printerId"`
	Printer   Printer `json:"-"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	SubCategoryID *uint        `json:"subCategoryId,omitempty"`
	SubCategory   *SubCategory `json:"-"`
}
