package entity

import (
	"gorm.io/gorm"
)

// Setting holds runtime configuration (tax rate, auto-print toggle). Values
// are read when needed, not cached.
type Setting struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;size:64" json:"key"`
	Value string `gorm:"size:255" json:"value"`
}

const (
	SettingTaxRate   = "tax_rate"
	SettingAutoPrint = "auto_print_tickets"
)
