package entity

import (
	"gorm.io/gorm"
)

// DiningTable rows are managed by the table-management collaborator; orders
// only reference them.
type DiningTable struct {
	gorm.Model
	Number int `gorm:"uniqueIndex" json:"number"`
	Seats  int `json:"seats"`

	Orders   []Order        `gorm:"foreignKey:TableID" json:"-"`
	Sessions []TableSession `gorm:"foreignKey:TableID" json:"-"`
}
