package entity

import (
	"time"

	"gorm.io/gorm"
)

type TableSession struct {
	gorm.Model
	TableID uint        `json:"tableId"`
	Table   DiningTable `json:"-"`

	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`

	Orders []Order `gorm:"foreignKey:SessionID" json:"-"`
}
