package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string `json:"-"`
	FirstName string `gorm:"size:80" json:"firstName"`
	LastName  string `gorm:"size:80" json:"lastName"`
	Role      string `gorm:"size:24" json:"role"` // admin | cashier | kitchen

	Orders []Order `gorm:"foreignKey:CreatedBy" json:"-"`
}
