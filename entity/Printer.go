package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Printer struct {
	gorm.Model
	Name     string          `gorm:"size:80" json:"name"`
	Function PrinterFunction `gorm:"size:16" json:"function"`

	IPAddress string `gorm:"size:64" json:"ipAddress"`
	Port      int    `gorm:"default:9100" json:"port"`

	IsActive bool `gorm:"default:true" json:"isActive"`
	IsOnline bool `gorm:"default:true" json:"isOnline"`

	Mappings []PrinterCategoryMapping `json:"-"`
}

func (p *Printer) Address() string {
	return fmt.Sprintf("%s:%d", p.IPAddress, p.Port)
}
