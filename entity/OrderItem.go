package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the item name is needed

	Quantity int `json:"quantity"`

	// UnitPrice is the menu price at order time; later menu edits don't touch it.
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`

	Status LineStatus `gorm:"size:16" json:"status"`
	Note   string     `gorm:"size:255" json:"note,omitempty"`
}
