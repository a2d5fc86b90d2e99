package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNo   string    `gorm:"uniqueIndex;size:32" json:"orderNo"`
	OrderType OrderType `gorm:"size:16" json:"orderType"`

	TableID *uint        `json:"tableId,omitempty"`
	Table   *DiningTable `json:"-"` // preload only for table views

	SessionID *uint         `json:"sessionId,omitempty"`
	Session   *TableSession `json:"-"`

	CustomerName string `gorm:"size:120" json:"customerName,omitempty"`

	// Money columns are snapshots; never recomputed after creation.
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"taxAmount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discountAmount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	Status        OrderStatus   `gorm:"size:16" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:16" json:"paymentStatus"`

	CreatedBy uint `json:"createdBy"`

	OrderItems []OrderItem    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ticket     *KitchenTicket `gorm:"foreignKey:OrderID" json:"-"`
}
