package entity

import (
	"time"

	"gorm.io/gorm"
)

// KitchenTicket is the kitchen/bar-facing work item derived from an order.
// One ticket is created per order, inside the same transaction as the order.
type KitchenTicket struct {
	gorm.Model
	TicketNo string `gorm:"uniqueIndex;size:32" json:"ticketNo"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PrinterID *uint    `json:"printerId,omitempty"`
	Printer   *Printer `json:"-"`

	Category TicketCategory `gorm:"size:16" json:"category"`
	Status   TicketStatus   `gorm:"size:16" json:"status"`

	PrintedAt   *time.Time `json:"printedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Items []TicketItem `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"items"`
}
