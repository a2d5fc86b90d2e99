package entity

import (
	"gorm.io/gorm"
)

type TicketItem struct {
	gorm.Model
	TicketID uint          `json:"ticketId"`
	Ticket   KitchenTicket `json:"-"`

	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	// Denormalized so the ticket survives menu renames/removals.
	ItemName string `gorm:"size:120" json:"itemName"`
	Quantity int    `json:"quantity"`
	Note     string `gorm:"size:255" json:"note,omitempty"`

	Status LineStatus `gorm:"size:16" json:"status"`
}
