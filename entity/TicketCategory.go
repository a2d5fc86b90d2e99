package entity

// TicketCategory tags a ticket by what its items are made of, so the router
// can pick a kitchen vs. bar printer.
type TicketCategory string

const (
	CategoryFood      TicketCategory = "Food"
	CategoryBeverages TicketCategory = "Beverages"
	CategoryMixed     TicketCategory = "Mixed"
)
