package services

const (
	EventTicketCreated = "ticket.created"
	EventTicketStatus  = "ticket.status_changed"
	EventTicketLine    = "ticket.line_status_changed"
)

// TicketEvent is pushed to the kitchen display feed on every ticket change.
type TicketEvent struct {
	Type     string `json:"type"`
	TicketID uint   `json:"ticketId"`
	TicketNo string `json:"ticketNo,omitempty"`
	OrderID  uint   `json:"orderId,omitempty"`
	OrderNo  string `json:"orderNo,omitempty"`
	ItemID   uint   `json:"itemId,omitempty"`
	Status   string `json:"status"`
}

type Broadcaster interface {
	Publish(TicketEvent)
}
