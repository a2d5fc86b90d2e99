package entity

// TicketStatus is the kitchen ticket lifecycle. The Ready transition is
// usually derived: it fires when every ticket line reaches Ready.
type TicketStatus string

const (
	TicketPending   TicketStatus = "Pending"
	TicketPrinted   TicketStatus = "Printed"
	TicketPreparing TicketStatus = "Preparing"
	TicketReady     TicketStatus = "Ready"
	TicketServed    TicketStatus = "Served"
)

var ticketStatuses = map[TicketStatus]bool{
	TicketPending:   true,
	TicketPrinted:   true,
	TicketPreparing: true,
	TicketReady:     true,
	TicketServed:    true,
}

func (s TicketStatus) Valid() bool { return ticketStatuses[s] }
