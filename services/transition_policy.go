package services

import (
	"fmt"

	"github.com/Hsharma41126/new-restorant/entity"
)

// TransitionPolicy decides whether a status move is allowed once the target
// value itself has been validated. The policy is swappable so the strictness
// question stays a configuration choice, not a code fork.
type TransitionPolicy interface {
	AllowOrder(from, to entity.OrderStatus) error
	AllowTicket(from, to entity.TicketStatus) error
	AllowLine(from, to entity.LineStatus) error
}

func PolicyFromName(name string) TransitionPolicy {
	if name == "strict" {
		return StrictPolicy{}
	}
	return ValueSetPolicy{}
}

// ValueSetPolicy mirrors the source system: any enumerated value is accepted
// whatever the current state is. Default.
type ValueSetPolicy struct{}

func (ValueSetPolicy) AllowOrder(_, _ entity.OrderStatus) error   { return nil }
func (ValueSetPolicy) AllowTicket(_, _ entity.TicketStatus) error { return nil }
func (ValueSetPolicy) AllowLine(_, _ entity.LineStatus) error     { return nil }

// StrictPolicy only allows forward moves along the lifecycle; orders may
// additionally be cancelled from any non-terminal state.
type StrictPolicy struct{}

var orderNext = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderConfirmed},
	entity.OrderConfirmed: {entity.OrderPreparing},
	entity.OrderPreparing: {entity.OrderReady},
	entity.OrderReady:     {entity.OrderServed},
	entity.OrderServed:    {entity.OrderCompleted},
}

var ticketNext = map[entity.TicketStatus][]entity.TicketStatus{
	entity.TicketPending:   {entity.TicketPrinted, entity.TicketPreparing},
	entity.TicketPrinted:   {entity.TicketPreparing},
	entity.TicketPreparing: {entity.TicketReady},
	entity.TicketReady:     {entity.TicketServed},
}

var lineNext = map[entity.LineStatus][]entity.LineStatus{
	entity.LinePending:   {entity.LinePreparing},
	entity.LinePreparing: {entity.LineReady},
	entity.LineReady:     {entity.LineServed},
}

func (StrictPolicy) AllowOrder(from, to entity.OrderStatus) error {
	if to == entity.OrderCancelled && !from.Terminal() {
		return nil
	}
	for _, next := range orderNext[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, from, to)
}

func (StrictPolicy) AllowTicket(from, to entity.TicketStatus) error {
	for _, next := range ticketNext[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: ticket %s -> %s", ErrInvalidTransition, from, to)
}

func (StrictPolicy) AllowLine(from, to entity.LineStatus) error {
	for _, next := range lineNext[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: line %s -> %s", ErrInvalidTransition, from, to)
}
