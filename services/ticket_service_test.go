package services

import (
	"testing"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketReadyCascade(t *testing.T) {
	env := newTestEnv(t)

	res := env.createOrder(t,
		OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1},
		OrderLineIn{MenuItemID: env.bread.ID, Quantity: 1},
		OrderLineIn{MenuItemID: env.lemonade.ID, Quantity: 1},
	)
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)
	require.Len(t, ticket.Items, 3)

	// First two lines Ready: ticket must not flip yet.
	for _, it := range ticket.Items[:2] {
		require.NoError(t, env.tickets.UpdateItemStatus(ticket.ID, it.ID, string(entity.LineReady)))
	}
	mid, err := env.ticketRepo.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.NotEqual(t, entity.TicketReady, mid.Status)
	assert.Nil(t, mid.CompletedAt)

	// Third line Ready: derived transition fires.
	require.NoError(t, env.tickets.UpdateItemStatus(ticket.ID, ticket.Items[2].ID, string(entity.LineReady)))

	done, err := env.ticketRepo.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketReady, done.Status)
	require.NotNil(t, done.CompletedAt)
}

// A line jumped straight to Served (permissive policy) still counts toward
// the cascade; the ticket must not get stuck below Ready.
func TestTicketReadyCascadeCountsServedLines(t *testing.T) {
	env := newTestEnv(t)

	res := env.createOrder(t,
		OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1},
		OrderLineIn{MenuItemID: env.bread.ID, Quantity: 1},
	)
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)
	require.Len(t, ticket.Items, 2)

	require.NoError(t, env.tickets.UpdateItemStatus(ticket.ID, ticket.Items[0].ID, string(entity.LineReady)))
	require.NoError(t, env.tickets.UpdateItemStatus(ticket.ID, ticket.Items[1].ID, string(entity.LineServed)))

	got, err := env.ticketRepo.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketReady, got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestTicketLineRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)

	err = env.tickets.UpdateItemStatus(ticket.ID, ticket.Items[0].ID, "Burnt")
	assert.ErrorIs(t, err, ErrInvalidStatusValue)
}

func TestTicketStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)

	err = env.tickets.UpdateStatus(ticket.ID, "Cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatusValue)
}

// Default policy keeps the source system's behavior: any enumerated value is
// accepted, including moves backward.
func TestPermissivePolicyAllowsBackwardMove(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)

	require.NoError(t, env.tickets.UpdateStatus(ticket.ID, string(entity.TicketReady)))
	require.NoError(t, env.tickets.UpdateStatus(ticket.ID, string(entity.TicketPending)))

	got, err := env.ticketRepo.GetTicket(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketPending, got.Status)
}

func TestStrictPolicyRejectsBackwardMove(t *testing.T) {
	env := newTestEnv(t)
	env.tickets.Policy = StrictPolicy{}

	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)

	require.NoError(t, env.tickets.UpdateStatus(ticket.ID, string(entity.TicketPreparing)))
	err = env.tickets.UpdateStatus(ticket.ID, string(entity.TicketPending))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Lines can't skip forward either.
	err = env.tickets.UpdateItemStatus(ticket.ID, ticket.Items[0].ID, string(entity.LineServed))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStrictPolicyOrderEdges(t *testing.T) {
	env := newTestEnv(t)
	env.orders.Policy = StrictPolicy{}

	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})

	err := env.orders.UpdateStatus(res.OrderID, string(entity.OrderServed))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, env.orders.UpdateStatus(res.OrderID, string(entity.OrderConfirmed)))
	// Cancel stays reachable from any non-terminal state.
	require.NoError(t, env.orders.UpdateStatus(res.OrderID, string(entity.OrderCancelled)))
	err = env.orders.UpdateStatus(res.OrderID, string(entity.OrderConfirmed))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
