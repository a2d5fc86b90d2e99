package services

import (
	"sync"
	"testing"

	"github.com/Hsharma41126/new-restorant/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderWritesOrderAndTicketTogether(t *testing.T) {
	env := newTestEnv(t)

	res := env.createOrder(t,
		OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 2, Note: "extra cheese"},
		OrderLineIn{MenuItemID: env.lemonade.ID, Quantity: 1},
	)
	assert.NotEmpty(t, res.OrderNo)
	assert.NotEmpty(t, res.TicketNo)

	assert.EqualValues(t, 1, env.count(t, &entity.Order{}))
	assert.EqualValues(t, 2, env.count(t, &entity.OrderItem{}))
	assert.EqualValues(t, 1, env.count(t, &entity.KitchenTicket{}))
	assert.EqualValues(t, 2, env.count(t, &entity.TicketItem{}))

	order, err := env.orderRepo.GetOrderWithItems(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentUnpaid, order.PaymentStatus)
	assert.Equal(t, "83.00", order.Subtotal.StringFixed(2)) // 2x40 + 3
	assert.True(t, order.TotalAmount.Equal(
		order.Subtotal.Add(order.TaxAmount).Sub(order.DiscountAmount)))

	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketPending, ticket.Status)
	assert.Equal(t, entity.CategoryMixed, ticket.Category)
	require.Len(t, ticket.Items, 2)

	// Ticket lines carry denormalized names and the order-line note.
	byName := map[string]entity.TicketItem{}
	for _, it := range ticket.Items {
		byName[it.ItemName] = it
	}
	require.Contains(t, byName, "Margherita Pizza")
	assert.Equal(t, 2, byName["Margherita Pizza"].Quantity)
	assert.Equal(t, "extra cheese", byName["Margherita Pizza"].Note)
	assert.Equal(t, entity.LinePending, byName["Margherita Pizza"].Status)
}

func TestCreateOrderRollsBackWhenTicketLinesFail(t *testing.T) {
	env := newTestEnv(t)

	// Simulated fault at step 7: ticket line insertion cannot succeed.
	require.NoError(t, env.db.Migrator().DropTable(&entity.TicketItem{}))

	_, err := env.orders.Create(1, &CreateOrderReq{
		OrderType: string(entity.OrderTypeDineIn),
		Items:     []OrderLineIn{{MenuItemID: env.pizza.ID, Quantity: 1}},
	})
	require.Error(t, err)

	// Nothing survives: no order, no lines, no ticket.
	assert.EqualValues(t, 0, env.count(t, &entity.Order{}))
	assert.EqualValues(t, 0, env.count(t, &entity.OrderItem{}))
	assert.EqualValues(t, 0, env.count(t, &entity.KitchenTicket{}))
}

func TestCreateOrderUnavailableItemWritesNothing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Create(1, &CreateOrderReq{
		OrderType: string(entity.OrderTypeTakeaway),
		Items: []OrderLineIn{
			{MenuItemID: env.pizza.ID, Quantity: 1},
			{MenuItemID: env.soup.ID, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrItemUnavailable)
	assert.EqualValues(t, 0, env.count(t, &entity.Order{}))
	assert.EqualValues(t, 0, env.count(t, &entity.KitchenTicket{}))
}

func TestCreateOrderRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Create(1, &CreateOrderReq{
		OrderType: "Drive-through",
		Items:     []OrderLineIn{{MenuItemID: env.pizza.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderNumbersDistinctUnderBurst(t *testing.T) {
	env := newTestEnv(t)

	// Serialize connections so in-memory sqlite survives parallel writers;
	// the goroutines still generate their numbers within the same second.
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const burst = 25
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
		errs []error
	)
	for i := 0; i < burst; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := env.orders.Create(1, &CreateOrderReq{
				OrderType: string(entity.OrderTypeDineIn),
				Items:     []OrderLineIn{{MenuItemID: env.bread.ID, Quantity: 1}},
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[res.OrderNo] = true
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, seen, burst, "every concurrent creation must get its own order number")
	assert.EqualValues(t, burst, env.count(t, &entity.Order{}))
}

func TestOrderStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})

	err := env.orders.UpdateStatus(res.OrderID, "Delivered")
	assert.ErrorIs(t, err, ErrInvalidStatusValue)

	order, gerr := env.orderRepo.GetOrder(res.OrderID)
	require.NoError(t, gerr)
	assert.Equal(t, entity.OrderPending, order.Status)
}

func TestOrderCompletionBlockedByActiveTicket(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})

	err := env.orders.UpdateStatus(res.OrderID, string(entity.OrderCompleted))
	assert.ErrorIs(t, err, ErrOrderHasActiveTicket)

	// Once the kitchen has served the ticket, completion goes through.
	ticket, err := env.ticketRepo.GetTicketByOrder(res.OrderID)
	require.NoError(t, err)
	require.NoError(t, env.tickets.UpdateStatus(ticket.ID, string(entity.TicketServed)))

	require.NoError(t, env.orders.UpdateStatus(res.OrderID, string(entity.OrderCompleted)))
	order, err := env.orderRepo.GetOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, order.Status)
}

func TestOrderCancelFromPending(t *testing.T) {
	env := newTestEnv(t)
	res := env.createOrder(t, OrderLineIn{MenuItemID: env.pizza.ID, Quantity: 1})

	require.NoError(t, env.orders.UpdateStatus(res.OrderID, string(entity.OrderCancelled)))
	order, err := env.orderRepo.GetOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, order.Status)
}
