package entity

// OrderStatus is the aggregate lifecycle of an order. Cancelled is terminal
// and reachable from any non-terminal state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderServed    OrderStatus = "Served"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	OrderPending:   true,
	OrderConfirmed: true,
	OrderPreparing: true,
	OrderReady:     true,
	OrderServed:    true,
	OrderCompleted: true,
	OrderCancelled: true,
}

func (s OrderStatus) Valid() bool { return orderStatuses[s] }

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}
