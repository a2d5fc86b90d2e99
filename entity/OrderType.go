package entity

type OrderType string

const (
	OrderTypeDineIn   OrderType = "Dine-in"
	OrderTypeTakeaway OrderType = "Takeaway"
	OrderTypeDelivery OrderType = "Delivery"
)

var orderTypes = map[OrderType]bool{
	OrderTypeDineIn:   true,
	OrderTypeTakeaway: true,
	OrderTypeDelivery: true,
}

func (t OrderType) Valid() bool { return orderTypes[t] }
