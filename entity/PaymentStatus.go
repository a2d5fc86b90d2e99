package entity

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

var paymentStatuses = map[PaymentStatus]bool{
	PaymentUnpaid:   true,
	PaymentPaid:     true,
	PaymentRefunded: true,
}

func (s PaymentStatus) Valid() bool { return paymentStatuses[s] }
