package entity

type PrinterFunction string

const (
	PrinterKitchen PrinterFunction = "Kitchen"
	PrinterBar     PrinterFunction = "Bar"
	PrinterReceipt PrinterFunction = "Receipt"
	PrinterGeneral PrinterFunction = "General"
)
