package entity

// LineStatus tracks a single order line / ticket line.
type LineStatus string

const (
	LinePending   LineStatus = "Pending"
	LinePreparing LineStatus = "Preparing"
	LineReady     LineStatus = "Ready"
	LineServed    LineStatus = "Served"
)

var lineStatuses = map[LineStatus]bool{
	LinePending:   true,
	LinePreparing: true,
	LineReady:     true,
	LineServed:    true,
}

func (s LineStatus) Valid() bool { return lineStatuses[s] }
