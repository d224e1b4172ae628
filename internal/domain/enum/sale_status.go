package enum

// SaleStatus represents the lifecycle state of a sale. The POS engine only
// ever writes completed sales; partial or voided states are not modeled.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
)

// String returns the string representation of the sale status
func (s SaleStatus) String() string {
	return string(s)
}
