package models

// Status is the canonical stock status tag attached to a product.
// Exactly four values cross any boundary: in-stock, low-stock, out-of-stock
// and unknown.
type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps arbitrary text onto a canonical Status. It is total:
// anything outside the recognised set (including the empty string) becomes
// StatusUnknown, never an error. The original text is not retained.
func ParseStatus(s string) Status {
	switch s {
	case "in-stock":
		return StatusInStock
	case "low-stock":
		return StatusLowStock
	case "out-of-stock":
		return StatusOutOfStock
	default:
		return StatusUnknown
	}
}

// String returns the canonical lowercase-hyphenated tag. Any value outside
// the recognised set renders as "unknown".
func (s Status) String() string {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return string(s)
	default:
		return string(StatusUnknown)
	}
}
