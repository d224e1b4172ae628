package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Date      string `json:"date"`
	Customer  string `json:"customer,omitempty"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable dual-currency receipt.
// It is NOT a database entity; it is composed from a completed sale at
// print time. TotalUSD is the persisted sale total verbatim, so the printed
// figure always matches the stored one; TotalKHR is derived from it at the
// exchange rate shown on the receipt.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	Lines        []ReceiptLine `json:"lines"`
	TotalUSD     float64       `json:"total_usd"`
	TotalKHR     int64         `json:"total_khr"`
	ExchangeRate float64       `json:"exchange_rate"`
}
