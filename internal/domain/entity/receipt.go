package entity

// ReceiptHeader holds the salon header printed at the top of a receipt.
type ReceiptHeader struct {
	SalonName string `json:"salon_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptLine is a single rendered service on a printed receipt.
type ReceiptLine struct {
	Service  string  `json:"service"`
	Worker   string  `json:"worker"`
	PriceUSD float64 `json:"price_usd"`
}

// ReceiptPayment is one payment row on a printed receipt.
type ReceiptPayment struct {
	Method      string  `json:"method"`
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
	Destination string  `json:"destination,omitempty"`
}

// Receipt is a value object representing a printable receipt. It is NOT a
// database entity; it is composed from a committed sale at print time.
type Receipt struct {
	Header       ReceiptHeader    `json:"header"`
	InvoiceNo    string           `json:"invoice_no"`
	Date         string           `json:"date"`
	Operator     string           `json:"operator,omitempty"`
	Client       string           `json:"client,omitempty"`
	Lines        []ReceiptLine    `json:"lines"`
	Subtotal     float64          `json:"subtotal"`
	Discount     float64          `json:"discount"`
	Tip          float64          `json:"tip"`
	Total        float64          `json:"total"`
	TotalBs      float64          `json:"total_bs"`
	ExchangeRate float64          `json:"exchange_rate"`
	Payments     []ReceiptPayment `json:"payments"`
	ChangeUSD    float64          `json:"change_usd"`
	Outstanding  float64          `json:"outstanding"`
}
