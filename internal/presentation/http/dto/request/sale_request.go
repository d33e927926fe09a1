package request

// AddItemRequest adds a rendered service to an open sale session.
// An explicit price_usd overrides the catalog price for this line.
type AddItemRequest struct {
	ServiceID  string  `json:"service_id" binding:"required,uuid"`
	WorkerID   string  `json:"worker_id" binding:"required,uuid"`
	HairLength string  `json:"hair_length" binding:"required,oneof=Corto Mediano Largo Extensiones"`
	PriceUSD   float64 `json:"price_usd" binding:"omitempty,gt=0"`
}

// UpdateItemPriceRequest overrides the price of an existing line item
type UpdateItemPriceRequest struct {
	PriceUSD float64 `json:"price_usd" binding:"required,gt=0"`
}

// SetDiscountRequest selects the discount policy for a session.
// AmountUSD is the operator-typed figure; Promotion computes its own.
type SetDiscountRequest struct {
	Policy    string  `json:"policy" binding:"required,oneof=None Promotion Exchange PayableAccount ReceivableAccount"`
	AmountUSD float64 `json:"amount_usd" binding:"omitempty,gte=0"`
}

// SetTipRequest records a tip and who receives it
type SetTipRequest struct {
	AmountUSD float64 `json:"amount_usd" binding:"gte=0"`
	WorkerID  *string `json:"worker_id" binding:"omitempty,uuid"`
}

// SetClientRequest attaches a client to the session; null detaches
type SetClientRequest struct {
	ClientID *string `json:"client_id" binding:"omitempty,uuid"`
}

// SetCurrencyRequest switches the session's display currency
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,oneof=USD VES"`
}

// AddPaymentRequest tenders one payment against the session.
// Amount is in the payment's own currency; the rate is captured server-side.
type AddPaymentRequest struct {
	Method      string  `json:"method" binding:"required,oneof=Cash Card MobilePayment Transfer Zelle"`
	Currency    string  `json:"currency" binding:"required,oneof=USD VES"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Destination string  `json:"destination" binding:"omitempty,oneof=Capelli Rosa"`
	Reference   string  `json:"reference"`
}
