package storage

type PurchaseInvoice struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Timestamp   int64   `json:"timestamp"`
}

type SaveInvoice struct {
	OrderID     string  `json:"order_id" validate:"required"`
	Supplier    string  `json:"supplier" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required,oneof=MATERIALI TRASPORTO SUBAPPALTO NOLO ALTRO"`
}
