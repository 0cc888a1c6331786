package storage

type WorkLog struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Worker    string  `json:"worker"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Category  string  `json:"category,omitempty"`
	Activity  string  `json:"activity,omitempty"`
	Note      string  `json:"note"`
	Timestamp int64   `json:"timestamp"`
}

type SaveWorkLog struct {
	OrderID  string  `json:"order_id" validate:"required"`
	Worker   string  `json:"worker" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours    float64 `json:"hours" validate:"gt=0,lte=24"`
	Category string  `json:"category" validate:"omitempty,oneof=KBW PLW MONTAGE WVB RVS REIS"`
	Activity string  `json:"activity"`
	Note     string  `json:"note"`
}
