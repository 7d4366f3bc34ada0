package check_availability

// Request параметры проверки в том виде, в каком они пришли от клиента
type Request struct {
	CottageID int64
	StartDate string // "2026-07-10"
	EndDate   string
}

// Response результат проверки; стоимость заполняется только для свободных дат
type Response struct {
	Available      bool    `json:"available"`
	Nights         *int    `json:"nights,omitempty"`
	BasePriceTotal *string `json:"base_price_total,omitempty"`
	CleaningFee    *string `json:"cleaning_fee,omitempty"`
	TotalPrice     *string `json:"total_price,omitempty"`
}

func unavailable() *Response {
	return &Response{Available: false}
}
