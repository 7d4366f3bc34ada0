package build_report

import "github.com/kesamokki/booking-service/internal/domain"

// FilterAll значение фильтра без ограничения
const FilterAll = "all"

// Request параметры отчёта в том виде, в каком они пришли от клиента
type Request struct {
	Actor   domain.Actor
	Start   string // "2026-01-01"; пусто - окно по умолчанию
	End     string // месяц этой даты входит в отчёт целиком
	Status  string // статус счетов для выручки или "all"
	Cottage string // ID коттеджа или "all"
}

// Response агрегаты отчёта
type Response struct {
	Months       []string           `json:"months"`
	Revenue      []float64          `json:"revenue"`
	Occupancy    []CottageOccupancy `json:"occupancy"`
	TotalRevenue float64            `json:"total_revenue"`
	Start        string             `json:"start"`
	End          string             `json:"end"` // последний день окна
}

// CottageOccupancy заполняемость коттеджа по месяцам, в процентах
type CottageOccupancy struct {
	CottageID   int64     `json:"cottage_id"`
	CottageName string    `json:"cottage_name"`
	Data        []float64 `json:"data"`
	Color       string    `json:"color"`
}
