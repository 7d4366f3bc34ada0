package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cottage единица инвентаря: коттедж, который можно забронировать
type Cottage struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Location    string
	Beds        int
	BasePrice   decimal.Decimal // за ночь
	CleaningFee decimal.Decimal // фиксированная плата за уборку
	Active      bool
	Images      []CottageImage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CottageImage изображение коттеджа
type CottageImage struct {
	ID        int64
	CottageID int64
	URL       string
	AltText   string
	Order     int
}

// CanHost проверяет, помещается ли указанное число гостей
func (c *Cottage) CanHost(guests int) bool {
	return guests >= MinGuests && guests <= c.Beds
}

// IsBookable коттедж активен и его можно бронировать
func (c *Cottage) IsBookable() bool {
	return c.Active
}

// PriceBreakdown разбивка стоимости проживания
type PriceBreakdown struct {
	Nights         int
	BasePriceTotal decimal.Decimal
	CleaningFee    decimal.Decimal
	Total          decimal.Decimal
}

// CalculatePrice считает стоимость проживания в коттедже с start по end (дата выезда не оплачивается)
// total = nights * base_price + cleaning_fee
func CalculatePrice(c *Cottage, start, end time.Time) PriceBreakdown {
	nights := DaysBetween(start, end)
	base := c.BasePrice.Mul(decimal.NewFromInt(int64(nights)))

	return PriceBreakdown{
		Nights:         nights,
		BasePriceTotal: base,
		CleaningFee:    c.CleaningFee,
		Total:          base.Add(c.CleaningFee),
	}
}

// CottagesFilter фильтр каталога
type CottagesFilter struct {
	OnlyActive bool
}
