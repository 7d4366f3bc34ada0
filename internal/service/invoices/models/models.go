package models

import (
	"fmt"
	"time"

	"github.com/kesamokki/booking-service/internal/domain"
)

// StatusOverdue псевдостатус фильтра: pending со сроком оплаты в прошлом
const StatusOverdue = "overdue"

// ListRequest фильтр списка счетов
type ListRequest struct {
	CustomerID *int64
	Status     *string // pending, paid, cancelled, overdue
}

// InvoiceResponse счёт
type InvoiceResponse struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservation_id"`
	Number        string     `json:"invoice_number"`
	BilledAt      string     `json:"billed_at"`
	DueDate       string     `json:"due_date"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	Overdue       bool       `json:"overdue"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// InvoiceListResponse список счетов с количеством по статусам
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Counts   CountsResponse    `json:"counts"`
}

// CountsResponse количество счетов по статусам
type CountsResponse struct {
	Pending   int `json:"pending"`
	Paid      int `json:"paid"`
	Cancelled int `json:"cancelled"`
	Overdue   int `json:"overdue"`
}

// LineItem строка печатной формы счёта
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// PrintResponse печатная форма счёта
type PrintResponse struct {
	Invoice     InvoiceResponse `json:"invoice"`
	Customer    PrintCustomer   `json:"customer"`
	CottageName string          `json:"cottage_name"`
	Location    string          `json:"location"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Guests      int             `json:"guests"`
	Items       []LineItem      `json:"items"`
	Total       string          `json:"total"`
}

// PrintCustomer получатель счёта
type PrintCustomer struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// FromDomainInvoice конвертирует domain модель в DTO
func FromDomainInvoice(inv *domain.Invoice, today time.Time) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	return &InvoiceResponse{
		ID:            inv.ID,
		ReservationID: inv.ReservationID,
		Number:        inv.Number,
		BilledAt:      inv.BilledAt.Format(domain.DateFormat),
		DueDate:       inv.DueDate.Format(domain.DateFormat),
		Amount:        inv.Amount.StringFixed(2),
		Status:        string(inv.Status),
		Overdue:       inv.IsOverdue(today),
		PaidAt:        inv.PaidAt,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// FromDomainCounts конвертирует счётчики статусов
func FromDomainCounts(c domain.InvoiceCounts) CountsResponse {
	return CountsResponse{
		Pending:   c.Pending,
		Paid:      c.Paid,
		Cancelled: c.Cancelled,
		Overdue:   c.Overdue,
	}
}

// BuildPrint собирает печатную форму: проживание по базовой цене и уборка
// Сумма строк совпадает со стоимостью брони; сумма счёта может отличаться, если её задали вручную
func BuildPrint(inv *domain.Invoice, res *domain.Reservation, c *domain.Cottage, today time.Time) *PrintResponse {
	price := domain.CalculatePrice(c, res.StartDate, res.EndDate)

	items := []LineItem{
		{
			Description: fmt.Sprintf("%d nights × %s", price.Nights, c.BasePrice.StringFixed(2)),
			Quantity:    price.Nights,
			UnitPrice:   c.BasePrice.StringFixed(2),
			Total:       price.BasePriceTotal.StringFixed(2),
		},
		{
			Description: "Cleaning fee",
			Quantity:    1,
			UnitPrice:   price.CleaningFee.StringFixed(2),
			Total:       price.CleaningFee.StringFixed(2),
		},
	}

	return &PrintResponse{
		Invoice: *FromDomainInvoice(inv, today),
		Customer: PrintCustomer{
			FullName: res.Customer.FullName,
			Email:    res.Customer.Email,
			Phone:    res.Customer.Phone,
			Address:  res.Customer.Address,
		},
		CottageName: c.Name,
		Location:    c.Location,
		StartDate:   res.StartDate.Format(domain.DateFormat),
		EndDate:     res.EndDate.Format(domain.DateFormat),
		Guests:      res.Guests,
		Items:       items,
		Total:       inv.Amount.StringFixed(2),
	}
}
