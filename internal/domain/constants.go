package domain

// Business validation constants
const (
	MinGuests           = 1
	MinBeds             = 1
	MaxNotesLength      = 1000
	MaxCottageNameLen   = 80
	MaxCottageLocation  = 120
	DefaultInvoiceDueIn = 14 // дней от даты выставления
)

// Invoice numbering
const (
	InvoiceNumberPrefix = "INV-"
	InvoiceNumberDigits = 3
)

// Time format constants
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	MonthLabelFormat = "January 2006"
)

// ActiveReservationStatuses статусы, которые занимают коттедж и участвуют в проверке пересечений
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}

// OccupyingReservationStatuses статусы, учитываемые в отчёте по заполняемости
// Завершённые брони тоже занимали коттедж
var OccupyingReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCompleted,
}
