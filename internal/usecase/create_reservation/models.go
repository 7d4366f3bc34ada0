package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	CustomerID int64     // ID клиента, на которого оформляется бронь
	CottageID  int64     // ID коттеджа
	StartDate  time.Time // Дата заезда
	EndDate    time.Time // Дата выезда (не включается)
	Guests     int       // Количество гостей
}
