package domain

// Actor пользователь, от имени которого выполняется операция
type Actor struct {
	UserID int64
	Staff  bool // сотрудник: подтверждает брони, выставляет счета, видит отчёты
}

// CanAccess владелец записи или сотрудник
func (a Actor) CanAccess(ownerID int64) bool {
	return a.Staff || a.UserID == ownerID
}
