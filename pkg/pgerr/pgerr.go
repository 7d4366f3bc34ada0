// Package pgerr классифицирует ошибки PostgreSQL, возвращаемые драйвером lib/pq
package pgerr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// Code возвращает SQLSTATE ошибки или пустую строку, если это не ошибка PostgreSQL
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint возвращает имя нарушенного ограничения (если есть)
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsUniqueViolation нарушение UNIQUE (23505)
func IsUniqueViolation(err error) bool {
	return Code(err) == pgerrcode.UniqueViolation
}

// IsExclusionViolation нарушение EXCLUDE ограничения (23P01)
func IsExclusionViolation(err error) bool {
	return Code(err) == pgerrcode.ExclusionViolation
}

// IsCheckViolation нарушение CHECK ограничения (23514)
func IsCheckViolation(err error) bool {
	return Code(err) == pgerrcode.CheckViolation
}

// IsSerializationFailure конфликт сериализуемой транзакции (40001) или deadlock (40P01)
// Такие транзакции безопасно повторять
func IsSerializationFailure(err error) bool {
	code := Code(err)
	return code == pgerrcode.SerializationFailure || code == pgerrcode.DeadlockDetected
}
