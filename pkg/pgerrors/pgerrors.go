package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатывают репозитории
const (
	CodeUniqueViolation     = pq.ErrorCode("23505")
	CodeForeignKeyViolation = pq.ErrorCode("23503")
	CodeCheckViolation      = pq.ErrorCode("23514")
)

// Is returns true if err is a *pq.Error with the given code
func Is(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return Is(err, CodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return Is(err, CodeForeignKeyViolation)
}

func IsCheckViolation(err error) bool {
	return Is(err, CodeCheckViolation)
}
