// Package apperror определяет единый тип ошибки приложения с дискриминантом Kind.
//
// Все семантические отказы доменной логики (не найдено, некорректные данные,
// дубликат, невалидный токен) представляются одним типом *Error, который
// обработчики транслируют в HTTP-статусы. Любая прочая ошибка считается
// неожиданной и отображается в 500.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind определяет категорию ошибки приложения.
type Kind int

const (
	// KindUnexpected — любая ошибка вне доменной таксономии (сбой хранилища и пр.).
	KindUnexpected Kind = iota
	// KindNotFound — сущность с указанным идентификатором отсутствует.
	KindNotFound
	// KindInvalidData — поле сущности нарушает правило валидации.
	KindInvalidData
	// KindAlreadyExists — нарушение уникальности при регистрации.
	KindAlreadyExists
	// KindTokenInvalid — токен отсутствует, подделан или истёк.
	KindTokenInvalid
)

// Error — ошибка приложения с категорией, сообщением и необязательной причиной.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error возвращает текст ошибки, включая причину, если она есть.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую причину для errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus отображает категорию ошибки в HTTP-статус.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidData:
		return http.StatusBadRequest
	case KindAlreadyExists:
		return http.StatusConflict
	case KindTokenInvalid:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound создает ошибку категории KindNotFound с форматированным сообщением.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidData создает ошибку категории KindInvalidData.
func InvalidData(msg string) *Error {
	return &Error{Kind: KindInvalidData, Message: msg}
}

// AlreadyExists создает ошибку категории KindAlreadyExists.
func AlreadyExists(msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: msg}
}

// TokenInvalid создает ошибку категории KindTokenInvalid, сохраняя причину
// для логирования (истёк, подделан, некорректен).
func TokenInvalid(msg string, cause error) *Error {
	return &Error{Kind: KindTokenInvalid, Message: msg, Err: cause}
}

// Unexpected оборачивает произвольную ошибку в категорию KindUnexpected.
func Unexpected(msg string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: msg, Err: cause}
}

// From извлекает *Error из цепочки ошибок либо оборачивает err как Unexpected.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected("unexpected error", err)
}

// IsKind сообщает, принадлежит ли ошибка указанной категории.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
