package models

import (
	"errors"
	"fmt"
)

// Коды ошибок, которые клиент присваивает сам
const (
	// ErrorCodeBlocked - sentinel "запрос приостановлен", не является ошибкой
	ErrorCodeBlocked = -3
	// ErrorCodeConflict - сервер отклонил изменение из-за конфликта данных
	ErrorCodeConflict = -4
	// ErrorCodeNotImplemented - операция еще не поддерживается клиентом
	ErrorCodeNotImplemented = -5
	// ErrorCodeLocal - ошибка локальной обработки запроса
	ErrorCodeLocal = -6
)

// BlockedMessage is the error text stored for a blocked request
const BlockedMessage = "request blocked"

var (
	// ErrOffline indicates that the server could not be reached
	ErrOffline = errors.New("connection offline")

	// ErrCancelled indicates that the caller cancelled the request
	ErrCancelled = errors.New("request cancelled")
)

// RequestError - ошибка выполнения запроса, сохраняемая в очереди
type RequestError struct {
	Message  string
	Stack    string
	Code     int
	BaseCode int
	// Offline помечает ошибку связи: запрос остается в очереди для повтора
	Offline bool
}

func (e *RequestError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
	}
	return e.Message
}

// Is makes errors.Is(err, ErrOffline) true for offline request errors
func (e *RequestError) Is(target error) bool {
	return target == ErrOffline && e.Offline
}

// BlockedError returns the sentinel error used to park a request
func BlockedError() *RequestError {
	return &RequestError{Message: BlockedMessage, Code: ErrorCodeBlocked}
}

// IsOffline reports whether err is a connectivity-class error
func IsOffline(err error) bool {
	return err != nil && errors.Is(err, ErrOffline)
}

// AsRequestError converts any error to a RequestError suitable for persisting
func AsRequestError(err error) *RequestError {
	var re *RequestError
	if errors.As(err, &re) {
		return re
	}
	return &RequestError{
		Message: err.Error(),
		Code:    ErrorCodeLocal,
		Offline: errors.Is(err, ErrOffline),
	}
}
