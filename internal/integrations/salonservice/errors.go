package salonservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("salonservice client: invalid response")

	// ErrUnavailable возвращается при транспортных ошибках (сервис недоступен,
	// таймаут). Отличается от бизнес-ошибок: такой запрос можно повторить.
	ErrUnavailable = errors.New("salonservice client: service unavailable")
)
