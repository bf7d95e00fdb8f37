package schedulingservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulingservice client: invalid response")

	// ErrUnavailable возвращается при транспортных ошибках. Для поиска слотов
	// это "поиск не удался, повторите" - в отличие от пустой доступности,
	// которая ошибкой не является.
	ErrUnavailable = errors.New("schedulingservice client: service unavailable")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("schedulingservice client: reservation not found")

	// ErrSlotConflict возвращается, когда слот уже занят (гонка с другим
	// клиентом). Детали приходят в *ValidationError.
	ErrSlotConflict = errors.New("schedulingservice client: slot is no longer available")

	// ErrStatusConflict возвращается, когда смена статуса недопустима
	// для текущего состояния бронирования
	ErrStatusConflict = errors.New("schedulingservice client: status transition conflict")
)
