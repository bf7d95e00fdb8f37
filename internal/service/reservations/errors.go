package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда запрос отмены недопустим для
	// текущего статуса бронирования (уже запрошена отмена, отменено
	// или завершено)
	ErrCannotCancel = errors.New("cancellation cannot be requested")

	// ErrInvalidStatus возвращается при недопустимом статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrStatusConflict возвращается, когда внешний сервис отклонил смену статуса
	ErrStatusConflict = errors.New("status transition conflict")

	// ErrSchedulerUnavailable возвращается, когда SchedulingService недоступен;
	// локальная запись при этом не меняется
	ErrSchedulerUnavailable = errors.New("scheduling service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
