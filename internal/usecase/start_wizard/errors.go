package start_wizard

import "errors"

var (
	// ErrWizardInProgress возвращается, когда у пользователя уже есть
	// незавершенный визард
	ErrWizardInProgress = errors.New("start_wizard: another wizard is already in progress")

	// ErrDirectoryUnavailable возвращается, когда каталог услуг или
	// справочник персонала недоступны; запрос можно повторить
	ErrDirectoryUnavailable = errors.New("start_wizard: catalog or staff directory unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_wizard: internal error")
)
