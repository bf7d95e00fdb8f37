package get_available_slots

import "errors"

var (
	// ErrWizardNotFound возвращается, когда у пользователя нет активного визарда
	ErrWizardNotFound = errors.New("get_available_slots: wizard session not found")

	// ErrInvalidStep возвращается, когда визард не на шаге выбора слота
	ErrInvalidStep = errors.New("get_available_slots: wizard is not at the slot selection step")

	// ErrSuperseded возвращается, когда результат поиска устарел к моменту
	// получения ответа (корзина или дата изменились во время запроса)
	ErrSuperseded = errors.New("get_available_slots: search result superseded by a newer state")

	// ErrSearchFailed возвращается при ошибке внешнего сервиса; поиск можно
	// повторить для той же пары (дата, корзина)
	ErrSearchFailed = errors.New("get_available_slots: availability search failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
