package confirm_reservation

import "errors"

var (
	// ErrWizardNotFound возвращается, когда у пользователя нет активного визарда
	ErrWizardNotFound = errors.New("confirm_reservation: wizard session not found")

	// ErrInvalidStep возвращается, когда визард не на шаге подтверждения
	ErrInvalidStep = errors.New("confirm_reservation: wizard is not at the confirmation step")

	// ErrNoSlotSelected возвращается, когда слот не выбран
	ErrNoSlotSelected = errors.New("confirm_reservation: no slot selected")

	// ErrSlotConflict возвращается, когда слот заняли раньше нас;
	// визард возвращается на шаг выбора слота
	ErrSlotConflict = errors.New("confirm_reservation: slot is no longer available")

	// ErrSubmissionFailed возвращается при прочих ошибках отправки;
	// визард остается на шаге подтверждения, повтор - по действию пользователя
	ErrSubmissionFailed = errors.New("confirm_reservation: reservation submission failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reservation: internal error")
)
