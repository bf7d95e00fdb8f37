package wizard

import "errors"

var (
	// ErrEmptyCart возвращается при попытке перейти дальше с пустой корзиной
	ErrEmptyCart = errors.New("wizard: cart is empty")

	// ErrNoDateSelected возвращается, когда дата еще не выбрана
	ErrNoDateSelected = errors.New("wizard: no date selected")

	// ErrDateNotEligible возвращается для даты в прошлом или дня,
	// в который не работает ни один сотрудник
	ErrDateNotEligible = errors.New("wizard: date is not eligible")

	// ErrSlotNotOffered возвращается, когда выбранный слот отсутствует
	// в текущей доступности у указанного сотрудника
	ErrSlotNotOffered = errors.New("wizard: slot is not offered by this staff member")

	// ErrNoSlotSelected возвращается при подтверждении без выбранного слота
	ErrNoSlotSelected = errors.New("wizard: no slot selected")

	// ErrInvalidTransition возвращается, когда событие недопустимо на текущем шаге
	ErrInvalidTransition = errors.New("wizard: event is not allowed at this step")

	// ErrSubmissionInProgress возвращается при попытке изменить состояние
	// во время отправки бронирования
	ErrSubmissionInProgress = errors.New("wizard: submission is in progress")

	// ErrWizardInProgress возвращается при попытке начать второй визард,
	// пока у пользователя есть незавершенный
	ErrWizardInProgress = errors.New("wizard: another wizard is already in progress")

	// ErrWizardNotFound возвращается, когда у пользователя нет активного визарда
	ErrWizardNotFound = errors.New("wizard: no active wizard session")
)
