package wizard

// Step represents a step of the reservation wizard
type Step string

const (
	// StepSelectingServices выбор услуг (корзина)
	StepSelectingServices Step = "selecting_services"

	// StepSelectingDate выбор даты с учетом расписаний персонала
	StepSelectingDate Step = "selecting_date"

	// StepSelectingSlot выбор слота и мастера из доступности
	StepSelectingSlot Step = "selecting_slot"

	// StepConfirming подтверждение перед отправкой
	StepConfirming Step = "confirming"

	// StepSubmitting отправка запроса на бронирование
	StepSubmitting Step = "submitting"

	// StepSuccess бронирование создано, визард завершен
	StepSuccess Step = "success"
)

// String returns the step name
func (s Step) String() string {
	return string(s)
}
