package wizardflow

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wizardflow: invalid input data")

	// ErrRangeTooWide возвращается, когда запрошенный диапазон дат
	// превышает допустимый предел
	ErrRangeTooWide = errors.New("wizardflow: date range is too wide")
)
