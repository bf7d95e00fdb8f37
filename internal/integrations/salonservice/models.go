package salonservice

import "github.com/shopspring/decimal"

// Service модель услуги из каталога SalonService
type Service struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	Active          bool            `json:"active"`
}

// StaffMember модель сотрудника из SalonService
type StaffMember struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Profession      string   `json:"profession"`
	WorkingWeekdays []string `json:"workingWeekdays"`
}

// servicesResponse ответ каталога услуг
type servicesResponse struct {
	Services []Service `json:"services"`
}

// staffResponse ответ справочника персонала
type staffResponse struct {
	Staff []StaffMember `json:"staff"`
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
