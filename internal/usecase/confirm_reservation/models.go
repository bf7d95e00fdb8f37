package confirm_reservation

import "github.com/Isazzy/SBS-ReservationService/internal/wizard"

// Request модель запроса на подтверждение бронирования
type Request struct {
	UserID int64   // ID пользователя, владеющего визардом
	Notes  *string // Комментарий клиента, опционально
}

// Response модель ответа на подтверждение
type Response struct {
	ReservationID int64           // ID созданного бронирования из SchedulingService
	Status        string          // Статус созданного бронирования
	State         wizard.Snapshot // Финальное состояние визарда (шаг Success)
}
