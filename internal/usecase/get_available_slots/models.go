package get_available_slots

import "github.com/Isazzy/SBS-ReservationService/internal/wizard"

// Request модель запроса на поиск доступных слотов
type Request struct {
	UserID int64 // ID пользователя, владеющего визардом
}

// Response модель ответа с обновленным состоянием визарда.
// Доступность внутри снимка соответствует текущей паре (дата, корзина);
// пустая доступность означает "на эту дату свободных слотов нет".
type Response struct {
	State wizard.Snapshot
}
