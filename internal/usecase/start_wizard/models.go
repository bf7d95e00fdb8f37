package start_wizard

import "github.com/Isazzy/SBS-ReservationService/internal/wizard"

// Request модель запроса на старт визарда
type Request struct {
	UserID int64 // ID пользователя, для которого стартует визард
}

// Response модель ответа со стартовым состоянием визарда
type Response struct {
	State wizard.Snapshot // Снимок новой сессии (пустая корзина, шаг выбора услуг)
}
