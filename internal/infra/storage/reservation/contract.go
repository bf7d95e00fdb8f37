package reservation

import (
	"github.com/Isazzy/SBS-ReservationService/pkg/dbmetrics"
)

// DBExecutor интерфейс исполнителя запросов к БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
