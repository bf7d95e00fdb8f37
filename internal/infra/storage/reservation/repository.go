package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/pkg/psqlbuilder"
)

// reservationColumns колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"user_id",
	"staff_id",
	"staff_name",
	"service_ids",
	"service_names",
	"reservation_date",
	"start_time",
	"duration_minutes",
	"total_price",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий локальных записей бронирований.
// Хранит копии бронирований, созданных через этот сервис: история клиента
// и состояние для флоу запроса отмены.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет локальную запись бронирования.
// Идентификатор назначается внешним SchedulingService, поэтому id
// вставляется явно, а не генерируется базой.
func (r *Repository) Create(ctx context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"user_id",
			"staff_id",
			"staff_name",
			"service_ids",
			"service_names",
			"reservation_date",
			"start_time",
			"duration_minutes",
			"total_price",
			"status",
			"notes",
		).
		Values(
			rec.ID,
			rec.UserID,
			rec.StaffID,
			rec.StaffName,
			pq.Array(rec.ServiceIDs),
			pq.Array(rec.ServiceNames),
			rec.Date,
			rec.StartTime,
			rec.DurationMinutes,
			rec.TotalPrice,
			rec.Status,
			rec.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time
	rec.UpdatedAt = updatedAt.Time

	return rec, nil
}

// GetByID получает запись бронирования по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationRecord, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := r.scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return rec, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.ReservationRecord, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ReservationRecord, 0)
	for rows.Next() {
		rec, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan reservation: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrExecQuery, err)
	}

	return records, nil
}

// UpdateStatus обновляет статус одной записи (оптимистичный локальный патч
// после успешного вызова внешнего сервиса). Остальные поля не трогаются.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.ReservationRecord, error) {
	var (
		rec        domain.ReservationRecord
		serviceIDs pq.Int64Array
		names      pq.StringArray
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.StaffID,
		&rec.StaffName,
		&serviceIDs,
		&names,
		&rec.Date,
		&rec.StartTime,
		&rec.DurationMinutes,
		&rec.TotalPrice,
		&rec.Status,
		&rec.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.ServiceIDs = serviceIDs
	rec.ServiceNames = names
	rec.CreatedAt = createdAt.Time
	rec.UpdatedAt = updatedAt.Time

	return &rec, nil
}
