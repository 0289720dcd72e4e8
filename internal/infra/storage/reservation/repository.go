package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/pkg/dbmetrics"
	"github.com/m04kA/termine-direkt/pkg/psqlbuilder"
	"github.com/m04kA/termine-direkt/pkg/types"
)

const table = "reservations"

var columns = []string{
	"id",
	"business_id",
	"reservation_date",
	"reservation_time",
	"slot_ordinal",
	"guest_name",
	"guest_email",
	"phone",
	"party_size",
	"service",
	"note",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Занятый порядковый номер слота возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"business_id",
			"reservation_date",
			"reservation_time",
			"slot_ordinal",
			"guest_name",
			"guest_email",
			"phone",
			"party_size",
			"service",
			"note",
		).
		Values(
			reservation.BusinessID,
			reservation.Date.Format(domain.DateFormat),
			reservation.Time,
			reservation.SlotOrdinal,
			reservation.GuestName,
			reservation.GuestEmail,
			reservation.Phone,
			reservation.PartySize,
			reservation.Service,
			reservation.Note,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &createdAt)
	if err != nil {
		if conflict := classify(err); conflict != nil {
			return nil, fmt.Errorf("%w: Create - %v", conflict, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// ListByDate получает бронирования бизнеса на дату, отсортированные по времени
func (r *Repository) ListByDate(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"business_id":      filter.BusinessID,
			"reservation_date": filter.Date.Format(domain.DateFormat),
		}).
		OrderBy("reservation_time ASC", "slot_ordinal ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// CountForSlot считает бронирования на точное время "HH:MM"
func (r *Repository) CountForSlot(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"reservation_date": date.Format(domain.DateFormat),
			"reservation_time": slot,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if conflict := classify(err); conflict != nil {
			return 0, fmt.Errorf("%w: CountForSlot - %v", conflict, err)
		}
		return 0, fmt.Errorf("%w: CountForSlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SlotOrdinals возвращает занятые порядковые номера слота по возрастанию
func (r *Repository) SlotOrdinals(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) ([]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_ordinal").
		From(table).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"reservation_date": date.Format(domain.DateFormat),
			"reservation_time": slot,
		}).
		OrderBy("slot_ordinal ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SlotOrdinals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if conflict := classify(err); conflict != nil {
			return nil, fmt.Errorf("%w: SlotOrdinals - %v", conflict, err)
		}
		return nil, fmt.Errorf("%w: SlotOrdinals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ordinals := make([]int, 0)
	for rows.Next() {
		var ordinal int
		if err := rows.Scan(&ordinal); err != nil {
			return nil, fmt.Errorf("%w: SlotOrdinals - scan row: %v", ErrScanRow, err)
		}
		ordinals = append(ordinals, ordinal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SlotOrdinals - rows error: %v", ErrScanRow, err)
	}

	return ordinals, nil
}

// CountsByTime считает бронирования на дату одним запросом, сгруппировав по времени
func (r *Repository) CountsByTime(ctx context.Context, businessID int64, date time.Time) (map[types.TimeString]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_time", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"reservation_date": date.Format(domain.DateFormat),
		}).
		GroupBy("reservation_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountsByTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountsByTime - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[types.TimeString]int)
	for rows.Next() {
		var slot types.TimeString
		var count int
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("%w: CountsByTime - scan row: %v", ErrScanRow, err)
		}
		counts[slot] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountsByTime - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку в бронирование
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.BusinessID,
		&reservation.Date,
		&reservation.Time,
		&reservation.SlotOrdinal,
		&reservation.GuestName,
		&reservation.GuestEmail,
		&reservation.Phone,
		&reservation.PartySize,
		&reservation.Service,
		&reservation.Note,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time

	return &reservation, nil
}
