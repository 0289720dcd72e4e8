package business

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/pkg/dbmetrics"
	"github.com/m04kA/termine-direkt/pkg/psqlbuilder"
)

const table = "businesses"

var columns = []string{
	"id",
	"slug",
	"name",
	"address",
	"email",
	"service_type",
	"hours_text",
	"break_text",
	"slot_capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий бизнесов (часы работы, перерывы, вместимость слота)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	business, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	return business, nil
}

// GetBySlug получает бизнес по slug публичной страницы
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	business, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan business: %v", ErrScanRow, err)
	}

	return business, nil
}

// UpdateHours обновляет часы работы, перерывы и вместимость слота
// Возвращает обновлённый бизнес целиком
func (r *Repository) UpdateHours(ctx context.Context, id int64, hoursText string, breakText, slotCapacity *string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("hours_text", hoursText).
		Set("break_text", breakText).
		Set("slot_capacity", slotCapacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	business, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHours - execute update: %v", ErrExecQuery, err)
	}

	return business, nil
}

// scanBusiness сканирует строку в бизнес
func scanBusiness(row *sql.Row) (*domain.Business, error) {
	var business domain.Business
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&business.ID,
		&business.Slug,
		&business.Name,
		&business.Address,
		&business.Email,
		&business.ServiceType,
		&business.HoursText,
		&business.BreakText,
		&business.SlotCapacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return &business, nil
}
