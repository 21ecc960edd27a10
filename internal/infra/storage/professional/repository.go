package professional

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/pkg/dbmetrics"
	"github.com/agendly/appointment-service/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var professionalColumns = []string{
	"id",
	"enterprise_id",
	"name",
	"from_weekday",
	"to_weekday",
	"from_time",
	"to_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника профессионалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профессионала с рабочим окном
// Окно должно быть провалидировано на уровне сервиса до вызова
func (r *Repository) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns(
			"enterprise_id",
			"name",
			"from_weekday",
			"to_weekday",
			"from_time",
			"to_time",
		).
		Values(
			p.EnterpriseID,
			p.Name,
			int(p.Window.FromWeekday),
			int(p.Window.ToWeekday),
			p.Window.FromTime,
			p.Window.ToTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает профессионала по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanProfessional(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByEnterprise получает всех профессионалов предприятия
func (r *Repository) GetByEnterprise(ctx context.Context, enterpriseID int64) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"enterprise_id": enterpriseID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnterprise - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEnterprise - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		p, err := r.scanProfessionalRow(rows)
		if err != nil {
			return nil, err
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByEnterprise - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// UpdateWindow обновляет рабочее окно профессионала
func (r *Repository) UpdateWindow(ctx context.Context, id int64, window domain.WorkingWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("from_weekday", int(window.FromWeekday)).
		Set("to_weekday", int(window.ToWeekday)).
		Set("from_time", window.FromTime).
		Set("to_time", window.ToTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWindow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanProfessional(row rowScanner, op string) (*domain.Professional, error) {
	p, err := r.scanInto(row)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan professional: %v", ErrScanRow, op, err)
	}
	return p, nil
}

func (r *Repository) scanProfessionalRow(rows *sql.Rows) (*domain.Professional, error) {
	p, err := r.scanInto(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: scan professional row: %v", ErrScanRow, err)
	}
	return p, nil
}

func (r *Repository) scanInto(row rowScanner) (*domain.Professional, error) {
	var p domain.Professional
	var fromWeekday, toWeekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.EnterpriseID,
		&p.Name,
		&fromWeekday,
		&toWeekday,
		&p.Window.FromTime,
		&p.Window.ToTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Window.FromWeekday = time.Weekday(fromWeekday)
	p.Window.ToWeekday = time.Weekday(toWeekday)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
