package parameter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// UpdateParams частичное обновление параметра (nil = поле не меняется)
type UpdateParams struct {
	Value       *string
	Description *string
}

// Repository репозиторий конфигурационных параметров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория параметров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый параметр
// Ключ уникален; при конфликте возвращает ErrKeyTaken
func (r *Repository) Create(ctx context.Context, parameter *domain.Parameter) (*domain.Parameter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parameters").
		Columns("key", "value", "description").
		Values(parameter.Key, parameter.Value, parameter.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&parameter.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrKeyTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return parameter, nil
}

// GetByID получает параметр по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Parameter, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByKey получает параметр по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Parameter, error) {
	return r.getOne(ctx, squirrel.Eq{"key": key})
}

// List получает параметры с пагинацией skip/limit
func (r *Repository) List(ctx context.Context, skip, limit uint64) ([]*domain.Parameter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "value", "description").
		From("parameters").
		OrderBy("key ASC").
		Offset(skip).
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	parameters := make([]*domain.Parameter, 0)
	for rows.Next() {
		var parameter domain.Parameter
		if err := rows.Scan(&parameter.ID, &parameter.Key, &parameter.Value, &parameter.Description); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		parameters = append(parameters, &parameter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return parameters, nil
}

// Update частично обновляет параметр; пустой UpdateParams - no-op
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) error {
	if params.Value == nil && params.Description == nil {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("parameters").
		Where(squirrel.Eq{"id": id})

	if params.Value != nil {
		updateBuilder = updateBuilder.Set("value", *params.Value)
	}
	if params.Description != nil {
		updateBuilder = updateBuilder.Set("description", *params.Description)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrParameterNotFound
	}

	return nil
}

// Delete удаляет параметр
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("parameters").
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
		return ErrParameterNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Parameter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "value", "description").
		From("parameters").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var parameter domain.Parameter
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&parameter.ID,
		&parameter.Key,
		&parameter.Value,
		&parameter.Description,
	)

	if err == sql.ErrNoRows {
		return nil, ErrParameterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan parameter: %v", ErrScanRow, err)
	}

	return &parameter, nil
}
