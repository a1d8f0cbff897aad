package guest

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

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового гостя
// Номер документа уникален; при конфликте возвращает ErrDocumentTaken
func (r *Repository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns("id", "full_name", "document_number", "email", "phone").
		Values(guest.ID, guest.FullName, guest.DocumentNumber, guest.Email, guest.Phone).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDocumentTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return guest, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "full_name", "document_number", "email", "phone").
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var guest domain.Guest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&guest.ID,
		&guest.FullName,
		&guest.DocumentNumber,
		&guest.Email,
		&guest.Phone,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return &guest, nil
}

// List получает список всех гостей, отсортированный по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "full_name", "document_number", "email", "phone").
		From("guests").
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		var guest domain.Guest
		if err := rows.Scan(&guest.ID, &guest.FullName, &guest.DocumentNumber, &guest.Email, &guest.Phone); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, &guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}

// Update обновляет данные гостя
func (r *Repository) Update(ctx context.Context, guest *domain.Guest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("full_name", guest.FullName).
		Set("document_number", guest.DocumentNumber).
		Set("email", guest.Email).
		Set("phone", guest.Phone).
		Where(squirrel.Eq{"id": guest.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrDocumentTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// Delete удаляет гостя
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
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
		return ErrGuestNotFound
	}

	return nil
}
