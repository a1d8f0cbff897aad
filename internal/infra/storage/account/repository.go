package account

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

// Repository репозиторий плана счетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория плана счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый счет плана счетов
// Код счета уникален; при конфликте возвращает ErrCodeTaken
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("code", "name", "type", "level").
		Values(account.Code, account.Name, account.Type, account.Level).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return account, nil
}

// GetByID получает счет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode получает счет по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code})
}

// List получает счета, отсортированные по коду, с пагинацией skip/limit
func (r *Repository) List(ctx context.Context, skip, limit uint64) ([]*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "name", "type", "level").
		From("accounts").
		OrderBy("code ASC").
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

	return r.scanAccounts(rows)
}

// Search ищет счета по подстроке в коде или названии
func (r *Repository) Search(ctx context.Context, term string) ([]*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pattern := "%" + term + "%"
	query, args, err := psqlbuilder.Select("id", "code", "name", "type", "level").
		From("accounts").
		Where(squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"name": pattern},
		}).
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAccounts(rows)
}

// Update обновляет счет
func (r *Repository) Update(ctx context.Context, account *domain.Account) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accounts").
		Set("code", account.Code).
		Set("name", account.Name).
		Set("type", account.Type).
		Set("level", account.Level).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrCodeTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// Delete удаляет счет
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("accounts").
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
		return ErrAccountNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "name", "type", "level").
		From("accounts").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Code,
		&account.Name,
		&account.Type,
		&account.Level,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan account: %v", ErrScanRow, err)
	}

	return &account, nil
}

func (r *Repository) scanAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Code, &account.Name, &account.Type, &account.Level); err != nil {
			return nil, fmt.Errorf("%w: scanAccounts - scan row: %v", ErrScanRow, err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAccounts - rows error: %v", ErrScanRow, err)
	}

	return accounts, nil
}
