package finance

import (
	"context"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий записей книги доходов и расходов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доходов/расходов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIncome создает запись дохода
func (r *Repository) CreateIncome(ctx context.Context, income *domain.Income) (*domain.Income, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("incomes").
		Columns("reservation_id", "amount", "description", "entry_date").
		Values(income.ReservationID, income.Amount, income.Description, income.EntryDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateIncome - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&income.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateIncome - execute insert: %v", ErrExecQuery, err)
	}

	return income, nil
}

// ListIncomes получает все записи доходов, сначала новые
func (r *Repository) ListIncomes(ctx context.Context) ([]*domain.Income, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "amount", "description", "entry_date").
		From("incomes").
		OrderBy("entry_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListIncomes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIncomes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	incomes := make([]*domain.Income, 0)
	for rows.Next() {
		var income domain.Income
		err := rows.Scan(&income.ID, &income.ReservationID, &income.Amount, &income.Description, &income.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: ListIncomes - scan row: %v", ErrScanRow, err)
		}
		incomes = append(incomes, &income)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIncomes - rows error: %v", ErrScanRow, err)
	}

	return incomes, nil
}

// CreateExpense создает запись расхода
func (r *Repository) CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("expenses").
		Columns("description", "amount", "entry_date").
		Values(expense.Description, expense.Amount, expense.EntryDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateExpense - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&expense.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateExpense - execute insert: %v", ErrExecQuery, err)
	}

	return expense, nil
}

// ListExpenses получает все записи расходов, сначала новые
func (r *Repository) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "description", "amount", "entry_date").
		From("expenses").
		OrderBy("entry_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListExpenses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExpenses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: ListExpenses - scan row: %v", ErrScanRow, err)
		}
		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListExpenses - rows error: %v", ErrScanRow, err)
	}

	return expenses, nil
}
