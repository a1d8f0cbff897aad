package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository read-only репозиторий отчетных представлений
// Все запросы идут к SQL view, таблицы напрямую не трогаются
// (кроме финансовой сводки, которая агрегирует incomes/expenses)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// DailyLedger получает записи книги учета (доходы и расходы) с фильтрами
func (r *Repository) DailyLedger(ctx context.Context, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("entry_date", "kind", "description", "amount").
		From("daily_ledger_view")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"entry_date": *filter.To})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	query, args, err := selectBuilder.OrderBy("entry_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DailyLedger - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyLedger - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(&entry.EntryDate, &entry.Kind, &entry.Description, &entry.Amount); err != nil {
			return nil, fmt.Errorf("%w: DailyLedger - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyLedger - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// GuestRegistry получает регистр гостей с фильтрами
func (r *Repository) GuestRegistry(ctx context.Context, filter domain.GuestRegistryFilter) ([]*domain.GuestRegistryRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"guest",
		"document_number",
		"email",
		"phone",
		"start_date",
		"end_date",
		"room_number",
		"room_type",
		"reservation_status",
	).
		From("guest_registry_view")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"end_date": *filter.To})
	}
	if filter.DocumentNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"document_number": *filter.DocumentNumber})
	}
	if filter.GuestName != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"guest": "%" + *filter.GuestName + "%"})
	}

	query, args, err := selectBuilder.OrderBy("start_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GuestRegistry - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GuestRegistry - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	registry := make([]*domain.GuestRegistryRow, 0)
	for rows.Next() {
		var row domain.GuestRegistryRow
		err := rows.Scan(
			&row.Guest,
			&row.DocumentNumber,
			&row.Email,
			&row.Phone,
			&row.StartDate,
			&row.EndDate,
			&row.RoomNumber,
			&row.RoomType,
			&row.ReservationStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GuestRegistry - scan row: %v", ErrScanRow, err)
		}
		registry = append(registry, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GuestRegistry - rows error: %v", ErrScanRow, err)
	}

	return registry, nil
}

// Occupancy получает регистр занятости комнат с фильтрами
func (r *Repository) Occupancy(ctx context.Context, filter domain.OccupancyFilter) ([]*domain.OccupancyRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"room_number",
		"room_type",
		"start_date",
		"end_date",
		"reservation_status",
		"guest",
	).
		From("occupancy_registry_view")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"end_date": *filter.To})
	}
	if filter.RoomNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_number": *filter.RoomNumber})
	}
	if filter.RoomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"room_type": "%" + *filter.RoomType + "%"})
	}

	query, args, err := selectBuilder.OrderBy("room_number ASC", "start_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Occupancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Occupancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupancy := make([]*domain.OccupancyRow, 0)
	for rows.Next() {
		var row domain.OccupancyRow
		err := rows.Scan(
			&row.RoomNumber,
			&row.RoomType,
			&row.StartDate,
			&row.EndDate,
			&row.ReservationStatus,
			&row.Guest,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: Occupancy - scan row: %v", ErrScanRow, err)
		}
		occupancy = append(occupancy, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Occupancy - rows error: %v", ErrScanRow, err)
	}

	return occupancy, nil
}

// FinancialSummary считает суммарные доходы и расходы за период
func (r *Repository) FinancialSummary(ctx context.Context, filter domain.LedgerFilter) (*domain.FinancialSummary, error) {
	totalIncome, err := r.sumTable(ctx, "incomes", filter)
	if err != nil {
		return nil, err
	}

	totalExpense, err := r.sumTable(ctx, "expenses", filter)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
	}, nil
}

func (r *Repository) sumTable(ctx context.Context, table string, filter domain.LedgerFilter) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COALESCE(SUM(amount), 0)").From(table)

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"entry_date": *filter.To})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: sumTable - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: sumTable - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}
