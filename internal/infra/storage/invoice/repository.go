package invoice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со счетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый счет
func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns("reservation_id", "issue_date", "total", "status").
		Values(invoice.ReservationID, invoice.IssueDate, invoice.Total, invoice.Status).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&invoice.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return invoice, nil
}

// GetByID получает счет по ID (без платежей, их загружает сервис)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "issue_date", "total", "status").
		From("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var invoice domain.Invoice
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.ReservationID,
		&invoice.IssueDate,
		&invoice.Total,
		&invoice.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan invoice: %v", ErrScanRow, err)
	}

	return &invoice, nil
}

// List получает список всех счетов, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "issue_date", "total", "status").
		From("invoices").
		OrderBy("issue_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(&invoice.ID, &invoice.ReservationID, &invoice.IssueDate, &invoice.Total, &invoice.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return invoices, nil
}
