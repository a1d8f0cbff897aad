package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый платеж
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("invoice_id", "payment_date", "amount", "method").
		Values(payment.InvoiceID, payment.PaymentDate, payment.Amount, payment.Method).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return payment, nil
}

// List получает список всех платежей, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "invoice_id", "payment_date", "amount", "method").
		From("payments").
		OrderBy("payment_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPayments(rows)
}

// ListByInvoiceIDs получает платежи сразу по нескольким счетам
// Используется сервисом для сборки счетов вместе с их платежами одним запросом
func (r *Repository) ListByInvoiceIDs(ctx context.Context, invoiceIDs []int64) ([]*domain.Payment, error) {
	if len(invoiceIDs) == 0 {
		return []*domain.Payment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "invoice_id", "payment_date", "amount", "method").
		From("payments").
		Where(squirrel.Eq{"invoice_id": invoiceIDs}).
		OrderBy("payment_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByInvoiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInvoiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPayments(rows)
}

func (r *Repository) scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	payments := make([]*domain.Payment, 0)

	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.InvoiceID, &payment.PaymentDate, &payment.Amount, &payment.Method)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPayments - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
