package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	invoiceRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/billing/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeInvoiceRepo struct {
	nextID   int64
	invoices map[int64]*domain.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[int64]*domain.Invoice)}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	f.nextID++
	stored := *invoice
	stored.ID = f.nextID
	f.invoices[stored.ID] = &stored

	created := stored
	return &created, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, invoiceRepo.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (f *fakeInvoiceRepo) List(_ context.Context) ([]*domain.Invoice, error) {
	result := make([]*domain.Invoice, 0, len(f.invoices))
	for _, invoice := range f.invoices {
		copied := *invoice
		result = append(result, &copied)
	}
	return result, nil
}

type fakePaymentRepo struct {
	nextID   int64
	payments []*domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	f.nextID++
	stored := *payment
	stored.ID = f.nextID
	f.payments = append(f.payments, &stored)

	created := stored
	return &created, nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]*domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) ListByInvoiceIDs(_ context.Context, invoiceIDs []int64) ([]*domain.Payment, error) {
	wanted := make(map[int64]bool, len(invoiceIDs))
	for _, id := range invoiceIDs {
		wanted[id] = true
	}

	var result []*domain.Payment
	for _, p := range f.payments {
		if wanted[p.InvoiceID] {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeReservationRepo struct {
	known map[int64]bool
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if !f.known[id] {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &domain.Reservation{ID: id, Status: domain.StatusBooked}, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestService(knownReservations ...int64) (*Service, *fakeInvoiceRepo, *fakePaymentRepo) {
	invoices := newFakeInvoiceRepo()
	payments := &fakePaymentRepo{}

	known := make(map[int64]bool)
	for _, id := range knownReservations {
		known[id] = true
	}

	svc := NewService(invoices, payments, &fakeReservationRepo{known: known}, nopLogger{})
	return svc, invoices, payments
}

func TestService_CreateInvoice(t *testing.T) {
	svc, _, _ := newTestService(1)

	resp, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 1,
		IssueDate:     date(2026, time.March, 18),
		Total:         500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.InvoicePending), resp.Status)
	assert.Equal(t, "2026-03-18", resp.IssueDate)
	assert.Empty(t, resp.Payments)
}

func TestService_CreateInvoice_ReservationNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 42,
		IssueDate:     date(2026, time.March, 18),
		Total:         500,
	})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_CreatePayment(t *testing.T) {
	svc, _, _ := newTestService(1)

	invoice, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 1,
		IssueDate:     date(2026, time.March, 18),
		Total:         500,
	})
	require.NoError(t, err)

	payment, err := svc.CreatePayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID:   invoice.ID,
		PaymentDate: date(2026, time.March, 20),
		Amount:      500,
		Method:      "card",
	})

	require.NoError(t, err)
	assert.Equal(t, invoice.ID, payment.InvoiceID)
	assert.Equal(t, "card", payment.Method)
}

func TestService_CreatePayment_Validation(t *testing.T) {
	svc, _, _ := newTestService(1)

	invoice, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 1,
		IssueDate:     date(2026, time.March, 18),
		Total:         500,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     *models.CreatePaymentRequest
		wantErr error
	}{
		{
			name:    "unknown invoice",
			req:     &models.CreatePaymentRequest{InvoiceID: 99, PaymentDate: date(2026, time.March, 20), Amount: 100, Method: "cash"},
			wantErr: ErrInvoiceNotFound,
		},
		{
			name:    "non-positive amount",
			req:     &models.CreatePaymentRequest{InvoiceID: invoice.ID, PaymentDate: date(2026, time.March, 20), Amount: 0, Method: "cash"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty method",
			req:     &models.CreatePaymentRequest{InvoiceID: invoice.ID, PaymentDate: date(2026, time.March, 20), Amount: 100},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePayment(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ListInvoices_EmbedsPayments(t *testing.T) {
	svc, _, _ := newTestService(1)

	first, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 1, IssueDate: date(2026, time.March, 18), Total: 500,
	})
	require.NoError(t, err)

	second, err := svc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ReservationID: 1, IssueDate: date(2026, time.March, 19), Total: 200,
	})
	require.NoError(t, err)

	_, err = svc.CreatePayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: first.ID, PaymentDate: date(2026, time.March, 20), Amount: 500, Method: "card",
	})
	require.NoError(t, err)

	resp, err := svc.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Invoices, 2)

	byID := make(map[int64]models.InvoiceResponse)
	for _, invoice := range resp.Invoices {
		byID[invoice.ID] = invoice
	}

	assert.Len(t, byID[first.ID].Payments, 1)
	// Счет без платежей отдает пустой список, а не null
	assert.NotNil(t, byID[second.ID].Payments)
	assert.Empty(t, byID[second.ID].Payments)
}
