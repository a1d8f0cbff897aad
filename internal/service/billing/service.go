package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	invoiceRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/billing/models"
)

// Service сервис для работы со счетами и платежами
type Service struct {
	invoiceRepo     InvoiceRepository
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса биллинга
func NewService(
	invoiceRepo InvoiceRepository,
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		invoiceRepo:     invoiceRepo,
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// CreateInvoice выставляет счет по резервации
// Резервация должна существовать; новый счет всегда pending
func (s *Service) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceResponse, error) {
	s.logger.Info("CreateInvoice: creating invoice for reservation=%d, total=%.2f", req.ReservationID, req.Total)

	if req.ReservationID <= 0 {
		s.logger.Warn("CreateInvoice: invalid reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if req.Total < 0 {
		s.logger.Warn("CreateInvoice: negative total=%.2f", req.Total)
		return nil, fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}
	if req.IssueDate.IsZero() {
		s.logger.Warn("CreateInvoice: issueDate is missing")
		return nil, fmt.Errorf("%w: issueDate is required", ErrInvalidInput)
	}

	// Счет выставляется только по существующей резервации
	if _, err := s.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("CreateInvoice: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CreateInvoice: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: CreateInvoice - repository error: %v", ErrInternal, err)
	}

	invoice := &domain.Invoice{
		ReservationID: req.ReservationID,
		IssueDate:     req.IssueDate,
		Total:         req.Total,
		Status:        domain.InvoicePending,
		Payments:      []domain.Payment{},
	}

	created, err := s.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		s.logger.Error("CreateInvoice: repository error for reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: CreateInvoice - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateInvoice: successfully created invoice id=%d", created.ID)
	return models.FromDomainInvoice(created), nil
}

// GetInvoice получает счет по ID вместе с платежами
func (s *Service) GetInvoice(ctx context.Context, id int64) (*models.InvoiceResponse, error) {
	s.logger.Info("GetInvoice: fetching invoice id=%d", id)

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("GetInvoice: invoice id=%d not found", id)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("GetInvoice: repository error for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetInvoice - repository error: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByInvoiceIDs(ctx, []int64{invoice.ID})
	if err != nil {
		s.logger.Error("GetInvoice: failed to get payments for invoice id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetInvoice - repository error: %v", ErrInternal, err)
	}

	attachPayments([]*domain.Invoice{invoice}, payments)

	return models.FromDomainInvoice(invoice), nil
}

// ListInvoices получает список всех счетов с их платежами
// Платежи подтягиваются одним запросом по всем счетам сразу
func (s *Service) ListInvoices(ctx context.Context) (*models.InvoiceListResponse, error) {
	s.logger.Info("ListInvoices: fetching all invoices")

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListInvoices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInvoices - repository error: %v", ErrInternal, err)
	}

	invoiceIDs := make([]int64, 0, len(invoices))
	for _, invoice := range invoices {
		invoiceIDs = append(invoiceIDs, invoice.ID)
	}

	payments, err := s.paymentRepo.ListByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		s.logger.Error("ListInvoices: failed to get payments: %v", err)
		return nil, fmt.Errorf("%w: ListInvoices - repository error: %v", ErrInternal, err)
	}

	attachPayments(invoices, payments)

	s.logger.Info("ListInvoices: successfully fetched %d invoices", len(invoices))
	return models.FromDomainInvoiceList(invoices), nil
}

// CreatePayment регистрирует платеж по счету
// Счет должен существовать
func (s *Service) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("CreatePayment: creating payment for invoice=%d, amount=%.2f", req.InvoiceID, req.Amount)

	if req.InvoiceID <= 0 {
		s.logger.Warn("CreatePayment: invalid invoice id=%d", req.InvoiceID)
		return nil, fmt.Errorf("%w: invoiceId must be positive", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		s.logger.Warn("CreatePayment: invalid amount=%.2f", req.Amount)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.PaymentDate.IsZero() {
		s.logger.Warn("CreatePayment: paymentDate is missing")
		return nil, fmt.Errorf("%w: paymentDate is required", ErrInvalidInput)
	}
	if req.Method == "" {
		s.logger.Warn("CreatePayment: method is missing")
		return nil, fmt.Errorf("%w: method is required", ErrInvalidInput)
	}

	// Платеж регистрируется только по существующему счету
	if _, err := s.invoiceRepo.GetByID(ctx, req.InvoiceID); err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("CreatePayment: invoice id=%d not found", req.InvoiceID)
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("CreatePayment: failed to get invoice id=%d: %v", req.InvoiceID, err)
		return nil, fmt.Errorf("%w: CreatePayment - repository error: %v", ErrInternal, err)
	}

	payment := &domain.Payment{
		InvoiceID:   req.InvoiceID,
		PaymentDate: req.PaymentDate,
		Amount:      req.Amount,
		Method:      req.Method,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		s.logger.Error("CreatePayment: repository error for invoice=%d: %v", req.InvoiceID, err)
		return nil, fmt.Errorf("%w: CreatePayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePayment: successfully created payment id=%d", created.ID)
	return models.FromDomainPayment(created), nil
}

// ListPayments получает список всех платежей
func (s *Service) ListPayments(ctx context.Context) (*models.PaymentListResponse, error) {
	s.logger.Info("ListPayments: fetching all payments")

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPayments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPayments: successfully fetched %d payments", len(payments))
	return models.FromDomainPaymentList(payments), nil
}

// attachPayments раскладывает платежи по счетам
func attachPayments(invoices []*domain.Invoice, payments []*domain.Payment) {
	byInvoice := make(map[int64][]domain.Payment, len(invoices))
	for _, payment := range payments {
		byInvoice[payment.InvoiceID] = append(byInvoice[payment.InvoiceID], *payment)
	}

	for _, invoice := range invoices {
		invoice.Payments = byInvoice[invoice.ID]
		if invoice.Payments == nil {
			invoice.Payments = []domain.Payment{}
		}
	}
}
