package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// AddPayment records a payment against an invoice and re-runs the invoice
// status transition. An empty method defaults to bank transfer. The
// balance check (payment must not exceed the remaining amount) is a
// validation concern; the store records what it is given.
func (s *Store) AddPayment(form domain.PaymentForm) domain.Payment {
	method := form.Method
	if method == "" {
		method = domain.PaymentMethodBankTransfer
	}

	payment := domain.Payment{
		ID:        newID(),
		InvoiceID: form.InvoiceID,
		Amount:    form.Amount,
		Date:      form.Date,
		Method:    method,
		Reference: form.Reference,
		Notes:     form.Notes,
		CreatedAt: time.Now().UTC(),
	}
	s.payments = append(s.payments, payment)
	s.logger.Debug("payment added",
		zap.String("id", payment.ID),
		zap.String("invoice", payment.InvoiceID),
		zap.Float64("amount", payment.Amount),
	)
	s.notify(CollectionPayments, payment.ID)

	s.refreshInvoiceStatusByID(form.InvoiceID)
	return payment
}

// DeletePayment removes a payment and re-runs the status transition on the
// invoice it belonged to. Deleting an absent id is a no-op.
func (s *Store) DeletePayment(id string) {
	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		invoiceID := s.payments[i].InvoiceID
		s.payments = append(s.payments[:i], s.payments[i+1:]...)
		s.notify(CollectionPayments, id)
		s.refreshInvoiceStatusByID(invoiceID)
		return
	}
}

// Payment looks up a payment by id
func (s *Store) Payment(id string) (domain.Payment, bool) {
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Payment{}, false
}

// Payments returns a copy of the payment collection
func (s *Store) Payments() []domain.Payment {
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// PaymentsByInvoice returns all payments recorded against the invoice
func (s *Store) PaymentsByInvoice(invoiceID string) []domain.Payment {
	out := []domain.Payment{}
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) refreshInvoiceStatusByID(invoiceID string) {
	for i := range s.invoices {
		if s.invoices[i].ID == invoiceID {
			before := s.invoices[i].Status
			s.refreshInvoiceStatus(&s.invoices[i])
			if s.invoices[i].Status != before {
				s.notify(CollectionInvoices, invoiceID)
			}
			return
		}
	}
}
