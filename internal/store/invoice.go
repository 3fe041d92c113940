package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/domain"
	"github.com/shikma-build/budgetbook/internal/finance"
)

// AddInvoice creates an invoice from form data and derives its final
// amount. A zero VAT falls back to the supplier's default, then the
// settings default; an empty status defaults to pending.
func (s *Store) AddInvoice(form domain.InvoiceForm) domain.Invoice {
	vat := form.Vat
	if vat == 0 {
		if sp, ok := s.Supplier(form.SupplierID); ok && sp.DefaultVat > 0 {
			vat = sp.DefaultVat
		} else {
			vat = s.settings.DefaultVat
		}
	}
	discountType := form.DiscountType
	if discountType == "" {
		discountType = domain.DiscountAmount
	}
	status := form.Status
	if status == "" {
		status = domain.InvoiceStatusPending
	}
	installments := form.Installments
	if installments == nil {
		installments = []domain.Installment{}
	}
	for i := range installments {
		if installments[i].ID == "" {
			installments[i].ID = newID()
		}
	}

	invoice := domain.Invoice{
		ID:           newID(),
		SupplierID:   form.SupplierID,
		QuoteID:      form.QuoteID,
		Description:  form.Description,
		Amount:       form.Amount,
		Vat:          vat,
		Discount:     form.Discount,
		DiscountType: discountType,
		Status:       status,
		DueDate:      form.DueDate,
		Installments: installments,
		Notes:        form.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	invoice.FinalAmount = finance.InvoiceFinalAmount(&invoice)

	s.invoices = append(s.invoices, invoice)
	s.logger.Debug("invoice added",
		zap.String("id", invoice.ID),
		zap.String("supplier", invoice.SupplierID),
		zap.Float64("finalAmount", invoice.FinalAmount),
	)
	s.notify(CollectionInvoices, invoice.ID)
	return invoice
}

// AddInvoiceFromQuote creates an invoice using an accepted quote as the
// template: supplier, amount and description are copied from the quote
// wherever the form leaves them empty. There is no uniqueness constraint;
// a quote may template any number of invoices.
func (s *Store) AddInvoiceFromQuote(quoteID string, form domain.InvoiceForm) (domain.Invoice, error) {
	quote, ok := s.Quote(quoteID)
	if !ok {
		return domain.Invoice{}, domain.ErrNotFound
	}
	form.QuoteID = quote.ID
	if form.SupplierID == "" {
		form.SupplierID = quote.SupplierID
	}
	if form.Amount == 0 {
		form.Amount = quote.Amount
	}
	if form.Description == "" {
		form.Description = quote.Description
	}
	return s.AddInvoice(form), nil
}

// UpdateInvoice merges the partial update onto the existing invoice and
// re-derives the final amount after the merge.
func (s *Store) UpdateInvoice(id string, upd domain.InvoiceUpdate) (domain.Invoice, error) {
	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		inv := &s.invoices[i]
		if upd.SupplierID != nil {
			inv.SupplierID = *upd.SupplierID
		}
		if upd.QuoteID != nil {
			inv.QuoteID = *upd.QuoteID
		}
		if upd.Description != nil {
			inv.Description = *upd.Description
		}
		if upd.Amount != nil {
			inv.Amount = *upd.Amount
		}
		if upd.Vat != nil {
			inv.Vat = *upd.Vat
		}
		if upd.Discount != nil {
			inv.Discount = *upd.Discount
		}
		if upd.DiscountType != nil {
			inv.DiscountType = *upd.DiscountType
		}
		if upd.Status != nil {
			inv.Status = *upd.Status
		}
		if upd.DueDate != nil {
			inv.DueDate = *upd.DueDate
		}
		if upd.Installments != nil {
			inv.Installments = upd.Installments
			for j := range inv.Installments {
				if inv.Installments[j].ID == "" {
					inv.Installments[j].ID = newID()
				}
			}
		}
		if upd.Notes != nil {
			inv.Notes = *upd.Notes
		}
		inv.FinalAmount = finance.InvoiceFinalAmount(inv)
		s.notify(CollectionInvoices, id)
		return *inv, nil
	}
	return domain.Invoice{}, domain.ErrNotFound
}

// DeleteInvoice removes an invoice; deleting an absent id is a no-op.
// Payments against the invoice are left in place and resolved defensively
// at read time.
func (s *Store) DeleteInvoice(id string) {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.notify(CollectionInvoices, id)
			return
		}
	}
}

// Invoice looks up an invoice by id
func (s *Store) Invoice(id string) (domain.Invoice, bool) {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return domain.Invoice{}, false
}

// Invoices returns a copy of the invoice collection
func (s *Store) Invoices() []domain.Invoice {
	out := make([]domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// UnpaidInvoices returns invoices that are neither fully paid nor cancelled
func (s *Store) UnpaidInvoices() []domain.Invoice {
	out := []domain.Invoice{}
	for _, inv := range s.invoices {
		if inv.Status != domain.InvoiceStatusPaid && inv.Status != domain.InvoiceStatusCancelled {
			out = append(out, inv)
		}
	}
	return out
}

// SetInstallmentPaid marks an installment of the invoice paid or unpaid,
// stamps the paid time, and re-runs the payment status transition.
func (s *Store) SetInstallmentPaid(invoiceID, installmentID string, paid bool) (domain.Invoice, error) {
	for i := range s.invoices {
		if s.invoices[i].ID != invoiceID {
			continue
		}
		inv := &s.invoices[i]
		for j := range inv.Installments {
			if inv.Installments[j].ID != installmentID {
				continue
			}
			inv.Installments[j].Paid = paid
			if paid {
				now := time.Now().UTC()
				inv.Installments[j].PaidAt = &now
			} else {
				inv.Installments[j].PaidAt = nil
			}
			s.refreshInvoiceStatus(inv)
			s.notify(CollectionInvoices, invoiceID)
			return *inv, nil
		}
		return domain.Invoice{}, domain.ErrNotFound
	}
	return domain.Invoice{}, domain.ErrNotFound
}

// PaidTotal sums the standalone payments and the paid installments against
// an invoice.
func (s *Store) PaidTotal(inv *domain.Invoice) float64 {
	amounts := []float64{}
	for _, p := range s.payments {
		if p.InvoiceID == inv.ID {
			amounts = append(amounts, p.Amount)
		}
	}
	for _, ins := range inv.Installments {
		if ins.Paid {
			amounts = append(amounts, ins.Amount(inv.FinalAmount))
		}
	}
	return finance.Sum(amounts...)
}

// Remaining returns the invoice's open balance: final amount minus payments
// and paid installments. Not clamped; overpayment yields a negative value.
func (s *Store) Remaining(invoiceID string) (float64, error) {
	inv, ok := s.Invoice(invoiceID)
	if !ok {
		return 0, domain.ErrNotFound
	}
	return finance.Round2(inv.FinalAmount - s.PaidTotal(&inv)), nil
}

// refreshInvoiceStatus applies the payment-driven transition: paid when the
// total covers the final amount, partially-paid when anything was paid,
// otherwise unchanged. Cancelled is sticky and never auto-exited.
func (s *Store) refreshInvoiceStatus(inv *domain.Invoice) {
	if inv.Status == domain.InvoiceStatusCancelled {
		return
	}
	total := s.PaidTotal(inv)
	switch {
	case total >= inv.FinalAmount:
		inv.Status = domain.InvoiceStatusPaid
	case total > 0:
		inv.Status = domain.InvoiceStatusPartiallyPaid
	}
}
