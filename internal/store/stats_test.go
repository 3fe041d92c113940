package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shikma-build/budgetbook/internal/domain"
)

func TestStatsEmptyStore(t *testing.T) {
	s := newTestStore()
	stats := s.Stats()
	assert.Zero(t, stats.TotalDebt)
	assert.Zero(t, stats.PaidAmount)
	assert.Zero(t, stats.RemainingAmount)
	assert.Zero(t, stats.ActiveQuotes)
	assert.Zero(t, stats.TotalInvoices)
	assert.Zero(t, stats.TotalSuppliers)
}

func TestStatsTotals(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())

	a := s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "panel", Amount: 1000, Vat: 18})
	s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "fixtures", Amount: 500, Vat: 20, Discount: 100, DiscountType: domain.DiscountAmount})
	s.AddPayment(domain.PaymentForm{InvoiceID: a.ID, Amount: 1180, Date: "2026-01-15"})

	stats := s.Stats()
	assert.InDelta(t, 1680.00, stats.TotalDebt, 0.0001)
	assert.InDelta(t, 1180.00, stats.PaidAmount, 0.0001)
	assert.InDelta(t, 500.00, stats.RemainingAmount, 0.0001)
	assert.Equal(t, 2, stats.TotalInvoices)
	assert.Equal(t, 1, stats.TotalSuppliers)
}

func TestStatsActiveQuotes(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())

	s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "a", Amount: 100})
	s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "b", Amount: 100, Status: domain.QuoteStatusAccepted})
	s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "c", Amount: 100, Status: domain.QuoteStatusRejected})

	assert.Equal(t, 1, s.Stats().ActiveQuotes)
}

func TestStatsOverpaymentGoesNegative(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	inv := s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "a", Amount: 100, Vat: 18})
	s.AddPayment(domain.PaymentForm{InvoiceID: inv.ID, Amount: 168, Date: "2026-01-15"})

	assert.InDelta(t, -50.00, s.Stats().RemainingAmount, 0.0001)
}
