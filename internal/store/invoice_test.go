package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shikma-build/budgetbook/internal/domain"
	"github.com/shikma-build/budgetbook/internal/finance"
)

func TestAddInvoiceComputesFinalAmount(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())

	inv := s.AddInvoice(domain.InvoiceForm{
		SupplierID:  sp.ID,
		Description: "electric panel",
		Amount:      1000,
		Vat:         18,
	})
	assert.InDelta(t, 1180.00, inv.FinalAmount, 0.0001)
	assert.Equal(t, domain.InvoiceStatusPending, inv.Status)
	assert.Equal(t, domain.DiscountAmount, inv.DiscountType)
}

func TestAddInvoiceVatDefaultChain(t *testing.T) {
	s := newTestStore()

	// supplier default wins over settings default
	sp := s.AddSupplier(domain.SupplierForm{
		CompanyName: "Acme", Profession: "Electrician", Phone: "050", DefaultVat: 17,
	})
	inv := s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "work", Amount: 100})
	assert.Equal(t, 17.0, inv.Vat)

	// unknown supplier falls back to the settings default
	inv = s.AddInvoice(domain.InvoiceForm{SupplierID: "missing", Description: "work", Amount: 100})
	assert.Equal(t, s.Settings().DefaultVat, inv.Vat)

	// explicit VAT is kept as-is
	inv = s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "work", Amount: 100, Vat: 8})
	assert.Equal(t, 8.0, inv.Vat)
}

func TestFinalAmountInvariantAfterUpdate(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	inv := s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "work", Amount: 1000, Vat: 18})

	discount := 10.0
	discountType := domain.DiscountPercentage
	updated, err := s.UpdateInvoice(inv.ID, domain.InvoiceUpdate{
		Discount:     &discount,
		DiscountType: &discountType,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1062.00, updated.FinalAmount, 0.0001)
	assert.InDelta(t, finance.InvoiceFinalAmount(&updated), updated.FinalAmount, 0.0001)

	// a stale final amount in the update payload is never trusted
	amount := 500.0
	updated, err = s.UpdateInvoice(inv.ID, domain.InvoiceUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.InDelta(t, finance.InvoiceFinalAmount(&updated), updated.FinalAmount, 0.0001)
}

func TestAddInvoiceFromQuote(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	q := s.AddQuote(domain.QuoteForm{
		SupplierID:  sp.ID,
		Description: "full wiring",
		Amount:      2000,
		Status:      domain.QuoteStatusAccepted,
	})

	inv, err := s.AddInvoiceFromQuote(q.ID, domain.InvoiceForm{})
	require.NoError(t, err)
	assert.Equal(t, q.ID, inv.QuoteID)
	assert.Equal(t, sp.ID, inv.SupplierID)
	assert.Equal(t, 2000.0, inv.Amount)
	assert.Equal(t, "full wiring", inv.Description)

	// one quote may template several invoices
	second, err := s.AddInvoiceFromQuote(q.ID, domain.InvoiceForm{Amount: 500, Description: "first stage"})
	require.NoError(t, err)
	assert.Equal(t, 500.0, second.Amount)
	assert.Equal(t, "first stage", second.Description)

	_, err = s.AddInvoiceFromQuote("missing", domain.InvoiceForm{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnpaidInvoices(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())

	s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "a", Amount: 100})
	s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "b", Amount: 100, Status: domain.InvoiceStatusPaid})
	s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "c", Amount: 100, Status: domain.InvoiceStatusCancelled})
	s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "d", Amount: 100, Status: domain.InvoiceStatusInProgress})

	unpaid := s.UnpaidInvoices()
	require.Len(t, unpaid, 2)
	for _, inv := range unpaid {
		assert.NotEqual(t, domain.InvoiceStatusPaid, inv.Status)
		assert.NotEqual(t, domain.InvoiceStatusCancelled, inv.Status)
	}
}

func TestSetInstallmentPaidTransitions(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	inv := s.AddInvoice(domain.InvoiceForm{
		SupplierID:  sp.ID,
		Description: "staged work",
		Amount:      1000,
		Vat:         18,
		Installments: []domain.Installment{
			{Type: domain.DiscountPercentage, Value: 50, Trigger: "milestone", Target: "foundation done"},
			{Type: domain.DiscountPercentage, Value: 50, Trigger: "milestone", Target: "handover"},
		},
	})
	require.Len(t, inv.Installments, 2)
	first, second := inv.Installments[0].ID, inv.Installments[1].ID

	updated, err := s.SetInstallmentPaid(inv.ID, first, true)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, updated.Status)
	assert.NotNil(t, updated.Installments[0].PaidAt)

	updated, err = s.SetInstallmentPaid(inv.ID, second, true)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	// unmarking drops back to partially-paid
	updated, err = s.SetInstallmentPaid(inv.ID, second, false)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, updated.Status)
	assert.Nil(t, updated.Installments[1].PaidAt)

	_, err = s.SetInstallmentPaid(inv.ID, "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.SetInstallmentPaid("missing", first, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelledStatusIsSticky(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	inv := s.AddInvoice(domain.InvoiceForm{
		SupplierID:  sp.ID,
		Description: "cancelled job",
		Amount:      1000,
		Vat:         18,
		Status:      domain.InvoiceStatusCancelled,
	})

	s.AddPayment(domain.PaymentForm{InvoiceID: inv.ID, Amount: 1180, Date: "2026-01-15"})
	got, ok := s.Invoice(inv.ID)
	require.True(t, ok)
	assert.Equal(t, domain.InvoiceStatusCancelled, got.Status)
}

func TestDeleteInvoiceIdempotent(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	inv := s.AddInvoice(domain.InvoiceForm{SupplierID: sp.ID, Description: "a", Amount: 100})

	s.DeleteInvoice(inv.ID)
	_, ok := s.Invoice(inv.ID)
	assert.False(t, ok)
	s.DeleteInvoice(inv.ID) // no-op
}

func TestValidateInvoice(t *testing.T) {
	s := newTestStore()

	errs := s.ValidateInvoice(domain.InvoiceForm{SupplierID: "x", Description: "a", Amount: 100})
	assert.Empty(t, errs)

	errs = s.ValidateInvoice(domain.InvoiceForm{SupplierID: "x", Description: "a", Amount: 0})
	assert.NotEmpty(t, errs)

	errs = s.ValidateInvoice(domain.InvoiceForm{
		SupplierID: "x", Description: "a", Amount: 100,
		Discount: 120, DiscountType: domain.DiscountPercentage,
	})
	assert.Contains(t, errs, "percentage discount cannot exceed 100")

	errs = s.ValidateInvoice(domain.InvoiceForm{
		SupplierID: "x", Description: "a", Amount: 100, Status: "no-such-status",
	})
	assert.NotEmpty(t, errs)

	// a custom status from settings is accepted
	s.AddStatus("on-hold")
	errs = s.ValidateInvoice(domain.InvoiceForm{
		SupplierID: "x", Description: "a", Amount: 100, Status: "on-hold",
	})
	assert.Empty(t, errs)
}
