package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shikma-build/budgetbook/internal/domain"
)

func TestAddQuoteDefaultsToPending(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())

	q := s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "wiring", Amount: 900})
	assert.Equal(t, domain.QuoteStatusPending, q.Status)
	assert.NotEmpty(t, q.ID)
}

func TestUpdateQuoteStatusFreely(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	q := s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "wiring", Amount: 900})

	// no state machine: any status can be set at any time
	for _, st := range []domain.QuoteStatus{
		domain.QuoteStatusAccepted,
		domain.QuoteStatusRejected,
		domain.QuoteStatusPending,
	} {
		updated, err := s.UpdateQuote(q.ID, domain.QuoteUpdate{Status: &st})
		require.NoError(t, err)
		assert.Equal(t, st, updated.Status)
	}
}

func TestUpdateQuoteNotFound(t *testing.T) {
	s := newTestStore()
	amount := 100.0
	_, err := s.UpdateQuote("missing", domain.QuoteUpdate{Amount: &amount})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteQuoteIdempotent(t *testing.T) {
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	q := s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "wiring", Amount: 900})

	s.DeleteQuote(q.ID)
	_, ok := s.Quote(q.ID)
	assert.False(t, ok)
	s.DeleteQuote(q.ID) // no-op
}

func TestQuotesBySupplier(t *testing.T) {
	s := newTestStore()
	a := s.AddSupplier(acmeForm())
	b := s.AddSupplier(domain.SupplierForm{CompanyName: "Bravo", Profession: "Painter", Email: "b@example.com"})

	s.AddQuote(domain.QuoteForm{SupplierID: a.ID, Description: "wiring", Amount: 900})
	s.AddQuote(domain.QuoteForm{SupplierID: a.ID, Description: "panel", Amount: 1500})
	s.AddQuote(domain.QuoteForm{SupplierID: b.ID, Description: "paint", Amount: 400})

	assert.Len(t, s.QuotesBySupplier(a.ID), 2)
	assert.Len(t, s.QuotesBySupplier(b.ID), 1)
	assert.Empty(t, s.QuotesBySupplier("missing"))
}

func TestValidateQuote(t *testing.T) {
	s := newTestStore()

	errs := s.ValidateQuote(domain.QuoteForm{})
	assert.NotEmpty(t, errs)

	errs = s.ValidateQuote(domain.QuoteForm{SupplierID: "x", Description: "wiring", Amount: -5})
	assert.NotEmpty(t, errs)

	errs = s.ValidateQuote(domain.QuoteForm{SupplierID: "x", Description: "wiring", Amount: 900, Status: "maybe"})
	assert.NotEmpty(t, errs)

	errs = s.ValidateQuote(domain.QuoteForm{SupplierID: "x", Description: "wiring", Amount: 900})
	assert.Empty(t, errs)
}
