package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// AddQuote creates a quote from form data; an empty status defaults to
// pending.
func (s *Store) AddQuote(form domain.QuoteForm) domain.Quote {
	status := form.Status
	if status == "" {
		status = domain.QuoteStatusPending
	}

	quote := domain.Quote{
		ID:          newID(),
		SupplierID:  form.SupplierID,
		Description: form.Description,
		Amount:      form.Amount,
		Status:      status,
		Date:        form.Date,
		Notes:       form.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	s.quotes = append(s.quotes, quote)
	s.logger.Debug("quote added", zap.String("id", quote.ID), zap.String("supplier", quote.SupplierID))
	s.notify(CollectionQuotes, quote.ID)
	return quote
}

// UpdateQuote merges the partial update onto the existing quote. Status
// changes are user-driven with no enforced state machine: any status can
// be set at any time.
func (s *Store) UpdateQuote(id string, upd domain.QuoteUpdate) (domain.Quote, error) {
	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		q := &s.quotes[i]
		if upd.SupplierID != nil {
			q.SupplierID = *upd.SupplierID
		}
		if upd.Description != nil {
			q.Description = *upd.Description
		}
		if upd.Amount != nil {
			q.Amount = *upd.Amount
		}
		if upd.Status != nil {
			q.Status = *upd.Status
		}
		if upd.Date != nil {
			q.Date = *upd.Date
		}
		if upd.Notes != nil {
			q.Notes = *upd.Notes
		}
		s.notify(CollectionQuotes, id)
		return *q, nil
	}
	return domain.Quote{}, domain.ErrNotFound
}

// DeleteQuote removes a quote; deleting an absent id is a no-op. Invoices
// created from the quote keep their reference.
func (s *Store) DeleteQuote(id string) {
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
			s.notify(CollectionQuotes, id)
			return
		}
	}
}

// Quote looks up a quote by id
func (s *Store) Quote(id string) (domain.Quote, bool) {
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quote{}, false
}

// Quotes returns a copy of the quote collection
func (s *Store) Quotes() []domain.Quote {
	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// QuotesBySupplier returns all quotes referencing the supplier
func (s *Store) QuotesBySupplier(supplierID string) []domain.Quote {
	out := []domain.Quote{}
	for _, q := range s.quotes {
		if q.SupplierID == supplierID {
			out = append(out, q)
		}
	}
	return out
}
