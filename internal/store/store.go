// Package store implements the in-memory entity store: four collections
// (suppliers, quotes, invoices, payments) and the settings record, with
// add/update/delete/lookup and filter operations per entity type.
//
// The store is single-owner mutable state: every operation runs to
// completion before the next is dispatched, so there is no locking. After
// every mutation the store synchronously notifies its observers; the
// persistence layer subscribes to those notifications (see internal/persist),
// which keeps the storage mechanism swappable and disableable in tests.
package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// Collection identifies which part of the store a change touched
type Collection string

const (
	CollectionSuppliers Collection = "suppliers"
	CollectionQuotes    Collection = "quotes"
	CollectionInvoices  Collection = "invoices"
	CollectionPayments  Collection = "payments"
	CollectionSettings  Collection = "settings"
)

// Change describes a single store mutation delivered to observers
type Change struct {
	Collection Collection
	ID         string
}

// Observer receives change notifications synchronously after each mutation
type Observer func(Change)

// Store holds the project's entity collections and settings
type Store struct {
	suppliers []domain.Supplier
	quotes    []domain.Quote
	invoices  []domain.Invoice
	payments  []domain.Payment
	settings  domain.Settings

	observers []Observer
	logger    *zap.Logger
}

// New creates an empty store with default settings
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		suppliers: []domain.Supplier{},
		quotes:    []domain.Quote{},
		invoices:  []domain.Invoice{},
		payments:  []domain.Payment{},
		settings:  domain.DefaultSettings(),
		logger:    logger,
	}
}

// Subscribe registers an observer for subsequent mutations
func (s *Store) Subscribe(obs Observer) {
	s.observers = append(s.observers, obs)
}

func (s *Store) notify(col Collection, id string) {
	for _, obs := range s.observers {
		obs(Change{Collection: col, ID: id})
	}
}

func newID() string {
	return uuid.NewString()
}
