// Package persist is the durability layer behind the store: a key-value
// adapter holding the JSON-serialized form of each collection under a
// fixed key, an autosave observer that writes the changed collection after
// every store mutation, and a restore routine for startup.
package persist

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/store"
)

// Fixed storage keys, one per collection plus the settings record.
// KeyStatuses is the legacy key of the standalone status list; it is read
// on restore for old data files and never written.
const (
	KeySuppliers = "suppliers"
	KeyQuotes    = "quotes"
	KeyInvoices  = "invoices"
	KeyPayments  = "payments"
	KeySettings  = "settings"
	KeyStatuses  = "statuses"
)

// Adapter is the durable key-value store behind the entity store
type Adapter interface {
	// Load returns the stored value for the key, or ok=false when absent
	Load(key string) (value []byte, ok bool, err error)
	// Save writes the value under the key, replacing any previous value
	Save(key string, value []byte) error
}

// Restore loads every collection from the adapter into the store. A
// missing key leaves that collection empty; an unreadable or malformed
// value is logged and treated as absent rather than aborting startup.
func Restore(a Adapter, s *store.Store, logger *zap.Logger) error {
	var snap store.Snapshot

	loadInto(a, KeySuppliers, &snap.Suppliers, logger)
	loadInto(a, KeyQuotes, &snap.Quotes, logger)
	loadInto(a, KeyInvoices, &snap.Invoices, logger)
	loadInto(a, KeyPayments, &snap.Payments, logger)
	loadInto(a, KeySettings, &snap.Settings, logger)

	// Data files from the legacy layout keep the status list under its
	// own key.
	if len(snap.Settings.Statuses) == 0 {
		var statuses []string
		loadInto(a, KeyStatuses, &statuses, logger)
		snap.Settings.Statuses = statuses
	}

	s.Restore(snap)
	return nil
}

func loadInto(a Adapter, key string, dest interface{}, logger *zap.Logger) {
	data, ok, err := a.Load(key)
	if err != nil {
		logger.Warn("failed to load collection, starting empty", zap.String("key", key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("stored collection is malformed, starting empty", zap.String("key", key), zap.Error(err))
	}
}

func marshalFor(s *store.Store, col store.Collection) (string, []byte, error) {
	var (
		key   string
		value interface{}
	)
	switch col {
	case store.CollectionSuppliers:
		key, value = KeySuppliers, s.Suppliers()
	case store.CollectionQuotes:
		key, value = KeyQuotes, s.Quotes()
	case store.CollectionInvoices:
		key, value = KeyInvoices, s.Invoices()
	case store.CollectionPayments:
		key, value = KeyPayments, s.Payments()
	case store.CollectionSettings:
		key, value = KeySettings, s.Settings()
	default:
		return "", nil, fmt.Errorf("unknown collection %q", col)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	return key, data, nil
}
