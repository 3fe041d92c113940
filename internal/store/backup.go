package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shikma-build/budgetbook/internal/domain"
)

// Snapshot is the serialized form of the whole store. It doubles as the
// export file layout (with ExportDate added) and the unit the persistence
// layer loads at startup.
type Snapshot struct {
	Suppliers []domain.Supplier `json:"suppliers"`
	Quotes    []domain.Quote    `json:"quotes"`
	Invoices  []domain.Invoice  `json:"invoices"`
	Payments  []domain.Payment  `json:"payments"`
	Settings  domain.Settings   `json:"settings"`
}

// BackupDocument is the export file: the snapshot plus an export timestamp
type BackupDocument struct {
	Snapshot
	// LegacyStatuses maps the old export layout, where the status list was
	// a top-level "statuses" key instead of part of settings. Read on
	// import, never written on export.
	LegacyStatuses []string  `json:"statuses,omitempty"`
	ExportDate     time.Time `json:"exportDate"`
}

// Snapshot returns a copy of the current store contents
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Suppliers: s.Suppliers(),
		Quotes:    s.Quotes(),
		Invoices:  s.Invoices(),
		Payments:  s.Payments(),
		Settings:  s.Settings(),
	}
}

// Restore replaces the store contents wholesale with the snapshot. Nil
// collections become empty; settings missing a status list fall back to
// defaults, so the invariant of at least one status always holds.
// Observers are notified per collection.
func (s *Store) Restore(snap Snapshot) {
	s.suppliers = snap.Suppliers
	if s.suppliers == nil {
		s.suppliers = []domain.Supplier{}
	}
	s.quotes = snap.Quotes
	if s.quotes == nil {
		s.quotes = []domain.Quote{}
	}
	s.invoices = snap.Invoices
	if s.invoices == nil {
		s.invoices = []domain.Invoice{}
	}
	s.payments = snap.Payments
	if s.payments == nil {
		s.payments = []domain.Payment{}
	}
	s.settings = normalizeSettings(snap.Settings)

	s.notify(CollectionSuppliers, "")
	s.notify(CollectionQuotes, "")
	s.notify(CollectionInvoices, "")
	s.notify(CollectionPayments, "")
	s.notify(CollectionSettings, "")
}

// Export serializes the four collections and settings into one backup
// document, stamped with the export time.
func (s *Store) Export() ([]byte, error) {
	doc := BackupDocument{
		Snapshot:   s.Snapshot(),
		ExportDate: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// Import replaces the store contents with a backup document. A missing
// collection key replaces that collection with an empty one, which makes
// re-importing older exports idempotent. A malformed document is rejected
// with ErrImportFormat and nothing is applied.
func (s *Store) Import(data []byte) error {
	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}

	// Legacy exports carried the status list outside settings.
	if len(doc.Settings.Statuses) == 0 && len(doc.LegacyStatuses) > 0 {
		doc.Settings.Statuses = doc.LegacyStatuses
	}

	s.Restore(doc.Snapshot)
	s.logger.Info("data imported")
	return nil
}

func normalizeSettings(settings domain.Settings) domain.Settings {
	defaults := domain.DefaultSettings()
	if settings.Currency == "" {
		settings.Currency = defaults.Currency
	}
	if settings.DefaultVat == 0 {
		settings.DefaultVat = defaults.DefaultVat
	}
	if len(settings.Statuses) == 0 {
		settings.Statuses = defaults.Statuses
	}
	return settings
}
