package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shikma-build/budgetbook/internal/domain"
	"github.com/shikma-build/budgetbook/internal/store"
)

func populatedStore(t *testing.T) *store.Store {
	t.Helper()
	s := newTestStore()
	sp := s.AddSupplier(acmeForm())
	q := s.AddQuote(domain.QuoteForm{SupplierID: sp.ID, Description: "wiring", Amount: 900, Status: domain.QuoteStatusAccepted})
	inv, err := s.AddInvoiceFromQuote(q.ID, domain.InvoiceForm{})
	require.NoError(t, err)
	s.AddPayment(domain.PaymentForm{InvoiceID: inv.ID, Amount: 200, Date: "2026-01-15"})
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	s := populatedStore(t)
	before := s.Snapshot()

	data, err := s.Export()
	require.NoError(t, err)

	restored := newTestStore()
	require.NoError(t, restored.Import(data))
	assert.Equal(t, before, restored.Snapshot())
}

func TestExportDocumentLayout(t *testing.T) {
	s := populatedStore(t)
	data, err := s.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"suppliers", "quotes", "invoices", "payments", "settings", "exportDate"} {
		assert.Contains(t, doc, key)
	}
}

func TestImportMalformedLeavesStoreUnchanged(t *testing.T) {
	s := populatedStore(t)
	before := s.Snapshot()

	err := s.Import([]byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrImportFormat)
	assert.Equal(t, before, s.Snapshot())
}

func TestImportMissingKeysReplaceWithEmpty(t *testing.T) {
	s := populatedStore(t)

	require.NoError(t, s.Import([]byte(`{"suppliers": []}`)))
	assert.Empty(t, s.Suppliers())
	assert.Empty(t, s.Quotes())
	assert.Empty(t, s.Invoices())
	assert.Empty(t, s.Payments())
	// settings fall back to defaults, keeping at least one status
	assert.NotEmpty(t, s.Settings().Statuses)
}

func TestImportLegacyStatusesKey(t *testing.T) {
	s := newTestStore()

	legacy := `{
		"suppliers": [],
		"quotes": [],
		"invoices": [],
		"payments": [],
		"statuses": ["open", "closed"],
		"exportDate": "2024-06-01T10:00:00Z"
	}`
	require.NoError(t, s.Import([]byte(legacy)))
	assert.Equal(t, []string{"open", "closed"}, s.Settings().Statuses)
}

func TestImportNotifiesObservers(t *testing.T) {
	s := populatedStore(t)
	data, err := s.Export()
	require.NoError(t, err)

	restored := newTestStore()
	seen := map[store.Collection]int{}
	restored.Subscribe(func(c store.Change) { seen[c.Collection]++ })

	require.NoError(t, restored.Import(data))
	for _, col := range []store.Collection{
		store.CollectionSuppliers, store.CollectionQuotes,
		store.CollectionInvoices, store.CollectionPayments, store.CollectionSettings,
	} {
		assert.Positive(t, seen[col], "no notification for %s", col)
	}
}
