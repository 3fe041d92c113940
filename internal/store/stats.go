package store

import (
	"github.com/shikma-build/budgetbook/internal/domain"
	"github.com/shikma-build/budgetbook/internal/finance"
)

// Stats derives the dashboard totals from the current collections. It is a
// deterministic fold with no cached state, so calling it after any mutation
// always reflects the latest data.
//
// Paid amount counts standalone payments only; paid installments affect an
// invoice's status and remaining balance but are not double-counted here.
func (s *Store) Stats() domain.Statistics {
	debts := make([]float64, 0, len(s.invoices))
	for _, inv := range s.invoices {
		debts = append(debts, inv.FinalAmount)
	}
	totalDebt := finance.Sum(debts...)

	paid := make([]float64, 0, len(s.payments))
	for _, p := range s.payments {
		paid = append(paid, p.Amount)
	}
	paidAmount := finance.Sum(paid...)

	activeQuotes := 0
	for _, q := range s.quotes {
		if q.Status == domain.QuoteStatusPending {
			activeQuotes++
		}
	}

	return domain.Statistics{
		TotalDebt:       totalDebt,
		PaidAmount:      paidAmount,
		RemainingAmount: finance.Round2(totalDebt - paidAmount),
		ActiveQuotes:    activeQuotes,
		TotalInvoices:   len(s.invoices),
		TotalSuppliers:  len(s.suppliers),
	}
}
