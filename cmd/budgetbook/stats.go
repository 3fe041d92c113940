package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show project totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := st.Stats()
		fmt.Printf("Total debt:    %s\n", money(stats.TotalDebt))
		fmt.Printf("Paid:          %s\n", money(stats.PaidAmount))
		fmt.Printf("Remaining:     %s\n", money(stats.RemainingAmount))
		fmt.Printf("Active quotes: %d\n", stats.ActiveQuotes)
		fmt.Printf("Invoices:      %d\n", stats.TotalInvoices)
		fmt.Printf("Suppliers:     %d\n", stats.TotalSuppliers)
		return nil
	},
}
