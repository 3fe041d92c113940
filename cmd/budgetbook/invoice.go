package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var (
	invoiceForm       domain.InvoiceForm
	invoiceFromQuote  string
	invoiceListUnpaid bool
	installmentUnpaid bool
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
}

var invoiceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an invoice, optionally templated from an accepted quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		if invoiceFromQuote != "" {
			inv, err := st.AddInvoiceFromQuote(invoiceFromQuote, invoiceForm)
			if err != nil {
				return fmt.Errorf("quote %s: %w", invoiceFromQuote, err)
			}
			fmt.Printf("Added invoice %s, final amount %s\n", inv.ID, money(inv.FinalAmount))
			return nil
		}
		if err := failValidation(st.ValidateInvoice(invoiceForm)); err != nil {
			return err
		}
		inv := st.AddInvoice(invoiceForm)
		fmt.Printf("Added invoice %s, final amount %s\n", inv.ID, money(inv.FinalAmount))
		return nil
	},
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		invoices := st.Invoices()
		if invoiceListUnpaid {
			invoices = st.UnpaidInvoices()
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUPPLIER\tDESCRIPTION\tFINAL\tPAID\tSTATUS\tDUE")
		for _, inv := range invoices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				inv.ID, st.SupplierLabel(inv.SupplierID), inv.Description,
				money(inv.FinalAmount), money(st.PaidTotal(&inv)), inv.Status, inv.DueDate)
		}
		return w.Flush()
	},
}

var invoiceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one invoice with its installments and payments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, ok := st.Invoice(args[0])
		if !ok {
			return domain.ErrNotFound
		}
		remaining, err := st.Remaining(inv.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Invoice %s\n", inv.ID)
		fmt.Printf("  Supplier:  %s\n", st.SupplierLabel(inv.SupplierID))
		fmt.Printf("  %s\n", inv.Description)
		fmt.Printf("  Amount %s, VAT %.1f%%, discount %.2f (%s)\n", money(inv.Amount), inv.Vat, inv.Discount, inv.DiscountType)
		fmt.Printf("  Final:     %s\n", money(inv.FinalAmount))
		fmt.Printf("  Remaining: %s\n", money(remaining))
		fmt.Printf("  Status:    %s\n", inv.Status)
		if len(inv.Installments) > 0 {
			fmt.Println("  Installments:")
			for _, ins := range inv.Installments {
				state := "open"
				if ins.Paid {
					state = "paid"
				}
				fmt.Printf("    %s  %s  %s (%s) [%s]\n", ins.ID, money(ins.Amount(inv.FinalAmount)), ins.Trigger, ins.Target, state)
			}
		}
		if payments := st.PaymentsByInvoice(inv.ID); len(payments) > 0 {
			fmt.Println("  Payments:")
			for _, p := range payments {
				fmt.Printf("    %s  %s  %s (%s)\n", p.ID, money(p.Amount), p.Date, p.Method)
			}
		}
		return nil
	},
}

var invoiceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.DeleteInvoice(args[0])
		fmt.Println("Deleted")
		return nil
	},
}

var invoiceInstallmentCmd = &cobra.Command{
	Use:   "pay-installment <invoice-id> <installment-id>",
	Short: "Mark an installment paid (or unpaid with --unpaid)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := st.SetInstallmentPaid(args[0], args[1], !installmentUnpaid)
		if err != nil {
			return err
		}
		fmt.Printf("Invoice status: %s\n", inv.Status)
		return nil
	},
}

func init() {
	f := invoiceAddCmd.Flags()
	f.StringVar(&invoiceFromQuote, "quote", "", "create from this accepted quote")
	f.StringVar(&invoiceForm.SupplierID, "supplier", "", "supplier id")
	f.StringVar(&invoiceForm.Description, "description", "", "what the invoice covers")
	f.Float64Var(&invoiceForm.Amount, "amount", 0, "base amount before VAT")
	f.Float64Var(&invoiceForm.Vat, "vat", 0, "VAT percentage (0 = supplier/settings default)")
	f.Float64Var(&invoiceForm.Discount, "discount", 0, "discount value")
	f.StringVar((*string)(&invoiceForm.DiscountType), "discount-type", "", "amount or percentage")
	f.StringVar(&invoiceForm.Status, "status", "", "initial status label")
	f.StringVar(&invoiceForm.DueDate, "due", "", "due date")
	f.StringVar(&invoiceForm.Notes, "notes", "", "free-text notes")

	invoiceListCmd.Flags().BoolVar(&invoiceListUnpaid, "unpaid", false, "only unpaid invoices")
	invoiceInstallmentCmd.Flags().BoolVar(&installmentUnpaid, "unpaid", false, "mark the installment unpaid instead")

	invoiceCmd.AddCommand(invoiceAddCmd, invoiceListCmd, invoiceShowCmd, invoiceRmCmd, invoiceInstallmentCmd)
}
