package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var (
	paymentForm        domain.PaymentForm
	paymentListInvoice string
	paymentForce       bool
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Record and manage payments",
}

var paymentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment against an invoice",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !paymentForce {
			if err := failValidation(st.ValidatePayment(paymentForm)); err != nil {
				return err
			}
		}
		p := st.AddPayment(paymentForm)
		inv, _ := st.Invoice(p.InvoiceID)
		fmt.Printf("Recorded payment %s of %s; invoice status: %s\n", p.ID, money(p.Amount), inv.Status)
		return nil
	},
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		payments := st.Payments()
		if paymentListInvoice != "" {
			payments = st.PaymentsByInvoice(paymentListInvoice)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tINVOICE\tAMOUNT\tDATE\tMETHOD\tREFERENCE")
		for _, p := range payments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.InvoiceID, money(p.Amount), p.Date, p.Method, p.Reference)
		}
		return w.Flush()
	},
}

var paymentRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.DeletePayment(args[0])
		fmt.Println("Deleted")
		return nil
	},
}

func init() {
	f := paymentAddCmd.Flags()
	f.StringVar(&paymentForm.InvoiceID, "invoice", "", "invoice id (required)")
	f.Float64Var(&paymentForm.Amount, "amount", 0, "payment amount (required)")
	f.StringVar(&paymentForm.Date, "date", "", "payment date (required)")
	f.StringVar((*string)(&paymentForm.Method), "method", "", "bank_transfer, cash, check, credit_card or other")
	f.StringVar(&paymentForm.Reference, "reference", "", "bank/check reference")
	f.StringVar(&paymentForm.Notes, "notes", "", "free-text notes")
	f.BoolVar(&paymentForce, "force", false, "skip validation, e.g. to record an overpayment")

	paymentListCmd.Flags().StringVar(&paymentListInvoice, "invoice", "", "only payments for this invoice")

	paymentCmd.AddCommand(paymentAddCmd, paymentListCmd, paymentRmCmd)
}
