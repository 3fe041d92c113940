package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var (
	quoteForm         domain.QuoteForm
	quoteListSupplier string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Manage price quotes",
}

var quoteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a price quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := failValidation(st.ValidateQuote(quoteForm)); err != nil {
			return err
		}
		q := st.AddQuote(quoteForm)
		fmt.Printf("Added quote %s (%s, %s)\n", q.ID, q.Description, money(q.Amount))
		return nil
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		quotes := st.Quotes()
		if quoteListSupplier != "" {
			quotes = st.QuotesBySupplier(quoteListSupplier)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUPPLIER\tDESCRIPTION\tAMOUNT\tSTATUS\tDATE")
		for _, q := range quotes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				q.ID, st.SupplierLabel(q.SupplierID), q.Description, money(q.Amount), q.Status, q.Date)
		}
		return w.Flush()
	},
}

var quoteSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <pending|accepted|rejected>",
	Short: "Set a quote's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := domain.QuoteStatus(args[1])
		if !status.IsValid() {
			return fmt.Errorf("invalid status %q", args[1])
		}
		_, err := st.UpdateQuote(args[0], domain.QuoteUpdate{Status: &status})
		return err
	},
}

var quoteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.DeleteQuote(args[0])
		fmt.Println("Deleted")
		return nil
	},
}

func init() {
	f := quoteAddCmd.Flags()
	f.StringVar(&quoteForm.SupplierID, "supplier", "", "supplier id (required)")
	f.StringVar(&quoteForm.Description, "description", "", "what the quote covers (required)")
	f.Float64Var(&quoteForm.Amount, "amount", 0, "quoted amount (required)")
	f.StringVar((*string)(&quoteForm.Status), "status", "", "pending, accepted or rejected")
	f.StringVar(&quoteForm.Date, "date", "", "quote date")
	f.StringVar(&quoteForm.Notes, "notes", "", "free-text notes")

	quoteListCmd.Flags().StringVar(&quoteListSupplier, "supplier", "", "only quotes from this supplier")

	quoteCmd.AddCommand(quoteAddCmd, quoteListCmd, quoteSetStatusCmd, quoteRmCmd)
}
