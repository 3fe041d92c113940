package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var supplierForm domain.SupplierForm

var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Manage suppliers",
}

var supplierAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := failValidation(st.ValidateSupplier(supplierForm)); err != nil {
			return err
		}
		sp := st.AddSupplier(supplierForm)
		fmt.Printf("Added supplier %s (%s)\n", sp.DisplayName(), sp.ID)
		return nil
	},
}

var supplierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPROFESSION\tPHONE\tEMAIL\tVAT")
		for _, sp := range st.Suppliers() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f%%\n",
				sp.ID, sp.DisplayName(), sp.Profession, sp.Phone, sp.Email, sp.DefaultVat)
		}
		return w.Flush()
	},
}

var supplierRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.DeleteSupplier(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted")
		return nil
	},
}

var supplierSetFieldCmd = &cobra.Command{
	Use:   "set-field <id> <name> <value>",
	Short: "Set a custom field on a supplier",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := st.SetSupplierField(args[0], args[1], args[2])
		return err
	},
}

var supplierRmFieldCmd = &cobra.Command{
	Use:   "rm-field <id> <name>",
	Short: "Remove a custom field from a supplier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := st.RemoveSupplierField(args[0], args[1])
		return err
	},
}

func init() {
	f := supplierAddCmd.Flags()
	f.StringVar(&supplierForm.FirstName, "first-name", "", "contact first name")
	f.StringVar(&supplierForm.LastName, "last-name", "", "contact last name")
	f.StringVar(&supplierForm.CompanyName, "company", "", "company name")
	f.StringVar(&supplierForm.Profession, "profession", "", "profession (required)")
	f.StringVar(&supplierForm.Phone, "phone", "", "phone number")
	f.StringVar(&supplierForm.Email, "email", "", "email address")
	f.Float64Var(&supplierForm.DefaultVat, "vat", 0, "default VAT percentage (0 = settings default)")

	supplierCmd.AddCommand(supplierAddCmd, supplierListCmd, supplierRmCmd, supplierSetFieldCmd, supplierRmFieldCmd)
}
