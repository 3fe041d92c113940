package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var (
	settingsVat      float64
	settingsCurrency string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := st.Settings()
		fmt.Printf("Default VAT: %.1f%%\n", settings.DefaultVat)
		fmt.Printf("Currency:    %s\n", settings.Currency)
		fmt.Printf("Statuses:    %s\n", strings.Join(settings.Statuses, ", "))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change default VAT or currency",
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := domain.SettingsUpdate{}
		if cmd.Flags().Changed("vat") {
			upd.DefaultVat = &settingsVat
		}
		if cmd.Flags().Changed("currency") {
			upd.Currency = &settingsCurrency
		}
		if err := failValidation(st.ValidateSettings(upd)); err != nil {
			return err
		}
		_, err := st.UpdateSettings(upd)
		return err
	},
}

var settingsAddStatusCmd = &cobra.Command{
	Use:   "add-status <label>",
	Short: "Add an invoice status label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.AddStatus(args[0])
		return nil
	},
}

var settingsRmStatusCmd = &cobra.Command{
	Use:   "rm-status <label>",
	Short: "Remove an invoice status label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.RemoveStatus(args[0])
	},
}

func init() {
	settingsSetCmd.Flags().Float64Var(&settingsVat, "vat", 0, "default VAT percentage")
	settingsSetCmd.Flags().StringVar(&settingsCurrency, "currency", "", "currency label")

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsAddStatusCmd, settingsRmStatusCmd)
}
