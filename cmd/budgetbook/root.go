package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shikma-build/budgetbook/internal/config"
	"github.com/shikma-build/budgetbook/internal/domain"
	"github.com/shikma-build/budgetbook/internal/logger"
	"github.com/shikma-build/budgetbook/internal/persist"
	"github.com/shikma-build/budgetbook/internal/store"
)

var (
	cfg *config.Config
	log *zap.Logger
	db  *persist.SQLiteAdapter
	st  *store.Store
)

var rootCmd = &cobra.Command{
	Use:           "budgetbook",
	Short:         "Budget ledger for a construction project",
	Long:          "budgetbook tracks suppliers, price quotes, invoices and payments for a single construction project, with running debt and payment totals.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err = logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err = persist.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to prepare data file: %w", err)
	}

	st = store.New(log)
	_, hadSettings, err := db.Load(persist.KeySettings)
	if err != nil {
		return err
	}
	if err := persist.Restore(db, st, log); err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	if !hadSettings {
		// First run: seed the settings record from the config defaults.
		vat := cfg.Defaults.Vat
		currency := cfg.Defaults.Currency
		if _, err := st.UpdateSettings(domain.SettingsUpdate{DefaultVat: &vat, Currency: &currency}); err != nil {
			return err
		}
	}

	// Attach after restore so loading does not write everything back.
	persist.NewAutosaver(db, log).Attach(st)
	return nil
}

func teardown() error {
	if log != nil {
		_ = log.Sync()
	}
	if db != nil {
		return db.Close()
	}
	return nil
}

// failValidation turns validation messages into a command error
func failValidation(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid input:\n  - %s", strings.Join(errs, "\n  - "))
}

// money renders an amount with the configured currency label
func money(v float64) string {
	return fmt.Sprintf("%s%.2f", st.Settings().Currency, v)
}

func init() {
	rootCmd.AddCommand(supplierCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
