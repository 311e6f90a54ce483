package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gstr1/internal/importer"
	"gstr1/internal/port"
	"gstr1/internal/repository/postgres"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.json>",
	Short: "Load a sales register export into the invoice database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := importer.LoadFile(args[0])
		if err != nil {
			return err
		}
		for i := range records {
			if err := records[i].Validate(); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		var store port.InvoiceStore = postgres.NewInvoiceRepo(db)
		n, err := store.InsertInvoices(cmd.Context(), records)
		if err != nil {
			return err
		}
		log.Info().Str("file", args[0]).Int("rows", n).Msg("invoices imported")
		return nil
	},
}
