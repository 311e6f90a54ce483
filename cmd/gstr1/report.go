package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gstr1/internal/domain"
	"gstr1/internal/importer"
	"gstr1/internal/port"
	"gstr1/internal/service"
	"gstr1/internal/storage"
	"gstr1/internal/storage/memory"
)

var reportFlags struct {
	gstin       string
	company     string
	from        string
	to          string
	input       string
	category    string
	subCategory string
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print the per-section summary for a GSTIN and period",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, filters, release, err := reportService()
		if err != nil {
			return err
		}
		defer release()

		rows, err := svc.Overview(cmd.Context(), filters)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), rows)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print every invoice row annotated with its section",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, filters, release, err := reportService()
		if err != nil {
			return err
		}
		defer release()

		records, err := svc.ClassifiedInvoices(cmd.Context(), filters)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), records)
	},
}

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Print the invoice rows of one section",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, filters, release, err := reportService()
		if err != nil {
			return err
		}
		defer release()

		listing, err := svc.FilteredInvoices(cmd.Context(), filters, reportFlags.category, reportFlags.subCategory)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), listing)
	},
}

func init() {
	for _, c := range []*cobra.Command{overviewCmd, classifyCmd, invoicesCmd} {
		f := c.Flags()
		f.StringVar(&reportFlags.gstin, "gstin", "", "company GSTIN (required)")
		f.StringVar(&reportFlags.company, "company", "", "company name")
		f.StringVar(&reportFlags.from, "from", "", "first posting date, YYYY-MM-DD (required)")
		f.StringVar(&reportFlags.to, "to", "", "last posting date, YYYY-MM-DD (required)")
		f.StringVar(&reportFlags.input, "input", "", "read invoices from a .json or .xlsx export instead of the configured source")
		_ = c.MarkFlagRequired("gstin")
		_ = c.MarkFlagRequired("from")
		_ = c.MarkFlagRequired("to")
	}
	invoicesCmd.Flags().StringVar(&reportFlags.category, "category", "", "category label or code, e.g. B2B or CDNR (required)")
	invoicesCmd.Flags().StringVar(&reportFlags.subCategory, "sub-category", "", "sub-category label")
	_ = invoicesCmd.MarkFlagRequired("category")
}

// reportService builds the service over --input when given, otherwise over
// the configured source.
func reportService() (service.GSTR1Service, *domain.OverviewFilters, func(), error) {
	filters, err := parseFilters()
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		source  port.InvoiceSource
		release = func() {}
	)
	if reportFlags.input != "" {
		records, err := importer.LoadFile(reportFlags.input)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Debug().Str("input", reportFlags.input).Int("rows", len(records)).Msg("loaded invoice export")
		source = memory.NewSource(records)
	} else {
		source, release, err = storage.Open(cfg, log)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return service.NewGSTR1Service(source, cfg.Report, log), filters, release, nil
}

func parseFilters() (*domain.OverviewFilters, error) {
	from, err := time.Parse(domain.DateLayout, reportFlags.from)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --from date: must be YYYY-MM-DD", domain.ErrInvalidFilters)
	}
	to, err := time.Parse(domain.DateLayout, reportFlags.to)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --to date: must be YYYY-MM-DD", domain.ErrInvalidFilters)
	}
	return &domain.OverviewFilters{
		Company:      reportFlags.company,
		CompanyGSTIN: reportFlags.gstin,
		From:         from,
		To:           to,
	}, nil
}

