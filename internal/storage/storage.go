// Package storage opens the invoice source selected by configuration.
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"gstr1/internal/config"
	"gstr1/internal/domain"
	"gstr1/internal/port"
	"gstr1/internal/repository/postgres"
	s3storage "gstr1/internal/storage/s3"
)

// Open connects the invoice source named by cfg.Source.Provider. The returned
// func releases it.
func Open(cfg *config.Config, log zerolog.Logger) (port.InvoiceSource, func(), error) {
	switch cfg.Source.Provider {
	case "postgres":
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgres.NewInvoiceRepo(db), func() { _ = db.Close() }, nil
	case "s3":
		src, err := s3storage.NewSource(&cfg.S3, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize S3 source: %w", err)
		}
		return src, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source.Provider)
	}
}
