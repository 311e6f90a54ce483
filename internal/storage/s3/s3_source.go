package s3

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"

	"gstr1/internal/config"
	"gstr1/internal/domain"
)

// Source reads invoice rows from monthly JSON exports kept in S3 under
// <prefix>/<company_gstin>/<YYYY-MM>.json. Each object holds a JSON array of
// line items as produced by the ERP's GSTR-1 export job.
type Source struct {
	client     *s3.Client
	downloader objectDownloader
	bucket     string
	prefix     string
	log        zerolog.Logger
}

// objectDownloader is the part of manager.Downloader the source uses.
type objectDownloader interface {
	Download(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, options ...func(*manager.Downloader)) (int64, error)
}

// NewSource creates a new S3-backed invoice source.
func NewSource(cfg *config.S3Config, log zerolog.Logger) (*Source, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &Source{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     cfg.Bucket,
		prefix:     cfg.Prefix,
		log:        log.With().Str("component", "s3_source").Logger(),
	}, nil
}

// ObjectKeys lists the monthly export keys covering [from, to].
func ObjectKeys(prefix, gstin string, from, to time.Time) []string {
	var keys []string
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(last) {
		keys = append(keys, path.Join(prefix, gstin, month.Format("2006-01")+".json"))
		month = month.AddDate(0, 1, 0)
	}
	return keys
}

// FetchInvoices downloads every monthly export in the filter range and returns
// the rows matching filters. Missing months are skipped; if no export exists
// for the whole range, domain.ErrNotFound is returned.
func (s *Source) FetchInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	out := make([]domain.InvoiceRecord, 0)
	found := 0
	for _, key := range ObjectKeys(s.prefix, filters.CompanyGSTIN, filters.From, filters.To) {
		data, err := s.download(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Debug().Str("key", key).Msg("no export for month")
			continue
		}
		if err != nil {
			return nil, err
		}
		found++

		records, err := decodeExport(data)
		if err != nil {
			return nil, fmt.Errorf("s3Source.FetchInvoices: %s: %w", key, err)
		}
		for i := range records {
			if filters.Matches(&records[i]) {
				out = append(out, records[i])
			}
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("s3Source.FetchInvoices: no exports for %s: %w", filters.CompanyGSTIN, domain.ErrNotFound)
	}
	return out, nil
}

// Ping checks that the export bucket is reachable.
func (s *Source) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("s3 head bucket: %w", err)
	}
	return nil
}

func (s *Source) download(ctx context.Context, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)
	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("s3 download %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

func decodeExport(data []byte) ([]domain.InvoiceRecord, error) {
	var records []domain.InvoiceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedInput, err)
	}
	return records, nil
}
