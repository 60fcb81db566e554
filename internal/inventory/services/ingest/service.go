// Package ingest runs uploaded inventory files through the normalization
// pipeline and returns one finished record per accepted row.
//
// Processing is a single batch: the whole file is decoded in memory, then
// rows are validated in input order. File-level problems fail the whole call;
// row-level problems only skip the affected row.
package ingest

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/decoders"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FormatRows is the Result.Format of an IngestRows call.
const FormatRows = "rows"

// RowIssue describes a data row that was not turned into a record.
type RowIssue struct {
	// Row is the 1-based position of the row in the decoded file, counting
	// the header as row 1.
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Result is the outcome of one ingestion.
type Result struct {
	FileName  string                       `json:"fileName"`
	Format    string                       `json:"format"`
	TotalRows int                          `json:"totalRows"`
	Records   []domain.ValidatedServerData `json:"records"`
	Skipped   []RowIssue                   `json:"skipped"`
	Duration  time.Duration                `json:"-"`
}

// Accepted returns the number of rows that produced a record.
func (r *Result) Accepted() int { return len(r.Records) }

// Service ingests files and pre-keyed rows.
type Service struct {
	validator *Validator
	logger    *zap.Logger
	workers   int
	delimiter rune
}

// Option configures a Service.
type Option func(*Service)

// WithValidator replaces the row validator.
func WithValidator(v *Validator) Option {
	return func(s *Service) { s.validator = v }
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithWorkers validates rows on up to n goroutines. Output order is always
// input order. Values below 2 mean sequential processing.
func WithWorkers(n int) Option {
	return func(s *Service) { s.workers = n }
}

// WithDelimiter forces the delimiter used for delimited-text files.
func WithDelimiter(r rune) Option {
	return func(s *Service) { s.delimiter = r }
}

// NewService creates a Service.
func NewService(opts ...Option) *Service {
	s := &Service{logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.validator == nil {
		s.validator = NewValidator(WithValidatorLogger(s.logger))
	}
	return s
}

// IngestFile decodes data according to fileName's extension and validates
// every data row against known projects.
//
// Unreadable input or a file without data rows returns an error wrapping
// domain.ErrUnreadableFile or domain.ErrNoDataRows and no partial result.
// Rows whose field count differs from the header are skipped and reported
// in Result.Skipped.
func (s *Service) IngestFile(ctx context.Context, data []byte, fileName string, known []domain.ProjectRef) (*Result, error) {
	start := time.Now()

	m, format, err := decoders.Decode(data, fileName, decoders.Options{Delimiter: s.delimiter})
	if err != nil {
		s.logger.Error("decode failed", zap.String("file", fileName), zap.Error(err))
		return nil, fmt.Errorf("ingest: %s: %w", fileName, err)
	}

	s.logger.Debug("file decoded",
		zap.String("file", fileName),
		zap.String("format", format),
		zap.Int("rows", len(m)),
	)

	headers := BindHeaders(m.Headers())
	result := &Result{
		FileName:  fileName,
		Format:    format,
		TotalRows: len(m) - 1,
	}

	var jobs []rowJob
	for i, cells := range m.DataRows() {
		line := i + 2
		if len(cells) != len(headers) {
			reason := fmt.Sprintf("row has %d field(s), header has %d", len(cells), len(headers))
			s.logger.Warn("row skipped", zap.String("file", fileName), zap.Int("row", line), zap.String("reason", reason))
			result.Skipped = append(result.Skipped, RowIssue{Row: line, Reason: reason})
			continue
		}
		jobs = append(jobs, rowJob{line: line, row: toRawRow(headers, cells)})
	}

	if err := s.run(ctx, jobs, known, result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	s.logger.Info("file ingested",
		zap.String("file", fileName),
		zap.Int("accepted", result.Accepted()),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// IngestRows validates rows that are already keyed by header, such as rows
// produced from a provider API rather than a file. Row numbers in
// Result.Skipped are 1-based positions in rows.
func (s *Service) IngestRows(ctx context.Context, rows []domain.RawRow, known []domain.ProjectRef) (*Result, error) {
	start := time.Now()
	result := &Result{Format: FormatRows, TotalRows: len(rows)}

	jobs := make([]rowJob, len(rows))
	for i, row := range rows {
		jobs[i] = rowJob{line: i + 1, row: row}
	}

	if err := s.run(ctx, jobs, known, result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

type rowJob struct {
	line int
	row  domain.RawRow
}

type rowOutcome struct {
	record domain.ValidatedServerData
	issue  *RowIssue
}

// run validates jobs and appends records and issues to result in job order.
func (s *Service) run(ctx context.Context, jobs []rowJob, known []domain.ProjectRef, result *Result) error {
	outcomes := make([]rowOutcome, len(jobs))

	if s.workers < 2 || len(jobs) < 2 {
		for i, job := range jobs {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("ingest: %w", err)
			}
			outcomes[i] = s.validateRow(job, known)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, job := range jobs {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				outcomes[i] = s.validateRow(job, known)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("ingest: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("ingest: %w", err)
		}
	}

	for _, o := range outcomes {
		if o.issue != nil {
			result.Skipped = append(result.Skipped, *o.issue)
			continue
		}
		result.Records = append(result.Records, o.record)
	}
	sortIssues(result.Skipped)
	return nil
}

// validateRow isolates a single row so that a fault while processing it
// cannot abort the batch.
func (s *Service) validateRow(job rowJob, known []domain.ProjectRef) (out rowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("row could not be processed: %v", r)
			s.logger.Warn("row skipped", zap.Int("row", job.line), zap.String("reason", reason))
			out = rowOutcome{issue: &RowIssue{Row: job.line, Reason: reason}}
		}
	}()
	return rowOutcome{record: s.validator.Validate(job.row, known)}
}

// BindHeaders trims header cells and makes them usable as unique keys. A blank
// header becomes "Column <n>" and a repeated header gets a "_<k>" suffix, so
// no column is lost when rows are keyed by header.
func BindHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "Column " + strconv.Itoa(i+1)
		}
		base := h
		for k := 2; seen[h]; k++ {
			h = base + "_" + strconv.Itoa(k)
		}
		seen[h] = true
		headers[i] = h
	}
	return headers
}

func toRawRow(headers, cells []string) domain.RawRow {
	row := make(domain.RawRow, len(headers))
	for i, h := range headers {
		row[h] = cells[i]
	}
	return row
}

// sortIssues orders issues by row. Shape issues are collected before row
// processing, so they would otherwise precede later-row processing faults.
func sortIssues(issues []RowIssue) {
	slices.SortStableFunc(issues, func(a, b RowIssue) int {
		return cmp.Compare(a.Row, b.Row)
	})
}
