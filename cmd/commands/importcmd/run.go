package importcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/auditlog"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/services/ingest"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/logging"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/styles"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the resolved flag and config values of one import run.
type options struct {
	dryRun      bool
	yes         bool
	output      string
	workers     int
	delimiter   rune
	interactive bool
}

func readOptions(cmd *cobra.Command, cfg *config.Config) (options, error) {
	opts := options{
		workers:     cfg.WorkerCount(),
		delimiter:   cfg.DelimiterRune(),
		interactive: isInteractive(cmd),
	}
	opts.dryRun, _ = cmd.Flags().GetBool("dry-run")
	opts.yes, _ = cmd.Flags().GetBool("yes")
	opts.output, _ = cmd.Flags().GetString("output")
	if opts.output == "" {
		opts.output = "table"
	}
	if opts.output != "table" && opts.output != "json" {
		return opts, fmt.Errorf("unsupported output format %q", opts.output)
	}

	if workers, _ := cmd.Flags().GetInt("workers"); workers != 0 {
		if workers < 0 {
			return opts, fmt.Errorf("workers must be greater than 0")
		}
		opts.workers = workers
	}

	if f := cmd.Flags().Lookup("delimiter"); f != nil && f.Changed {
		r, err := config.ParseDelimiter(f.Value.String())
		if err != nil {
			return opts, err
		}
		opts.delimiter = r
	}
	return opts, nil
}

func newService(logger *zap.Logger, opts options) *ingest.Service {
	return ingest.NewService(
		ingest.WithLogger(logger),
		ingest.WithWorkers(opts.workers),
		ingest.WithDelimiter(opts.delimiter),
	)
}

// runStep runs fn behind a spinner when interactive.
func runStep(cmd *cobra.Command, opts options, title string, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.interactive {
		return tui.WithSpinner(ctx, cmd.ErrOrStderr(), title, fn)
	}
	return fn(ctx)
}

// finish reports result, asks for confirmation, saves the records and
// records the run in the import log.
func finish(cmd *cobra.Command, opts options, repo assetstore.Repository, result *ingest.Result, entry auditlog.ImportEntry, start time.Time) error {
	logger := logging.FromContext(cmd.Context())

	entry.Format = result.Format
	entry.TotalRows = result.TotalRows
	entry.Accepted = result.Accepted()
	entry.Skipped = len(result.Skipped)
	entry.Outcome = auditlog.OutcomeFor(entry.Accepted, entry.Skipped)
	if opts.dryRun {
		entry.Outcome = auditlog.OutcomeDryRun
	}

	summary := styles.RenderSummary(styles.Summary{
		Source:   entry.FileName,
		Format:   result.Format,
		Total:    result.TotalRows,
		Accepted: result.Accepted(),
		Issues:   toIssues(result.Skipped),
		Outcome:  entry.Outcome,
	})

	if opts.output == "json" {
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), summary)
	}

	if opts.dryRun {
		recordImport(logger, entry, start)
		return nil
	}

	if result.Accepted() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to import.")
		recordImport(logger, entry, start)
		return nil
	}

	if opts.interactive && !opts.yes {
		ok, err := tui.ConfirmImport(summary, result.Accepted())
		if err != nil && !errors.Is(err, tui.ErrAborted) {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Import cancelled.")
			return nil
		}
	}

	ids, err := repo.SaveAll(result.Records, entry.FileName)
	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
		recordImport(logger, entry, start)
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d asset(s).\n", len(ids))
	recordImport(logger, entry, start)
	return nil
}

// recordFailure logs a run that failed before any result was produced.
func recordFailure(cmd *cobra.Command, entry auditlog.ImportEntry, start time.Time, err error) {
	entry.Outcome = auditlog.OutcomeError
	entry.Detail = err.Error()
	recordImport(logging.FromContext(cmd.Context()), entry, start)
}

// recordImport writes entry to the import log. A failure here never fails
// the import itself.
func recordImport(logger *zap.Logger, entry auditlog.ImportEntry, start time.Time) {
	entry.DurationMs = time.Since(start).Milliseconds()

	repo, err := auditlog.Open()
	if err != nil {
		logger.Warn("import log unavailable", zap.Error(err))
		return
	}
	defer repo.Close()

	if err := repo.Save(&entry); err != nil {
		logger.Warn("import log write failed", zap.Error(err))
	}
}

func toIssues(skipped []ingest.RowIssue) []styles.Issue {
	issues := make([]styles.Issue, len(skipped))
	for i, s := range skipped {
		issues[i] = styles.Issue{Row: s.Row, Reason: s.Reason}
	}
	return issues
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadProjects returns the projects rows are linked against: the --projects
// file when given, otherwise the projects in the local store.
func loadProjects(cmd *cobra.Command, repo assetstore.Repository) ([]domain.ProjectRef, error) {
	if path, _ := cmd.Flags().GetString("projects"); path != "" {
		return readProjectsFile(path)
	}

	refs, err := repo.ProjectRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return refs, nil
}

// readProjectsFile reads a JSON array of projects. Entries may carry their
// identifier as "id" or "_id".
func readProjectsFile(path string) ([]domain.ProjectRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects file: %w", err)
	}
	var refs []domain.ProjectRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("failed to parse projects file %s: %w", path, err)
	}
	return refs, nil
}
