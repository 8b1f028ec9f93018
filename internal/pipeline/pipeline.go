package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-hunter/internal/config"
	"github.com/sells-group/lead-hunter/internal/model"
	"github.com/sells-group/lead-hunter/internal/store"
	"github.com/sells-group/lead-hunter/internal/tabular"
	"github.com/sells-group/lead-hunter/pkg/gsheets"
)

// Input worksheet column headers and the value written to mark a row done.
const (
	colCompanyName = "companyName"
	colURL         = "URL"
	colProcessed   = "Processed"
	markValue      = "True"
)

// Searcher finds candidate profiles for a company.
type Searcher interface {
	Search(ctx context.Context, companyName, companyURL string) ([]model.CandidateProfile, error)
}

// Resolver resolves professional emails by name or by domain.
type Resolver interface {
	ResolveByName(ctx context.Context, personName, domain string) (string, error)
	DomainContacts(ctx context.Context, domain string, limit int) ([]model.CandidateProfile, error)
}

// Pipeline walks the input worksheet one company at a time, enriching each
// unprocessed row and appending results to the output worksheet.
type Pipeline struct {
	cfg      *config.Config
	sheet    gsheets.Client
	searcher Searcher
	resolver Resolver
	store    store.Store // optional run history, may be nil
	now      func() time.Time
}

// New creates a Pipeline with all dependencies.
func New(cfg *config.Config, sheet gsheets.Client, searcher Searcher, resolver Resolver, st store.Store) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		sheet:    sheet,
		searcher: searcher,
		resolver: resolver,
		store:    st,
		now:      time.Now,
	}
}

// Run processes every input row once, sequentially, and returns the run
// summary. Rows already marked processed are skipped without any network
// calls; results are appended per company so a crash loses at most one
// company's unsaved rows.
func (p *Pipeline) Run(ctx context.Context) (*model.RunSummary, error) {
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))
	start := p.now()
	summary := &model.RunSummary{RunID: runID}

	if p.store != nil {
		if err := p.store.CreateRun(ctx, runID); err != nil {
			log.Warn("pipeline: record run start failed", zap.Error(err))
		}
	}

	values, err := p.sheet.ReadRows(ctx, p.cfg.Sheets.InputWorksheet)
	if err != nil {
		err = eris.Wrap(err, "pipeline: read input worksheet")
		p.completeRun(ctx, runID, summary, err, log)
		return nil, err
	}
	tbl := tabular.New(values)

	for i := range tbl.Rows {
		outcome, appended, rowErr := p.processRow(ctx, tbl, i, log)
		if rowErr != nil {
			p.completeRun(ctx, runID, summary, rowErr, log)
			return nil, rowErr
		}
		summary.Record(outcome)
		summary.RowsAppended += appended
	}

	summary.Duration = p.now().Sub(start)
	log.Info("pipeline: run complete",
		zap.Int("companies", summary.Companies),
		zap.Int("saved", summary.Saved),
		zap.Int("skipped", summary.Skipped),
		zap.Int("skipped_no_data", summary.SkippedNoData),
		zap.Int("mark_failures", summary.MarkFailures),
		zap.Int("rows_appended", summary.RowsAppended),
		zap.Duration("duration", summary.Duration),
	)
	p.completeRun(ctx, runID, summary, nil, log)
	return summary, nil
}

// processRow drives one input row to a terminal state. The returned error is
// non-nil only for output-append failures, which abort the run so no row is
// marked processed without its results being durable.
func (p *Pipeline) processRow(ctx context.Context, tbl tabular.Table, i int, log *zap.Logger) (model.RowOutcome, int, error) {
	if model.ParseProcessedFlag(tbl.Get(i, colProcessed)) {
		return model.RowSkipped, 0, nil
	}

	rec := model.InputRecord{
		CompanyName: strings.TrimSpace(tbl.Get(i, colCompanyName)),
		URL:         strings.TrimSpace(tbl.Get(i, colURL)),
		SheetRow:    tbl.SheetRow(i),
	}
	if !rec.Valid() {
		log.Warn("pipeline: row missing company name or url, leaving unmarked",
			zap.Int("sheet_row", rec.SheetRow))
		return model.RowSkippedNoData, 0, nil
	}

	log.Info("pipeline: processing company",
		zap.String("company", rec.CompanyName),
		zap.String("url", rec.URL),
	)

	results := p.enrichCompany(ctx, rec, log)

	if len(results) > 0 {
		if err := p.sheet.AppendRows(ctx, p.cfg.Sheets.OutputWorksheet, model.Rows(results)); err != nil {
			return "", 0, eris.Wrapf(err, "pipeline: append results for %s", rec.CompanyName)
		}
		log.Info("pipeline: results saved",
			zap.String("company", rec.CompanyName),
			zap.Int("rows", len(results)),
		)
	}

	if err := p.markProcessed(ctx, tbl, rec.SheetRow); err != nil {
		log.Warn("pipeline: mark processed failed, row will be reprocessed next run",
			zap.String("company", rec.CompanyName),
			zap.Int("sheet_row", rec.SheetRow),
			zap.Error(err),
		)
		return model.RowSavedMarkFailed, len(results), nil
	}
	return model.RowSaved, len(results), nil
}

// enrichCompany builds the results buffer for one company: profile search,
// sequential name-based email resolution, then the domain-directory fallback
// when no buffered candidate carries an email. Lookup failures degrade to
// empty results and never abort the company.
func (p *Pipeline) enrichCompany(ctx context.Context, rec model.InputRecord, log *zap.Logger) []model.CandidateProfile {
	candidates, err := p.searcher.Search(ctx, rec.CompanyName, rec.URL)
	if err != nil {
		log.Warn("pipeline: profile search failed",
			zap.String("company", rec.CompanyName), zap.Error(err))
	}

	results := make([]model.CandidateProfile, 0, len(candidates))
	for _, c := range candidates {
		email, lookupErr := p.resolver.ResolveByName(ctx, c.Name, rec.URL)
		if lookupErr != nil {
			log.Warn("pipeline: email lookup failed",
				zap.String("name", c.Name), zap.Error(lookupErr))
		} else if email != "" {
			c.Email = email
			c.EmailAddedDate = p.now().Format(dateLayout)
		}
		results = append(results, c)
	}

	if !anyEmail(results) {
		contacts, fallbackErr := p.resolver.DomainContacts(ctx, rec.URL, p.cfg.Search.DomainLimit)
		if fallbackErr != nil {
			log.Warn("pipeline: domain contacts failed",
				zap.String("url", rec.URL), zap.Error(fallbackErr))
		}
		results = append(results, contacts...)
	}
	return results
}

// markProcessed writes the Processed cell for the row, best effort.
func (p *Pipeline) markProcessed(ctx context.Context, tbl tabular.Table, sheetRow int) error {
	col := tbl.FindColumn(colProcessed)
	if col < 0 {
		return eris.Errorf("pipeline: %s column not found in input worksheet", colProcessed)
	}
	return p.sheet.UpdateCell(ctx, p.cfg.Sheets.InputWorksheet, sheetRow, col+1, markValue)
}

// completeRun records the terminal run state in the history store.
func (p *Pipeline) completeRun(ctx context.Context, runID string, summary *model.RunSummary, runErr error, log *zap.Logger) {
	if p.store == nil {
		return
	}
	if err := p.store.CompleteRun(ctx, runID, summary, runErr); err != nil {
		log.Warn("pipeline: record run completion failed", zap.Error(err))
	}
}

func anyEmail(candidates []model.CandidateProfile) bool {
	for _, c := range candidates {
		if c.Email != "" {
			return true
		}
	}
	return false
}
