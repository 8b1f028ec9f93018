package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sells-group/lead-hunter/internal/pipeline"
	"github.com/sells-group/lead-hunter/internal/store"
	"github.com/sells-group/lead-hunter/pkg/gsheets"
	"github.com/sells-group/lead-hunter/pkg/hunter"
	"github.com/sells-group/lead-hunter/pkg/serper"
)

// pipelineEnv holds the initialized clients, store, and pipeline needed by
// the run and serve commands.
type pipelineEnv struct {
	Store    store.Store
	Sheet    gsheets.Client
	Pipeline *pipeline.Pipeline
}

// Close releases resources held by the pipeline environment.
func (pe *pipelineEnv) Close() {
	if pe.Store != nil {
		_ = pe.Store.Close()
	}
}

// initSheets builds the spreadsheet client from config. Credentials may be
// inline JSON or a file path; inline wins when both are set.
func initSheets(ctx context.Context) (gsheets.Client, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, eris.New("spreadsheet ID is required (LEADHUNTER_SHEETS_SPREADSHEET_ID)")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	switch {
	case cfg.Sheets.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Sheets.CredentialsJSON)))
	case cfg.Sheets.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
	default:
		return nil, eris.New("sheets credentials are required (LEADHUNTER_SHEETS_CREDENTIALS_JSON or LEADHUNTER_SHEETS_CREDENTIALS_FILE)")
	}

	client, err := gsheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, opts...)
	if err != nil {
		return nil, eris.Wrap(err, "init sheets client")
	}
	return client, nil
}

// initStore opens the run-history database and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// initPipeline sets up the store, all API clients, and builds the Pipeline.
// Callers should defer env.Close().
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	if cfg.Serper.Key == "" {
		return nil, eris.New("serper API key is required (LEADHUNTER_SERPER_KEY)")
	}
	if cfg.Hunter.Key == "" {
		return nil, eris.New("hunter API key is required (LEADHUNTER_HUNTER_KEY)")
	}

	sheetClient, err := initSheets(ctx)
	if err != nil {
		return nil, err
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	serperClient := serper.NewClient(cfg.Serper.Key,
		serper.WithBaseURL(cfg.Serper.BaseURL),
		serper.WithRateLimit(cfg.Serper.RateLimit),
	)
	hunterClient := hunter.NewClient(cfg.Hunter.Key,
		hunter.WithBaseURL(cfg.Hunter.BaseURL),
		hunter.WithRateLimit(cfg.Hunter.RateLimit),
	)

	titles := pipeline.LoadTitles(cfg.Titles.File)
	zap.L().Info("job titles loaded", zap.Int("count", len(titles)))

	searcher := pipeline.NewProfileSearch(serperClient, titles,
		cfg.Search.MaxResults, cfg.Search.PerPage, cfg.Search.MaxPages)
	resolver := pipeline.NewEnricher(hunterClient)

	p := pipeline.New(cfg, sheetClient, searcher, resolver, st)

	return &pipelineEnv{
		Store:    st,
		Sheet:    sheetClient,
		Pipeline: p,
	}, nil
}
