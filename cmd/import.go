package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-hunter/internal/fetcher"
	"github.com/sells-group/lead-hunter/internal/tabular"
)

var (
	importXLSXPath string
	importSheet    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import companies from an XLSX file into the input worksheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		sheetClient, err := initSheets(ctx)
		if err != nil {
			return err
		}

		values, err := fetcher.ReadXLSX(importXLSXPath, fetcher.XLSXOptions{SheetName: importSheet})
		if err != nil {
			return eris.Wrap(err, "read xlsx")
		}

		tbl := tabular.New(values)
		nameCol := tbl.FindColumn("companyName")
		urlCol := tbl.FindColumn("URL")
		if nameCol < 0 || urlCol < 0 {
			return eris.New("xlsx must have companyName and URL columns")
		}

		rows := make([][]string, 0, len(tbl.Rows))
		for i := range tbl.Rows {
			name := strings.TrimSpace(tbl.Get(i, "companyName"))
			url := strings.TrimSpace(tbl.Get(i, "URL"))
			if name == "" && url == "" {
				continue
			}
			rows = append(rows, []string{name, url, ""})
		}

		if len(rows) == 0 {
			zap.L().Warn("no importable rows found", zap.String("xlsx", importXLSXPath))
			return nil
		}

		if err := sheetClient.AppendRows(ctx, cfg.Sheets.InputWorksheet, rows); err != nil {
			return eris.Wrap(err, "append imported rows")
		}

		zap.L().Info("import complete",
			zap.Int("companies", len(rows)),
			zap.String("xlsx", importXLSXPath),
			zap.String("worksheet", cfg.Sheets.InputWorksheet),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importXLSXPath, "xlsx", "", "path to XLSX file (required)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "worksheet name inside the XLSX (default first sheet)")
	_ = importCmd.MarkFlagRequired("xlsx")
	rootCmd.AddCommand(importCmd)
}
