// Package gsheets adapts Google Sheets to the tabular store operations the
// pipeline needs: read all rows, append rows, update a single cell.
package gsheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client performs tabular operations against one spreadsheet.
type Client interface {
	// ReadRows returns every row of the worksheet, header row included.
	ReadRows(ctx context.Context, worksheet string) ([][]string, error)
	// AppendRows appends rows after the worksheet's last data row.
	AppendRows(ctx context.Context, worksheet string, rows [][]string) error
	// UpdateCell writes a single cell. Row and column are 1-based.
	UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error
}

type client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient creates a Sheets client bound to a single spreadsheet. Callers
// supply auth via option.WithCredentialsJSON (service account) or test
// options like option.WithEndpoint.
func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (Client, error) {
	if spreadsheetID == "" {
		return nil, eris.New("gsheets: spreadsheet id is required")
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, eris.Wrap(err, "gsheets: create service")
	}
	return &client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *client) ReadRows(ctx context.Context, worksheet string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetRange(worksheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, eris.Wrapf(err, "gsheets: read %s", worksheet)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (c *client) AppendRows(ctx context.Context, worksheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		values[i] = cells
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetRange(worksheet), &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return eris.Wrapf(err, "gsheets: append to %s", worksheet)
}

func (c *client) UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return eris.Errorf("gsheets: cell reference out of range: row %d col %d", row, col)
	}

	cellRange := fmt.Sprintf("%s!%s%d", sheetRange(worksheet), columnLetter(col), row)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cellRange, &sheets.ValueRange{
		Values: [][]any{{value}},
	}).ValueInputOption("RAW").Context(ctx).Do()
	return eris.Wrapf(err, "gsheets: update %s", cellRange)
}

// sheetRange quotes a worksheet name for A1 notation.
func sheetRange(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}
