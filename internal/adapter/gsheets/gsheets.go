// Package gsheets reads registered spreadsheets through the Google Sheets
// API and projects them into canonical header→value rows.
package gsheets

import (
	"context"
	"fmt"
	"strings"

	"SurebetStats/internal/apperr"
	"SurebetStats/internal/config"
	"SurebetStats/internal/interfaces"
	"SurebetStats/internal/sheetdata"
	"SurebetStats/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Fetcher implements interfaces.SheetFetcher against the Google Sheets API.
type Fetcher struct {
	svc    *sheets.Service
	logger *logrus.Logger
}

var _ interfaces.SheetFetcher = (*Fetcher)(nil)

// NewFetcher builds the API client. Credential sources are tried in order:
// inline service-account JSON, key file, API key. The tuned HTTP client
// (timeout, proxy) is installed as the oauth2 base client so it carries the
// authenticated transport.
func NewFetcher(ctx context.Context, cfg *config.GoogleConfig, logger *logrus.Logger) (*Fetcher, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpclient.NewHTTPClient(cfg, logger))

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts,
			option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	case cfg.CredentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, fmt.Errorf("google credentials missing: set credentials_json, credentials_file or api_key")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Fetcher{svc: svc, logger: logger}, nil
}

// FetchRows reads rangeSpec from the spreadsheet. A range naming a tab
// ("NOVEMBRO!A1:Z1000") reads exactly that tab; a bare range ("A1:Z1000") is
// applied to every tab, concatenating rows under the header of the first tab
// that has one.
func (f *Fetcher) FetchRows(ctx context.Context, spreadsheetID, rangeSpec string) (interfaces.FetchResult, error) {
	if strings.Contains(rangeSpec, "!") {
		return f.fetchOneTab(ctx, spreadsheetID, rangeSpec)
	}
	return f.fetchAllTabs(ctx, spreadsheetID, rangeSpec)
}

func (f *Fetcher) fetchOneTab(ctx context.Context, spreadsheetID, rangeSpec string) (interfaces.FetchResult, error) {
	grid, err := f.readRange(ctx, spreadsheetID, rangeSpec)
	if err != nil {
		return interfaces.FetchResult{}, apperr.UpstreamFetch(err, "read range %q of spreadsheet %s", rangeSpec, spreadsheetID)
	}
	table := sheetdata.ExtractTable(grid, nil)
	return interfaces.FetchResult{Rows: table.Rows, Tabs: []string{tabOfRange(rangeSpec)}}, nil
}

func (f *Fetcher) fetchAllTabs(ctx context.Context, spreadsheetID, rangeSpec string) (interfaces.FetchResult, error) {
	meta, err := f.svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return interfaces.FetchResult{}, apperr.UpstreamFetch(err, "list tabs of spreadsheet %s", spreadsheetID)
	}

	var (
		header sheetdata.Header
		rows   []sheetdata.Record
		tabs   []string
	)
	for _, sh := range meta.Sheets {
		if sh.Properties == nil {
			continue
		}
		title := sh.Properties.Title
		grid, err := f.readRange(ctx, spreadsheetID, quoteTab(title)+"!"+rangeSpec)
		if err != nil {
			// One unreadable tab must not sink the whole fetch.
			f.logger.WithError(err).WithFields(logrus.Fields{
				"spreadsheet": spreadsheetID,
				"tab":         title,
			}).Warn("tab read failed, skipping")
			continue
		}
		table := sheetdata.ExtractTable(grid, header)
		if len(table.Header) > 0 {
			header = table.Header
		}
		rows = append(rows, table.Rows...)
		tabs = append(tabs, title)
	}
	return interfaces.FetchResult{Rows: rows, Tabs: tabs}, nil
}

func (f *Fetcher) readRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	resp, err := f.svc.Spreadsheets.Values.Get(spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		grid[i] = cells
	}
	return grid, nil
}

// cellString renders one API cell value as text. Formatted reads return
// strings, but untyped sheets can surface numbers and bools.
func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// quoteTab wraps a tab title in single quotes for A1 notation, doubling any
// embedded quote.
func quoteTab(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// tabOfRange extracts the tab name of an explicit tab!range spec. The split
// is at the last separator: a quoted title may itself contain "!".
func tabOfRange(rangeSpec string) string {
	tab := rangeSpec[:strings.LastIndex(rangeSpec, "!")]
	tab = strings.Trim(tab, "'")
	return strings.ReplaceAll(tab, "''", "'")
}
