package interfaces

import (
	"context"

	"SurebetStats/internal/sheetdata"
)

// FetchResult carries one spreadsheet read: the extracted rows plus the tab
// titles that contributed them.
type FetchResult struct {
	Rows []sheetdata.Record
	Tabs []string
}

// SheetFetcher reads a spreadsheet range and projects it into canonical
// header→value rows. A range containing "!" addresses exactly one named tab;
// a bare range is applied to every tab of the spreadsheet and the results
// concatenated, with the header locked to the first tab that yields one.
// Implementations skip unreadable tabs with a warning rather than failing
// the whole read.
type SheetFetcher interface {
	FetchRows(ctx context.Context, spreadsheetID, rangeSpec string) (FetchResult, error)
}
