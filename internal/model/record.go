package model

import (
	"strings"

	"SurebetStats/internal/sheetdata"
)

// NormalizedRecord is one wager row after header canonicalization and value
// parsing. DataAposta always holds a YYYY-MM-DD string; rows whose bet date
// cannot be parsed never become records. DataEvento is kept as the trimmed
// original text, it is informational only and never aggregated on.
type NormalizedRecord struct {
	DataAposta string
	Operador   string
	Casa       string
	Esporte    string
	Evento     string
	DataEvento string
	Stake      float64
	Lucro      float64
}

// NewNormalizedRecord converts one extracted row into a NormalizedRecord.
// operador is the display name of the registration the row belongs to. ok is
// false when the row carries no parseable bet date and must be discarded.
func NewNormalizedRecord(rec sheetdata.Record, operador string) (r NormalizedRecord, ok bool) {
	date := sheetdata.ParseDateISO(rec[sheetdata.ColDataAposta])
	if date == "" {
		return NormalizedRecord{}, false
	}
	return NormalizedRecord{
		DataAposta: date,
		Operador:   operador,
		Casa:       rec[sheetdata.ColCasa],
		Esporte:    rec[sheetdata.ColEsporte],
		Evento:     strings.TrimSpace(rec[sheetdata.ColEvento]),
		DataEvento: strings.TrimSpace(rec[sheetdata.ColDataEvento]),
		Stake:      sheetdata.ParseNumber(rec[sheetdata.ColStake]),
		Lucro:      sheetdata.ParseNumber(rec[sheetdata.ColLucro]),
	}, true
}
