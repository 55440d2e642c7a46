// Package sheetdata turns raw spreadsheet grids into rows keyed by a fixed
// canonical header vocabulary. Everything here is pure: no I/O, no locking.
package sheetdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical column names. Sheets name these columns freely ("Data da Aposta",
// "Lucro R$", "Bookmaker"...); canonicalization maps the variants onto this
// fixed vocabulary so the rest of the pipeline can index rows by constant.
const (
	ColDataAposta = "DATA APOSTA"
	ColLucro      = "LUCRO"
	ColStake      = "STAKE"
	ColCasa       = "CASA"
	ColEsporte    = "ESPORTE"
	ColDataEvento = "DATA EVENTO"
	ColEvento     = "EVENTO"
)

// NormalizeHeaderText uppercases, strips diacritics and collapses whitespace
// runs to a single space. Used for matching only; the original text is what
// survives when no canonical name matches.
func NormalizeHeaderText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}
	s = strings.ToUpper(s)
	return strings.Join(strings.Fields(s), " ")
}

// CanonicalizeHeader maps one raw header cell to its canonical column name.
// Rules are evaluated in a fixed priority order, first match wins; with no
// match the original text is returned trimmed. Never errors, never drops:
// an empty input yields an empty string.
func CanonicalizeHeader(raw string) string {
	n := NormalizeHeaderText(raw)
	switch {
	case strings.Contains(n, ColDataAposta):
		return ColDataAposta
	case n == ColLucro:
		return ColLucro
	case n == ColStake:
		return ColStake
	case n == ColCasa || strings.Contains(n, "BOOK"):
		return ColCasa
	case n == ColEsporte || n == "ESPORTES":
		return ColEsporte
	case strings.Contains(n, ColDataEvento) || strings.Contains(n, "DATA JOGO"):
		return ColDataEvento
	case n == ColEvento || n == "PARTIDA" || strings.Contains(n, "MATCH"):
		return ColEvento
	default:
		return strings.TrimSpace(raw)
	}
}
