package sheetdata

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// dateBR matches the DD/MM/YYYY date convention used in the sheets.
var dateBR = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// ParseNumber converts a cell value to float64. Cells arrive either as
// numbers (when the upstream API returns typed JSON) or as pt-BR formatted
// text like "R$ 1.080,00": currency marker, "." grouping, "," decimal.
// Anything unparseable degrades to 0; malformed money never fails a request.
func ParseNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) {
			return 0
		}
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return parseNumberText(n)
	default:
		return 0
	}
}

func parseNumberText(s string) float64 {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "r$", "")
	// Drop every whitespace rune, NBSP included; sheets pad currency freely.
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ".", "") // thousands separator
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseDateISO converts "DD/MM/YYYY" (optionally followed by a time, which is
// ignored) to "YYYY-MM-DD". Returns "" when the date portion does not match
// the two/two/four digit shape. The digits are rearranged, not validated:
// "32/13/2025" passes through as "2025-13-32". Callers drop rows with an
// empty result before any aggregation.
func ParseDateISO(v any) string {
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return ""
		}
		s = fmt.Sprint(v)
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	m := dateBR.FindStringSubmatch(fields[0])
	if m == nil {
		return ""
	}
	return m[3] + "-" + m[2] + "-" + m[1]
}
