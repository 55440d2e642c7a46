package service

import (
	"strings"

	"SurebetStats/internal/model"
)

// epsilon guards floating-point noise when classifying an entry as green or
// red; entries within epsilon of zero count as neither.
const epsilon = 1e-6

// Entry is one betting entry: all records sharing bet date, event and
// operator, treated as one statistical unit.
type Entry struct {
	DataAposta string  `json:"dataAposta"`
	Operador   string  `json:"operador"`
	Evento     string  `json:"evento"`
	Esporte    string  `json:"esporte"`
	LucroTotal float64 `json:"lucroTotal"`
	StakeTotal float64 `json:"stakeTotal"`
}

// Overview is the headline block of a Stats response.
type Overview struct {
	TotalLucro   float64 `json:"totalLucro"`
	TotalStake   float64 `json:"totalStake"`
	TotalApostas int     `json:"totalApostas"`
	YieldPercent float64 `json:"yieldPercent"`
	Greens       int     `json:"greens"`
	Reds         int     `json:"reds"`
	GreenPercent float64 `json:"greenPercent"`
	RedPercent   float64 `json:"redPercent"`
}

// GroupStats is one row of a per-dimension breakdown.
type GroupStats struct {
	Count        int     `json:"count"`
	Lucro        float64 `json:"lucro"`
	Stake        float64 `json:"stake"`
	YieldPercent float64 `json:"yieldPercent"`
}

// Stats is the full aggregation result. Map keys marshal in sorted order, so
// lucroPorDia serializes ascending by date.
type Stats struct {
	Overview    Overview              `json:"overview"`
	LucroPorDia map[string]float64    `json:"lucroPorDia"`
	PorOperador map[string]GroupStats `json:"porOperador"`
	PorCasa     map[string]GroupStats `json:"porCasa"`
	PorEsporte  map[string]GroupStats `json:"porEsporte"`
}

// StatsFilter narrows records before grouping. From and To are inclusive
// YYYY-MM-DD bounds compared as strings; Operador is an exact match.
type StatsFilter struct {
	Operador string
	From     string
	To       string
}

func (f StatsFilter) match(r model.NormalizedRecord) bool {
	if f.Operador != "" && r.Operador != f.Operador {
		return false
	}
	if f.From != "" && r.DataAposta < f.From {
		return false
	}
	if f.To != "" && r.DataAposta > f.To {
		return false
	}
	return true
}

// FilterRecords returns the records matching f, preserving order.
func FilterRecords(records []model.NormalizedRecord, f StatsFilter) []model.NormalizedRecord {
	out := make([]model.NormalizedRecord, 0, len(records))
	for _, r := range records {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// entryKey is the composite identity of an entry. Matching is exact string
// equality, no fuzzy matching across near-duplicate event names.
func entryKey(r model.NormalizedRecord) string {
	return r.DataAposta + "|" + strings.ToLower(strings.TrimSpace(r.Evento)) + "|" + r.Operador
}

// GroupEntries folds records into entries. Evento and Esporte are taken from
// the first contributing record; the result keeps first-appearance order.
func GroupEntries(records []model.NormalizedRecord) []Entry {
	byKey := make(map[string]*Entry)
	order := make([]string, 0, len(records))
	for _, r := range records {
		key := entryKey(r)
		e, ok := byKey[key]
		if !ok {
			e = &Entry{
				DataAposta: r.DataAposta,
				Operador:   r.Operador,
				Evento:     r.Evento,
				Esporte:    r.Esporte,
			}
			byKey[key] = e
			order = append(order, key)
		}
		e.LucroTotal += r.Lucro
		e.StakeTotal += r.Stake
	}
	entries := make([]Entry, 0, len(order))
	for _, key := range order {
		entries = append(entries, *byKey[key])
	}
	return entries
}

// BuildStats computes the overview and the per-dimension breakdowns.
// totalApostas counts entries, not records; porCasa and porEsporte group
// records, porOperador groups entries.
func BuildStats(records []model.NormalizedRecord, entries []Entry) *Stats {
	stats := &Stats{
		LucroPorDia: make(map[string]float64),
		PorOperador: make(map[string]GroupStats),
		PorCasa:     make(map[string]GroupStats),
		PorEsporte:  make(map[string]GroupStats),
	}

	var totalLucro, totalStake float64
	for _, r := range records {
		totalLucro += r.Lucro
		totalStake += r.Stake
		if r.DataAposta != "" {
			stats.LucroPorDia[r.DataAposta] += r.Lucro
		}
		addGroup(stats.PorCasa, r.Casa, r.Lucro, r.Stake)
		addGroup(stats.PorEsporte, r.Esporte, r.Lucro, r.Stake)
	}

	var greens, reds int
	for _, e := range entries {
		switch {
		case e.LucroTotal > epsilon:
			greens++
		case e.LucroTotal < -epsilon:
			reds++
		}
		addGroup(stats.PorOperador, e.Operador, e.LucroTotal, e.StakeTotal)
	}

	finalizeYields(stats.PorOperador)
	finalizeYields(stats.PorCasa)
	finalizeYields(stats.PorEsporte)

	ov := Overview{
		TotalLucro:   totalLucro,
		TotalStake:   totalStake,
		TotalApostas: len(entries),
		Greens:       greens,
		Reds:         reds,
	}
	if totalStake > 0 {
		ov.YieldPercent = totalLucro / totalStake * 100
	}
	if resolved := greens + reds; resolved > 0 {
		ov.GreenPercent = float64(greens) / float64(resolved) * 100
		ov.RedPercent = float64(reds) / float64(resolved) * 100
	}
	stats.Overview = ov
	return stats
}

// addGroup accumulates one item into a breakdown. Items with an empty key
// are excluded from that breakdown only.
func addGroup(groups map[string]GroupStats, key string, lucro, stake float64) {
	if key == "" {
		return
	}
	g := groups[key]
	g.Count++
	g.Lucro += lucro
	g.Stake += stake
	groups[key] = g
}

func finalizeYields(groups map[string]GroupStats) {
	for key, g := range groups {
		if g.Stake != 0 {
			g.YieldPercent = g.Lucro / g.Stake * 100
			groups[key] = g
		}
	}
}
