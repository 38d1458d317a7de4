package espn

import (
	"github.com/riskibarqy/sportsfeed/internal/domain/odds"
)

const unknownProvider = "Unknown"

// normalizeOdds builds one entry per provider item. The flat shape is read
// first; items without "details" fall back to bettingOdds.teamOdds.
func normalizeOdds(items []map[string]any) []odds.Entry {
	out := make([]odds.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeOddsItem(item))
	}
	return out
}

func normalizeOddsItem(item map[string]any) odds.Entry {
	entry := odds.Entry{
		Provider:      firstNonEmpty(getString(getMap(item, "provider"), "name"), unknownProvider),
		Details:       getString(item, "details"),
		OverUnder:     optionalNumber(item["overUnder"]),
		Spread:        optionalNumber(item["spread"]),
		AwayMoneyLine: optionalNumber(getMap(item, "awayTeamOdds")["moneyLine"]),
		HomeMoneyLine: optionalNumber(getMap(item, "homeTeamOdds")["moneyLine"]),
	}

	if entry.Details == "" {
		applyBettingOdds(&entry, getPath(item, "bettingOdds", "teamOdds"))
	}

	if entry.Details == "" && entry.Spread != nil {
		entry.Details = "Home " + formatNumber(*entry.Spread)
	}
	return entry
}

func applyBettingOdds(entry *odds.Entry, teamOdds map[string]any) {
	if teamOdds == nil {
		return
	}
	if v := optionalNumber(teamOdds["preMatchSpreadHandicapHome"]); v != nil {
		entry.Spread = v
	}
	if v := optionalNumber(teamOdds["preMatchTotalHandicap"]); v != nil {
		entry.OverUnder = v
	}
	if v := optionalNumber(teamOdds["preMatchMoneyLineAway"]); v != nil {
		entry.AwayMoneyLine = v
	}
	if v := optionalNumber(teamOdds["preMatchMoneyLineHome"]); v != nil {
		entry.HomeMoneyLine = v
	}
}

func optionalNumber(raw any) *float64 {
	if raw == nil {
		return nil
	}
	v, ok := parseNumber(raw)
	if !ok {
		return nil
	}
	return ptrFloat(v)
}
