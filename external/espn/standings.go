package espn

import (
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsfeed/internal/domain/standing"
)

const overallGroup = "Overall"

type standingsShape int

const (
	shapeFlat standingsShape = iota
	shapeRanked
	shapeGrouped
)

func detectStandingsShape(doc map[string]any) standingsShape {
	if _, ok := doc["rankings"]; ok {
		return shapeRanked
	}
	if _, ok := doc["children"]; ok {
		return shapeGrouped
	}
	return shapeFlat
}

// normalizeStandings reconciles grouped standings and ranking lists into one
// best-first list of entries.
func normalizeStandings(doc map[string]any) []standing.Entry {
	var entries []standing.Entry
	switch detectStandingsShape(doc) {
	case shapeRanked:
		entries = parseRankings(doc)
	case shapeGrouped:
		entries = parseGroupedStandings(doc)
	default:
		entries = parseStandingsBlock(overallGroup, getMap(doc, "standings"))
	}
	sortStandings(entries)
	return entries
}

func parseRankings(doc map[string]any) []standing.Entry {
	var out []standing.Entry
	for _, ranking := range getMaps(doc, "rankings") {
		group := firstNonEmpty(getString(ranking, "name"), getString(ranking, "shortName"), overallGroup)
		for _, rank := range getMaps(ranking, "ranks") {
			kind, entity := rankedEntity(rank)
			entry := placeholderEntry(group)
			entry.Kind = kind
			entry.ID = getString(entity, "id")
			entry.Name = firstNonEmpty(getString(entity, "displayName"), getString(entity, "name"))
			entry.Abbreviation = getString(entity, "abbreviation")
			entry.Logo = entityLogo(entity)
			if v, ok := getFloat(rank, "current"); ok {
				r := int(v)
				entry.Rank = &r
			}
			if v, ok := getFloat(rank, "points"); ok {
				entry.Points = formatNumber(v)
			}
			out = append(out, entry)
		}
	}
	return out
}

func rankedEntity(rank map[string]any) (string, map[string]any) {
	if a := getMap(rank, "athlete"); a != nil {
		return "athlete", a
	}
	if t := getMap(rank, "team"); t != nil {
		return "team", t
	}
	return "athlete", nil
}

// parseGroupedStandings walks conference/division children depth first; the
// innermost group name labels its entries.
func parseGroupedStandings(doc map[string]any) []standing.Entry {
	var out []standing.Entry
	var walk func(node map[string]any)
	walk = func(node map[string]any) {
		for _, child := range getMaps(node, "children") {
			name := firstNonEmpty(getString(child, "name"), overallGroup)
			out = append(out, parseStandingsBlock(name, getMap(child, "standings"))...)
			walk(child)
		}
	}
	walk(doc)
	return out
}

func parseStandingsBlock(group string, block map[string]any) []standing.Entry {
	entries := getMaps(block, "entries")
	out := make([]standing.Entry, 0, len(entries))
	for _, raw := range entries {
		kind, entity := standingsEntity(raw)
		stats := flattenStandingStats(getMaps(raw, "stats"))

		entry := placeholderEntry(group)
		entry.Kind = kind
		entry.ID = getString(entity, "id")
		entry.Name = firstNonEmpty(getString(entity, "displayName"), getString(entity, "name"))
		entry.Abbreviation = getString(entity, "abbreviation")
		entry.Logo = entityLogo(entity)

		entry.Wins = statOr(stats, "0", "wins")
		entry.Losses = statOr(stats, "0", "losses")
		entry.Ties = statOr(stats, "0", "ties")
		entry.WinPercent = statOr(stats, "0", "winPercent", "winpercent")
		entry.GamesBehind = statOr(stats, "-", "gamesBehind", "gamesbehind")
		entry.Points = statOr(stats, "0", "points", "championshipPts", "totalPoints")
		entry.Streak = statOr(stats, "-", "streak")
		entry.PointsFor = statOr(stats, "0", "pointsFor", "goalsFor")
		entry.PointsAgainst = statOr(stats, "0", "pointsAgainst", "goalsAgainst")
		entry.Differential = statOr(stats, "0", "differential", "pointDifferential", "goalDifference")
		entry.HomeRecord = statOr(stats, "-", "home", "Home")
		entry.AwayRecord = statOr(stats, "-", "road", "away", "Road")
		entry.DivisionRecord = statOr(stats, "-", "vsdiv", "vs. Div.", "divisionRecord")
		entry.ConferenceRecord = statOr(stats, "-", "vsconf", "vs. Conf.", "conferenceRecord")
		entry.LastTenRecord = statOr(stats, "-", "lasttengames", "Last Ten Games", "L10")
		entry.PlayoffSeed = statOr(stats, "-", "playoffSeed", "playoffseed")

		if v, ok := stats.rank(); ok {
			entry.Rank = &v
		}
		out = append(out, entry)
	}
	return out
}

// standingsEntity resolves the competitor of a standings entry, which sits
// under "team", "athlete" or "constructor" depending on the sport.
func standingsEntity(raw map[string]any) (string, map[string]any) {
	for _, kind := range []string{"team", "athlete", "constructor"} {
		if entity := getMap(raw, kind); entity != nil {
			return kind, entity
		}
	}
	return "team", nil
}

type standingStats struct {
	display map[string]string
	values  map[string]float64
}

// flattenStandingStats keys each stat by name, abbreviation and type. Record
// stats carry their text in "summary".
func flattenStandingStats(items []map[string]any) standingStats {
	out := standingStats{
		display: make(map[string]string, len(items)*2),
		values:  make(map[string]float64, len(items)),
	}
	for _, stat := range items {
		text := firstNonEmpty(getString(stat, "displayValue"), getString(stat, "summary"))
		value, hasValue := getFloat(stat, "value")
		if text == "" && hasValue {
			text = formatNumber(value)
		}
		for _, key := range []string{getString(stat, "name"), getString(stat, "abbreviation"), getString(stat, "type")} {
			if key == "" {
				continue
			}
			if _, taken := out.display[key]; !taken && text != "" {
				out.display[key] = text
			}
			if _, taken := out.values[key]; !taken && hasValue {
				out.values[key] = value
			}
		}
	}
	return out
}

func (s standingStats) rank() (int, bool) {
	v, ok := s.values["rank"]
	if !ok || v <= 0 {
		return 0, false
	}
	return int(v), true
}

func statOr(stats standingStats, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(stats.display[key]); v != "" {
			return v
		}
	}
	return fallback
}

func placeholderEntry(group string) standing.Entry {
	return standing.Entry{
		Group:            group,
		Wins:             "0",
		Losses:           "0",
		Ties:             "0",
		WinPercent:       "0",
		GamesBehind:      "-",
		Points:           "0",
		Streak:           "-",
		PointsFor:        "0",
		PointsAgainst:    "0",
		Differential:     "0",
		HomeRecord:       "-",
		AwayRecord:       "-",
		DivisionRecord:   "-",
		ConferenceRecord: "-",
		LastTenRecord:    "-",
		PlayoffSeed:      "-",
	}
}

func entityLogo(entity map[string]any) *string {
	if logo := firstLogo(entity); logo != nil {
		return logo
	}
	if hs := getMap(entity, "headshot"); hs != nil {
		return ptrString(getString(hs, "href"))
	}
	return ptrString(getString(getMap(entity, "flag"), "href"))
}

// standingSortKey: an explicit rank wins (10000-rank so rank 1 is highest),
// then non-zero points, then win percentage.
func standingSortKey(e standing.Entry) float64 {
	if e.Rank != nil {
		return 10000 - float64(*e.Rank)
	}
	if points := parseStandingNumber(e.Points); points != 0 {
		return points
	}
	return parseStandingNumber(e.WinPercent)
}

func parseStandingNumber(raw string) float64 {
	text := strings.TrimSpace(raw)
	if text == "" || text == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	v, _ = finite(v)
	return v
}

func sortStandings(entries []standing.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return standingSortKey(entries[i]) > standingSortKey(entries[j])
	})
}
