package espn

import (
	"testing"

	"github.com/riskibarqy/sportsfeed/internal/domain/standing"
)

const groupedStandingsFixture = `{
  "children": [
    {
      "name": "American Football Conference",
      "children": [
        {
          "name": "AFC East",
          "standings": {"entries": [
            {"team": {"id": "2", "displayName": "Buffalo Bills", "abbreviation": "BUF", "logos": [{"href": "buf.png"}]},
             "stats": [
               {"name": "wins", "value": 11, "displayValue": "11"},
               {"name": "losses", "value": 6, "displayValue": "6"},
               {"name": "winPercent", "value": 0.647, "displayValue": ".647"},
               {"name": "playoffSeed", "value": 2, "displayValue": "2"},
               {"name": "home", "type": "home", "summary": "7-2"},
               {"name": "Road", "type": "road", "summary": "4-4"}
             ]},
            {"team": {"id": "15", "displayName": "Miami Dolphins", "abbreviation": "MIA"},
             "stats": [
               {"name": "wins", "value": 11, "displayValue": "11"},
               {"name": "losses", "value": 6, "displayValue": "6"},
               {"name": "winPercent", "value": 0.647, "displayValue": ".647"}
             ]}
          ]}
        }
      ]
    },
    {
      "name": "National Football Conference",
      "standings": {"entries": [
        {"team": {"id": "25", "displayName": "San Francisco 49ers"},
         "stats": [{"name": "wins", "value": 12, "displayValue": "12"}, {"name": "winPercent", "value": 0.706, "displayValue": ".706"}]}
      ]}
    }
  ]
}`

func TestDetectStandingsShape(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		doc  map[string]any
		want standingsShape
	}{
		"rankings": {doc: map[string]any{"rankings": []any{}}, want: shapeRanked},
		"children": {doc: map[string]any{"children": []any{}}, want: shapeGrouped},
		"flat":     {doc: map[string]any{"standings": map[string]any{}}, want: shapeFlat},
		"empty":    {doc: map[string]any{}, want: shapeFlat},
	}
	for name, tc := range cases {
		if got := detectStandingsShape(tc.doc); got != tc.want {
			t.Fatalf("%s: unexpected shape: got=%d want=%d", name, got, tc.want)
		}
	}
}

func TestNormalizeStandings_GroupedWalk(t *testing.T) {
	t.Parallel()

	entries := normalizeStandings(decodeFixture(t, groupedStandingsFixture))
	if len(entries) != 3 {
		t.Fatalf("expected three entries, got=%d", len(entries))
	}

	top := entries[0]
	if top.Name != "San Francisco 49ers" || top.Group != "National Football Conference" {
		t.Fatalf("expected best win percentage first, got %s (%s)", top.Name, top.Group)
	}
	if top.Losses != "0" || top.GamesBehind != "-" || top.HomeRecord != "-" {
		t.Fatalf("expected placeholders for missing stats, got %+v", top)
	}

	bills := entries[1]
	if bills.Name != "Buffalo Bills" || bills.Group != "AFC East" {
		t.Fatalf("expected stable order for ties, got %s", bills.Name)
	}
	if bills.HomeRecord != "7-2" || bills.AwayRecord != "4-4" || bills.PlayoffSeed != "2" {
		t.Fatalf("unexpected records: home=%s away=%s seed=%s", bills.HomeRecord, bills.AwayRecord, bills.PlayoffSeed)
	}
	if bills.Logo == nil || *bills.Logo != "buf.png" || bills.Kind != "team" {
		t.Fatalf("unexpected entity fields: %+v", bills)
	}
	if entries[2].Name != "Miami Dolphins" {
		t.Fatalf("unexpected third entry: %s", entries[2].Name)
	}
}

func TestNormalizeStandings_Rankings(t *testing.T) {
	t.Parallel()

	doc := decodeFixture(t, `{
  "rankings": [{
    "name": "ATP Rankings",
    "ranks": [
      {"current": 2, "points": 9725, "athlete": {"id": "a2", "displayName": "Carlos Alcaraz"}},
      {"current": 1, "points": 11245, "athlete": {"id": "a1", "displayName": "Novak Djokovic", "flag": {"href": "srb.png"}}},
      {"current": 3, "points": 7600, "team": {"id": "t3", "displayName": "Team Three"}}
    ]
  }]
}`)

	entries := normalizeStandings(doc)
	if len(entries) != 3 {
		t.Fatalf("expected three entries, got=%d", len(entries))
	}
	if entries[0].Name != "Novak Djokovic" || entries[0].Rank == nil || *entries[0].Rank != 1 {
		t.Fatalf("expected rank 1 first, got %+v", entries[0])
	}
	if entries[0].Points != "11245" || entries[0].Group != "ATP Rankings" || entries[0].Kind != "athlete" {
		t.Fatalf("unexpected ranking fields: %+v", entries[0])
	}
	if entries[0].Wins != "0" || entries[0].Losses != "0" {
		t.Fatalf("expected zeroed records for rankings, got wins=%s losses=%s", entries[0].Wins, entries[0].Losses)
	}
	if entries[0].Logo == nil || *entries[0].Logo != "srb.png" {
		t.Fatalf("unexpected logo: %v", entries[0].Logo)
	}
	if entries[2].Kind != "team" {
		t.Fatalf("expected team kind for team ranking, got %s", entries[2].Kind)
	}
}

func TestNormalizeStandings_ConstructorEntries(t *testing.T) {
	t.Parallel()

	doc := decodeFixture(t, `{
  "standings": {"entries": [
    {"constructor": {"id": "c2", "name": "Ferrari"}, "stats": [{"name": "championshipPts", "value": 406, "displayValue": "406"}]},
    {"constructor": {"id": "c1", "name": "Red Bull"}, "stats": [{"name": "championshipPts", "value": 860, "displayValue": "860"}]}
  ]}
}`)

	entries := normalizeStandings(doc)
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got=%d", len(entries))
	}
	if entries[0].Name != "Red Bull" || entries[0].Kind != "constructor" || entries[0].Points != "860" {
		t.Fatalf("unexpected leader: %+v", entries[0])
	}
	if entries[0].Group != overallGroup {
		t.Fatalf("unexpected group: %s", entries[0].Group)
	}
}

func TestSortStandings_TotalOrder(t *testing.T) {
	t.Parallel()

	rank := func(v int) *int { return &v }
	entries := []standing.Entry{
		{Name: "pct-low", Points: "0", WinPercent: ".300"},
		{Name: "points", Points: "40", WinPercent: "-"},
		{Name: "rank-2", Rank: rank(2), Points: "0"},
		{Name: "garbage", Points: "n/a", WinPercent: "abc"},
		{Name: "rank-1", Rank: rank(1), Points: "0"},
		{Name: "pct-high", Points: "0", WinPercent: ".800"},
	}
	sortStandings(entries)

	want := []string{"rank-1", "rank-2", "points", "pct-high", "pct-low", "garbage"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("position %d: got=%s want=%s", i, entries[i].Name, name)
		}
	}
	for i := 1; i < len(entries); i++ {
		if standingSortKey(entries[i-1]) < standingSortKey(entries[i]) {
			t.Fatalf("entries not in descending key order at %d", i)
		}
	}
}

func TestParseStandingNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"":      0,
		"-":     0,
		"12":    12,
		".647":  0.647,
		"abc":   0,
		"NaN":   0,
		"+Inf":  0,
		" 3.5 ": 3.5,
	}
	for raw, want := range cases {
		if got := parseStandingNumber(raw); got != want {
			t.Fatalf("parse %q: got=%v want=%v", raw, got, want)
		}
	}
}
