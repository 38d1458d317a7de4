package espn

import (
	"reflect"
	"testing"
)

const boxscoreFixture = `{
  "teams": [
    {"team": {"id": "22", "displayName": "Arizona Cardinals", "abbreviation": "ARI"},
     "statistics": [{"name": "firstDowns", "label": "1st Downs", "displayValue": "15"}, {"name": "totalYards", "displayValue": "210"}]},
    {"team": {"id": "28", "displayName": "Washington Commanders", "abbreviation": "WSH"},
     "statistics": [{"name": "firstDowns", "label": "1st Downs", "displayValue": "19"}]}
  ],
  "players": [
    {
      "team": {"id": "28"},
      "statistics": [
        {"name": "passing", "labels": ["C/ATT", "YDS", "TD"],
         "athletes": [{"athlete": {"id": "4426875", "displayName": "Sam Howell", "position": {"abbreviation": "QB"}}, "stats": ["19/31", "202", "1"]}]},
        {"name": "rushing", "labels": ["CAR", "YDS", "AVG", "TD"],
         "athletes": [
           {"athlete": {"id": "4426875", "displayName": "Sam Howell"}, "stats": ["4", "22", "5.5", "0"]},
           {"athlete": {"id": "4360294", "displayName": "Brian Robinson Jr."}, "stats": ["19", "60"]}
         ]}
      ]
    },
    {
      "team": {"id": "1"},
      "statistics": [
        {"labels": ["MIN", "PTS", "REB"],
         "athletes": [{"athlete": {"id": "3032977", "displayName": "Giannis Antetokounmpo", "position": {"abbreviation": "F"}}, "stats": ["34", "31", "12"]}]}
      ]
    }
  ]
}`

func TestNormalizeBoxscore_NamedCategoriesNest(t *testing.T) {
	t.Parallel()

	box := normalizeBoxscore("401547353", decodeFixture(t, boxscoreFixture))
	if len(box.Teams) != 2 {
		t.Fatalf("expected two teams, got=%d", len(box.Teams))
	}
	if box.Teams[0].Stats["1st Downs"] != "15" || box.Teams[0].Stats["totalYards"] != "210" {
		t.Fatalf("unexpected team stats: %v", box.Teams[0].Stats)
	}

	if len(box.Players) != 3 {
		t.Fatalf("expected three players, got=%d", len(box.Players))
	}

	qb := box.Players[0]
	if qb.ID != "4426875" || qb.TeamID != "28" || qb.Abbreviation != "QB" || qb.GameID != "401547353" {
		t.Fatalf("unexpected qb identity: %+v", qb)
	}
	if qb.Stats.Categories["passing"]["YDS"] != "202" || qb.Stats.Categories["rushing"]["YDS"] != "22" {
		t.Fatalf("unexpected qb categories: %v", qb.Stats.Categories)
	}
	if len(qb.Stats.Flat) != 0 {
		t.Fatalf("expected no flat stats, got %v", qb.Stats.Flat)
	}

	rb := box.Players[1]
	want := map[string]string{"CAR": "19", "YDS": "60"}
	if !reflect.DeepEqual(rb.Stats.Categories["rushing"], want) {
		t.Fatalf("expected zip to shorter list, got %v", rb.Stats.Categories["rushing"])
	}
}

func TestNormalizeBoxscore_UnnamedCategoryIsFlat(t *testing.T) {
	t.Parallel()

	box := normalizeBoxscore("1", decodeFixture(t, boxscoreFixture))
	giannis := box.Players[2]
	if giannis.Stats.Flat["PTS"] != "31" || giannis.Stats.Flat["REB"] != "12" {
		t.Fatalf("unexpected flat stats: %v", giannis.Stats.Flat)
	}
	if len(giannis.Stats.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", giannis.Stats.Categories)
	}
}

func TestNormalizeBoxscore_Idempotent(t *testing.T) {
	t.Parallel()

	doc := decodeFixture(t, boxscoreFixture)
	first := normalizeBoxscore("401547353", doc)
	second := normalizeBoxscore("401547353", doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalizing the same payload twice produced different results")
	}
}

func TestNormalizeBoxscore_Empty(t *testing.T) {
	t.Parallel()

	box := normalizeBoxscore("1", nil)
	if box.Teams == nil || box.Players == nil || len(box.Teams) != 0 || len(box.Players) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", box)
	}
}
