package espn

import "testing"

func TestExtractTeamID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/seasons/2024/teams/12?lang=en&region=us": "12",
		"http://sports.core.api.espn.com/v2/sports/basketball/leagues/nba/teams/5":                               "5",
		"http://sports.core.api.espn.com/v2/sports/hockey/leagues/nhl/teams/7/athletes":                          "7",
	}
	for ref, want := range cases {
		got := extractTeamID(ref)
		if got == nil || *got != want {
			t.Fatalf("extract %s: got=%v want=%s", ref, got, want)
		}
	}

	for _, ref := range []string{"", "http://x/v2/athletes/1", "http://x/teams/"} {
		if got := extractTeamID(ref); got != nil {
			t.Fatalf("extract %q: expected nil, got %s", ref, *got)
		}
	}
}

func TestNormalizeTeam_Defaults(t *testing.T) {
	t.Parallel()

	item := normalizeTeam(decodeFixture(t, `{"id": "1", "displayName": "Atlanta Hawks", "logos": []}`))
	if !item.IsActive {
		t.Fatalf("expected isActive to default to true")
	}
	if item.Logo != nil {
		t.Fatalf("expected nil logo, got %s", *item.Logo)
	}

	inactive := normalizeTeam(decodeFixture(t, `{"id": "2", "isActive": false}`))
	if inactive.IsActive {
		t.Fatalf("expected explicit isActive=false to be kept")
	}
}

func TestNormalizeAthlete(t *testing.T) {
	t.Parallel()

	a := normalizeAthlete(decodeFixture(t, `{
  "id": "3139477",
  "fullName": "Patrick Mahomes",
  "weight": 225,
  "height": 74,
  "age": 28,
  "jersey": "15",
  "active": true,
  "position": {"name": "Quarterback", "abbreviation": "QB"},
  "headshot": {"href": "https://a.espncdn.com/mahomes.png"},
  "team": {"$ref": "http://sports.core.api.espn.com/v2/sports/football/leagues/nfl/seasons/2024/teams/12?lang=en"}
}`))

	if a.TeamID == nil || *a.TeamID != "12" {
		t.Fatalf("unexpected team id: %v", a.TeamID)
	}
	if a.Position != "Quarterback" || a.PositionAbbreviation != "QB" {
		t.Fatalf("unexpected position: %s/%s", a.Position, a.PositionAbbreviation)
	}
	if a.Weight != 225 || a.Height != 74 || a.Age != 28 || !a.Active {
		t.Fatalf("unexpected body fields: %+v", a)
	}
	if a.Headshot == nil || *a.Headshot != "https://a.espncdn.com/mahomes.png" {
		t.Fatalf("unexpected headshot: %v", a.Headshot)
	}

	bare := normalizeAthlete(map[string]any{"id": "1"})
	if bare.TeamID != nil || bare.Headshot != nil || bare.Active {
		t.Fatalf("unexpected defaults: %+v", bare)
	}
}

func TestNormalizeLeague_Season(t *testing.T) {
	t.Parallel()

	info := normalizeLeague(decodeFixture(t, `{"id": "28", "name": "National Football League", "slug": "nfl", "season": {"year": 2024}}`))
	if info.SeasonYear != 2024 || info.Slug != "nfl" || info.Logo != nil {
		t.Fatalf("unexpected league: %+v", info)
	}
}
