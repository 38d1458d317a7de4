package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeSummary(t *testing.T) {
	t.Parallel()

	doc := decodeFixture(t, `{
  "gameInfo": {"venue": {"fullName": "FedExField"}},
  "boxscore": {"teams": [{"team": {"id": "28"}, "statistics": []}]},
  "plays": [{"id": "p1", "text": "Kickoff", "clock": {"displayValue": "15:00"}, "period": {"number": 1}, "scoringPlay": false}],
  "scoringPlays": [{"id": "s1"}],
  "pickcenter": [{"provider": {"name": "ESPN BET"}, "details": "WSH -7", "overUnder": 38.5, "spread": -7}]
}`)

	summary := normalizeSummary("401547353", doc)
	if summary.GameInfo == nil || len(summary.Boxscore.Teams) != 1 || summary.Boxscore.Teams[0].GameID != "401547353" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Plays) != 1 || summary.Plays[0].Clock != "15:00" || summary.Plays[0].Period != 1 {
		t.Fatalf("unexpected plays: %+v", summary.Plays)
	}
	if summary.Odds == nil || summary.Odds.Provider != "ESPN BET" || summary.Odds.OverUnder != 38.5 {
		t.Fatalf("unexpected odds: %+v", summary.Odds)
	}
	if len(summary.ScoringPlays) != 1 {
		t.Fatalf("unexpected scoring plays: %v", summary.ScoringPlays)
	}

	bare := normalizeSummary("1", map[string]any{})
	if bare.Odds != nil {
		t.Fatalf("expected nil odds without pickcenter")
	}
}

func TestNormalizeNews(t *testing.T) {
	t.Parallel()

	articles := normalizeNews(decodeFixture(t, `{"articles": [
  {"id": 1, "headline": "Big win", "byline": "Staff", "images": [{"url": "img.jpg"}], "links": {"web": {"href": "https://espn.com/a"}}},
  {"headline": "Short link", "links": {"web": {"short": {"href": "https://es.pn/x"}}}}
]}`))

	if len(articles) != 2 {
		t.Fatalf("expected two articles, got=%d", len(articles))
	}
	if articles[0].ID != "1" || articles[0].Author != "Staff" || articles[0].Image == nil || *articles[0].URL != "https://espn.com/a" {
		t.Fatalf("unexpected first article: %+v", articles[0])
	}
	if articles[1].Image != nil || articles[1].URL == nil || *articles[1].URL != "https://es.pn/x" {
		t.Fatalf("unexpected second article: %+v", articles[1])
	}
}

func TestNormalizeLeaderboard(t *testing.T) {
	t.Parallel()

	entries := normalizeLeaderboard(decodeFixture(t, `{"events": [{
  "name": "Masters Tournament",
  "status": {"type": {"description": "Final"}},
  "competitions": [{"competitors": [
    {"order": 1, "athlete": {"id": "9478", "displayName": "Scottie Scheffler"}, "score": "-11",
     "linescores": [{"value": 66}, {"value": 72}, {"value": 71}, {"value": 68}]},
    {"athlete": {"id": "1", "displayName": "Ludvig Aberg"}, "score": {"displayValue": "-7"}, "linescores": [{"value": 73}]}
  ]}]
}]}`))

	if len(entries) != 2 {
		t.Fatalf("expected two entries, got=%d", len(entries))
	}
	leader := entries[0]
	if leader.Rank != 1 || leader.ScoreToPar != "-11" || leader.TotalStrokes != "277" || len(leader.Rounds) != 4 {
		t.Fatalf("unexpected leader: %+v", leader)
	}
	if leader.TournamentName != "Masters Tournament" || leader.Status != "Final" {
		t.Fatalf("unexpected tournament fields: %+v", leader)
	}
	if entries[1].Rank != 2 || entries[1].ScoreToPar != "-7" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}

	if got := normalizeLeaderboard(map[string]any{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty leaderboard, got %#v", got)
	}
}

func TestClientListLivePlays_ReadsGamePackage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cdn/nfl/playbyplay" || r.URL.Query().Get("gameId") != "401" || r.URL.Query().Get("xhr") != "1" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		writeJSON(w, map[string]any{"gamepackageJSON": map[string]any{"plays": []any{
			map[string]any{"id": "1", "text": "Touchdown", "scoringPlay": true, "scoreValue": 6, "homeScore": 6, "awayScore": 0},
		}}})
	}))
	defer srv.Close()

	client := newTestClient(srv, 4, 10)
	plays, err := client.ListLivePlays(context.Background(), "nfl", "401")
	if err != nil {
		t.Fatalf("list live plays: %v", err)
	}
	if len(plays) != 1 || !plays[0].ScoringPlay || plays[0].ScoreValue != 6 || plays[0].HomeScore != 6 {
		t.Fatalf("unexpected plays: %+v", plays)
	}
}
