package espn

import "testing"

func TestNormalizeSplits_ZipsLabels(t *testing.T) {
	t.Parallel()

	doc := decodeFixture(t, `{
  "labels": ["GP", "PTS", "REB"],
  "splitCategories": [
    {"name": "split", "splits": [
      {"displayName": "All Splits", "stats": ["72", "30.4", "11.5"]},
      {"displayName": "Home", "stats": ["36", "31.0"]}
    ]},
    {"name": "result", "splits": [
      {"displayName": "Wins/Ties", "stats": ["49", "31.2", "12.0"]},
      {"displayName": "All Splits", "stats": ["1", "1", "1"]}
    ]}
  ],
  "splits": [{"name": "Losses", "stats": ["23", "28.7", "10.4"]}]
}`)

	splits := normalizeSplits(doc)
	if len(splits) != 3 {
		t.Fatalf("expected three splits, got=%d (%v)", len(splits), splits.Names())
	}
	if splits["All Splits"]["PTS"] != "30.4" {
		t.Fatalf("expected first All Splits to win, got %v", splits["All Splits"])
	}
	if splits["Wins/Ties"]["GP"] != "49" {
		t.Fatalf("unexpected Wins/Ties: %v", splits["Wins/Ties"])
	}
	if splits["Losses"]["REB"] != "10.4" {
		t.Fatalf("unexpected Losses: %v", splits["Losses"])
	}
	if _, ok := splits["Home"]; ok {
		t.Fatalf("expected mismatched split to be dropped")
	}
}

func TestNormalizeSplits_NoLabels(t *testing.T) {
	t.Parallel()

	splits := normalizeSplits(decodeFixture(t, `{"splitCategories": [{"splits": [{"displayName": "All Splits", "stats": ["1"]}]}]}`))
	if splits == nil || len(splits) != 0 {
		t.Fatalf("expected empty splits, got %v", splits)
	}
}
