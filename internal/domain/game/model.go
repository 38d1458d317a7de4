package game

import "github.com/riskibarqy/sportsfeed/internal/domain/boxscore"

// Game is one scoreboard or schedule row.
//
// For individual-competitor sports the Home/Away slots are positional: the first
// competitor fills the home slot and the second the away slot.
type Game struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	Name           string   `json:"name"`
	TournamentName string   `json:"tournamentName,omitempty"`
	ShortName      string   `json:"shortName"`
	SeasonYear     int      `json:"seasonYear,omitempty"`
	SeasonType     int      `json:"seasonType,omitempty"`
	SeasonSlug     string   `json:"seasonSlug,omitempty"`
	Status         string   `json:"status"`
	Completed      bool     `json:"completed"`
	Clock          string   `json:"clock"`
	Period         int      `json:"period"`
	Venue          string   `json:"venue,omitempty"`
	Broadcasts     []string `json:"broadcasts"`
	HomeTeam       string   `json:"homeTeam"`
	HomeTeamID     string   `json:"homeTeamId"`
	HomeScore      string   `json:"homeScore"`
	HomeLogo       *string  `json:"homeLogo"`
	AwayTeam       string   `json:"awayTeam"`
	AwayTeamID     string   `json:"awayTeamId"`
	AwayScore      string   `json:"awayScore"`
	AwayLogo       *string  `json:"awayLogo"`
	HomeLinescores []string `json:"homeLinescores,omitempty"`
	AwayLinescores []string `json:"awayLinescores,omitempty"`
	SetScores      string   `json:"setScores,omitempty"`
}

// Scoreboard is the normalized result of one scoreboard call.
type Scoreboard struct {
	Games         []Game `json:"games"`
	SkippedEvents int    `json:"skippedEvents"`
}

// Play is one play-by-play item.
type Play struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Clock       string `json:"clock"`
	Period      int    `json:"period"`
	ScoringPlay bool   `json:"scoringPlay"`
	ScoreValue  int    `json:"scoreValue"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

// Odds is the primary betting line attached to a game summary.
type Odds struct {
	Provider  string  `json:"provider"`
	Details   string  `json:"details"`
	OverUnder float64 `json:"overUnder"`
	Spread    float64 `json:"spread"`
}

// Summary is the detailed view of one event.
type Summary struct {
	GameInfo     map[string]any    `json:"gameInfo,omitempty"`
	Boxscore     boxscore.Boxscore `json:"boxscore"`
	Odds         *Odds             `json:"odds"`
	Plays        []Play            `json:"plays"`
	ScoringPlays []any             `json:"scoringPlays,omitempty"`
	Videos       []any             `json:"videos,omitempty"`
	Article      map[string]any    `json:"article,omitempty"`
}
