package leaderboard

// Entry is one golfer's line on a tournament leaderboard.
type Entry struct {
	Rank           int      `json:"rank"`
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TournamentName string   `json:"tournamentName"`
	Status         string   `json:"status"`
	ScoreToPar     string   `json:"scoreToPar"`
	TotalStrokes   string   `json:"totalStrokes"`
	Rounds         []string `json:"rounds"`
}
