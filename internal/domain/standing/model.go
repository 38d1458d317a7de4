package standing

// Entry is one row of a standings table or ranking list.
//
// Fields that do not apply to the source shape hold "0" or "-" placeholders.
type Entry struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Abbreviation     string  `json:"abbreviation"`
	Logo             *string `json:"logo"`
	Kind             string  `json:"kind"`
	Group            string  `json:"group"`
	Wins             string  `json:"wins"`
	Losses           string  `json:"losses"`
	Ties             string  `json:"ties"`
	WinPercent       string  `json:"winPercent"`
	GamesBehind      string  `json:"gamesBehind"`
	Points           string  `json:"points"`
	Rank             *int    `json:"rank"`
	Streak           string  `json:"streak"`
	PointsFor        string  `json:"pointsFor"`
	PointsAgainst    string  `json:"pointsAgainst"`
	Differential     string  `json:"differential"`
	HomeRecord       string  `json:"homeRecord"`
	AwayRecord       string  `json:"awayRecord"`
	DivisionRecord   string  `json:"divisionRecord"`
	ConferenceRecord string  `json:"conferenceRecord"`
	LastTenRecord    string  `json:"lastTenRecord"`
	PlayoffSeed      string  `json:"playoffSeed"`
}
