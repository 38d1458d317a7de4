package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/sports/{sport}/leagues", handler.ListLeagues)
}

// League routes accept a catalog slug ("eng.1") or a snake_case name ("eng_1")
// for {league}, plus an optional ?sport= override.
func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{league}", handler.GetLeague)

	mux.HandleFunc("GET /v1/leagues/{league}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/leagues/{league}/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/leagues/{league}/teams/{teamID}/roster", handler.GetRoster)
	mux.HandleFunc("GET /v1/leagues/{league}/teams/{teamID}/schedule", handler.GetTeamSchedule)

	mux.HandleFunc("GET /v1/leagues/{league}/athletes", handler.ListAthletes)
	mux.HandleFunc("GET /v1/leagues/{league}/athletes/{athleteID}", handler.GetAthlete)
	mux.HandleFunc("GET /v1/leagues/{league}/athletes/{athleteID}/splits", handler.GetAthleteSplits)

	mux.HandleFunc("GET /v1/leagues/{league}/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/leagues/{league}/events/{eventID}/summary", handler.GetGameSummary)
	mux.HandleFunc("GET /v1/leagues/{league}/events/{eventID}/plays", handler.ListLivePlays)
	mux.HandleFunc("GET /v1/leagues/{league}/events/{eventID}/odds", handler.ListOdds)

	mux.HandleFunc("GET /v1/leagues/{league}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leagues/{league}/news", handler.ListNews)
	mux.HandleFunc("GET /v1/leagues/{league}/leaderboard", handler.GetLeaderboard)
}
