package httpapi

import (
	"net/http"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.sportsData.ResolveTeams(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve teams failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	detail, err := h.sportsData.GetTeam(ctx, ref, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "league", ref.League, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	roster, err := h.sportsData.ResolveRoster(ctx, ref, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve roster failed", "league", ref.League, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roster)
}

func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSchedule")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := scheduleQuery{Season: r.URL.Query().Get("season")}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	schedule, err := h.sportsData.ResolveTeamSchedule(ctx, ref, teamID, q.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve team schedule failed", "league", ref.League, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, schedule)
}
