package httpapi

import (
	"net/http"
)

func (h *Handler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAthletes")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := athletesQuery{Active: r.URL.Query().Get("active")}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	athletes, err := h.sportsData.ResolveAthletes(ctx, ref, parseOptionalBool(q.Active))
	if err != nil {
		h.logger.WarnContext(ctx, "resolve athletes failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, athletes)
}

func (h *Handler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthlete")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	athleteID := r.PathValue("athleteID")
	item, err := h.sportsData.GetAthlete(ctx, ref, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "get athlete failed", "league", ref.League, "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetAthleteSplits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthleteSplits")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	athleteID := r.PathValue("athleteID")
	splits, err := h.sportsData.ResolveAthleteSplits(ctx, ref, athleteID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve athlete splits failed", "league", ref.League, "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, splits)
}
