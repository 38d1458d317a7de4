package httpapi

import (
	"net/http"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.sportsData.ListSports(ctx))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	sportSlug := r.PathValue("sport")
	leagues, err := h.sportsData.ListLeagues(ctx, sportSlug)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "sport", sportSlug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	info, err := h.sportsData.GetLeague(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, info)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.sportsData.ResolveStandings(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve standings failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := newsQuery{Team: r.URL.Query().Get("team"), Limit: limit}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	articles, err := h.sportsData.ResolveNews(ctx, ref, q.Team, q.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve news failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, articles)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := leaderboardQuery{Date: r.URL.Query().Get("date")}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.sportsData.ResolveLeaderboard(ctx, ref, q.Date)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve leaderboard failed", "league", ref.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}
