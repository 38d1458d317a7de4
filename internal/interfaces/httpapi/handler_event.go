package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsfeed/internal/usecase"
)

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	q := scoreboardQuery{
		Date:       values.Get("date"),
		Group:      values.Get("group"),
		SeasonType: values.Get("seasontype"),
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.sportsData.ResolveScoreboard(ctx, ref, usecase.ScoreboardQuery{
		Date:       q.Date,
		Group:      q.Group,
		SeasonType: q.SeasonType,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "resolve scoreboard failed", "league", ref.League, "date", q.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameSummary")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	summary, err := h.sportsData.ResolveGameSummary(ctx, ref, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve game summary failed", "league", ref.League, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListLivePlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLivePlays")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	plays, err := h.sportsData.ResolveLivePlays(ctx, ref, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve live plays failed", "league", ref.League, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, plays)
}

func (h *Handler) ListOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOdds")
	defer span.End()

	ref, err := h.leagueRefFromRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	entries, err := h.sportsData.ResolveOdds(ctx, ref, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve odds failed", "league", ref.League, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}
