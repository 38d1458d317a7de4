package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportsfeed/internal/platform/logging"
	"github.com/riskibarqy/sportsfeed/internal/usecase"
)

type Handler struct {
	sportsData *usecase.SportsDataService
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(sportsData *usecase.SportsDataService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sportsData: sportsData,
		logger:     logger,
		validator:  validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueQuery struct {
	Sport string `validate:"omitempty,max=40"`
}

type scoreboardQuery struct {
	Date       string `validate:"omitempty,len=8,numeric"`
	Group      string `validate:"omitempty,max=10,numeric"`
	SeasonType string `validate:"omitempty,oneof=1 2 3 4"`
}

type athletesQuery struct {
	Active string `validate:"omitempty,oneof=true false"`
}

type scheduleQuery struct {
	Season string `validate:"omitempty,len=4,numeric"`
}

type newsQuery struct {
	Team  string `validate:"omitempty,max=20,numeric"`
	Limit int    `validate:"omitempty,min=1,max=100"`
}

type leaderboardQuery struct {
	Date string `validate:"omitempty,len=8,numeric"`
}

// leagueRefFromRequest validates the optional ?sport= override and pairs it
// with the {league} path value.
func (h *Handler) leagueRefFromRequest(ctx context.Context, r *http.Request) (usecase.LeagueRef, error) {
	q := leagueQuery{Sport: strings.TrimSpace(r.URL.Query().Get("sport"))}
	if err := h.validateRequest(ctx, q); err != nil {
		return usecase.LeagueRef{}, err
	}
	return usecase.LeagueRef{League: r.PathValue("league"), Sport: q.Sport}, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func parseOptionalBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}
