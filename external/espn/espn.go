package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsfeed/internal/domain/athlete"
	"github.com/riskibarqy/sportsfeed/internal/domain/game"
	"github.com/riskibarqy/sportsfeed/internal/domain/leaderboard"
	"github.com/riskibarqy/sportsfeed/internal/domain/league"
	"github.com/riskibarqy/sportsfeed/internal/domain/news"
	"github.com/riskibarqy/sportsfeed/internal/domain/odds"
	"github.com/riskibarqy/sportsfeed/internal/domain/standing"
	"github.com/riskibarqy/sportsfeed/internal/domain/team"
	"github.com/riskibarqy/sportsfeed/internal/usecase"
)

var _ usecase.SportsDataProvider = (*Client)(nil)

func leaguePath(sport, leagueSlug string) string {
	return "/sports/" + url.PathEscape(sport) + "/leagues/" + url.PathEscape(leagueSlug)
}

func sitePath(sport, leagueSlug string, rest ...string) string {
	parts := append([]string{"sports", url.PathEscape(sport), url.PathEscape(leagueSlug)}, rest...)
	return strings.Join(parts, "/")
}

func (c *Client) ListLeagues(ctx context.Context, sport string) ([]league.Info, error) {
	docs, err := c.resolveList(ctx, "/sports/"+url.PathEscape(sport)+"/leagues", nil)
	if err != nil {
		return nil, fmt.Errorf("list leagues sport=%s: %w", sport, err)
	}
	out := make([]league.Info, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalizeLeague(doc))
	}
	return out, nil
}

func (c *Client) GetLeague(ctx context.Context, sport, leagueSlug string) (league.Info, error) {
	doc, err := c.getDocument(ctx, c.coreBaseURL, leaguePath(sport, leagueSlug), nil)
	if err != nil {
		return league.Info{}, fmt.Errorf("get league %s/%s: %w", sport, leagueSlug, err)
	}
	return normalizeLeague(doc), nil
}

func (c *Client) ListTeams(ctx context.Context, sport, leagueSlug string) ([]team.Team, error) {
	docs, err := c.resolveList(ctx, leaguePath(sport, leagueSlug)+"/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("list teams %s/%s: %w", sport, leagueSlug, err)
	}
	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalizeTeam(doc))
	}
	return out, nil
}

func (c *Client) GetTeam(ctx context.Context, sport, leagueSlug, teamID string) (team.Detail, error) {
	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath(sport, leagueSlug, "teams", url.PathEscape(teamID)), nil)
	if err != nil {
		return team.Detail{}, fmt.Errorf("get team %s/%s id=%s: %w", sport, leagueSlug, teamID, err)
	}
	raw := getMap(doc, "team")
	if raw == nil {
		raw = doc
	}
	return normalizeTeamDetail(raw), nil
}

func (c *Client) ListAthletes(ctx context.Context, sport, leagueSlug string, active *bool) ([]athlete.Athlete, error) {
	query := url.Values{}
	if active != nil {
		query.Set("active", strconv.FormatBool(*active))
	}
	docs, err := c.resolveList(ctx, leaguePath(sport, leagueSlug)+"/athletes", query)
	if err != nil {
		return nil, fmt.Errorf("list athletes %s/%s: %w", sport, leagueSlug, err)
	}
	return normalizeAthletes(docs), nil
}

func (c *Client) GetAthlete(ctx context.Context, sport, leagueSlug, athleteID string) (athlete.Athlete, error) {
	doc, err := c.getDocument(ctx, c.coreBaseURL, leaguePath(sport, leagueSlug)+"/athletes/"+url.PathEscape(athleteID), nil)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("get athlete %s/%s id=%s: %w", sport, leagueSlug, athleteID, err)
	}
	return normalizeAthlete(doc), nil
}

func (c *Client) ListRoster(ctx context.Context, sport, leagueSlug string, season int, teamID string) ([]athlete.Athlete, error) {
	path := fmt.Sprintf("%s/seasons/%d/teams/%s/athletes", leaguePath(sport, leagueSlug), season, url.PathEscape(teamID))
	docs, err := c.resolveList(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list roster %s/%s team=%s season=%d: %w", sport, leagueSlug, teamID, season, err)
	}
	return normalizeAthletes(docs), nil
}

func normalizeAthletes(docs []map[string]any) []athlete.Athlete {
	out := make([]athlete.Athlete, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalizeAthlete(doc))
	}
	return out
}

func (c *Client) GetScoreboard(ctx context.Context, sport, leagueSlug string, q usecase.ScoreboardQuery) (game.Scoreboard, error) {
	query := url.Values{}
	if q.Date != "" {
		query.Set("dates", q.Date)
	}
	if q.Group != "" {
		query.Set("groups", q.Group)
	}
	if q.SeasonType != "" {
		query.Set("seasontype", q.SeasonType)
	}

	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath(sport, leagueSlug, "scoreboard"), query)
	if err != nil {
		return game.Scoreboard{}, fmt.Errorf("get scoreboard %s/%s: %w", sport, leagueSlug, err)
	}

	board := normalizeScoreboard(doc)
	if board.SkippedEvents > 0 {
		c.logger.WarnContext(ctx, "skipped malformed scoreboard events",
			"sport", sport,
			"league", leagueSlug,
			"skipped", board.SkippedEvents,
			"parsed", len(board.Games),
		)
	}
	return board, nil
}

func (c *Client) GetTeamSchedule(ctx context.Context, sport, leagueSlug, teamID, season string) (game.Scoreboard, error) {
	query := url.Values{}
	if season != "" {
		query.Set("season", season)
	}
	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath(sport, leagueSlug, "teams", url.PathEscape(teamID), "schedule"), query)
	if err != nil {
		return game.Scoreboard{}, fmt.Errorf("get schedule %s/%s team=%s: %w", sport, leagueSlug, teamID, err)
	}

	board := normalizeScoreboard(doc)
	if board.SkippedEvents > 0 {
		c.logger.WarnContext(ctx, "skipped malformed schedule events",
			"league", leagueSlug,
			"team_id", teamID,
			"skipped", board.SkippedEvents,
		)
	}
	return board, nil
}

func (c *Client) GetGameSummary(ctx context.Context, sport, leagueSlug, eventID string) (game.Summary, error) {
	query := url.Values{}
	query.Set("event", eventID)
	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath(sport, leagueSlug, "summary"), query)
	if err != nil {
		return game.Summary{}, fmt.Errorf("get summary %s/%s event=%s: %w", sport, leagueSlug, eventID, err)
	}
	return normalizeSummary(eventID, doc), nil
}

func (c *Client) ListLivePlays(ctx context.Context, leagueSlug, eventID string) ([]game.Play, error) {
	query := url.Values{}
	query.Set("xhr", "1")
	query.Set("gameId", eventID)
	doc, err := c.getDocument(ctx, c.cdnBaseURL, url.PathEscape(leagueSlug)+"/playbyplay", query)
	if err != nil {
		return nil, fmt.Errorf("get live plays %s event=%s: %w", leagueSlug, eventID, err)
	}
	return normalizePlays(getMaps(getMap(doc, "gamepackageJSON"), "plays")), nil
}

func (c *Client) GetStandings(ctx context.Context, sport, leagueSlug string) ([]standing.Entry, error) {
	doc, err := c.getDocument(ctx, c.standingsBaseURL, sitePath(sport, leagueSlug, "standings"), nil)
	if err != nil {
		return nil, fmt.Errorf("get standings %s/%s: %w", sport, leagueSlug, err)
	}
	return normalizeStandings(doc), nil
}

func (c *Client) GetAthleteSplits(ctx context.Context, sport, leagueSlug, athleteID string) (athlete.SplitStats, error) {
	doc, err := c.getDocument(ctx, c.commonBaseURL, sitePath(sport, leagueSlug, "athletes", url.PathEscape(athleteID), "splits"), nil)
	if err != nil {
		return nil, fmt.Errorf("get splits %s/%s athlete=%s: %w", sport, leagueSlug, athleteID, err)
	}
	return normalizeSplits(doc), nil
}

// ListOdds returns every provider's line for an event. A 404 means the event
// has no odds and yields an empty list.
func (c *Client) ListOdds(ctx context.Context, sport, leagueSlug, eventID string) ([]odds.Entry, error) {
	path := fmt.Sprintf("%s/events/%s/competitions/%s/odds", leaguePath(sport, leagueSlug), url.PathEscape(eventID), url.PathEscape(eventID))
	doc, err := c.getDocument(ctx, c.coreBaseURL, path, nil)
	if err != nil {
		if usecase.IsUpstreamNotFound(err) {
			return []odds.Entry{}, nil
		}
		return nil, fmt.Errorf("list odds %s/%s event=%s: %w", sport, leagueSlug, eventID, err)
	}

	items := getMaps(doc, "items")
	refs := make([]string, 0)
	pending := make([]int, 0)
	for i, item := range items {
		if getMap(item, "provider") == nil {
			if ref := getString(item, "$ref"); ref != "" {
				refs = append(refs, ref)
				pending = append(pending, i)
			}
		}
	}
	if len(refs) > 0 {
		resolved, err := c.resolveRefs(ctx, refs)
		if err != nil {
			return nil, fmt.Errorf("resolve odds %s/%s event=%s: %w", sport, leagueSlug, eventID, err)
		}
		for j, i := range pending {
			items[i] = resolved[j]
		}
	}
	return normalizeOdds(items), nil
}

func (c *Client) ListNews(ctx context.Context, sport, leagueSlug, teamID string, limit int) ([]news.Article, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if teamID != "" {
		query.Set("team", teamID)
	}
	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath(sport, leagueSlug, "news"), query)
	if err != nil {
		return nil, fmt.Errorf("list news %s/%s: %w", sport, leagueSlug, err)
	}
	return normalizeNews(doc), nil
}

func (c *Client) GetLeaderboard(ctx context.Context, leagueSlug, date string) ([]leaderboard.Entry, error) {
	query := url.Values{}
	if date != "" {
		query.Set("dates", date)
	}
	doc, err := c.getDocument(ctx, c.siteBaseURL, sitePath("golf", leagueSlug, "scoreboard"), query)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard %s: %w", leagueSlug, err)
	}
	return normalizeLeaderboard(doc), nil
}
