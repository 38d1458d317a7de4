package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsfeed/internal/domain/athlete"
	"github.com/riskibarqy/sportsfeed/internal/domain/game"
	"github.com/riskibarqy/sportsfeed/internal/domain/leaderboard"
	"github.com/riskibarqy/sportsfeed/internal/domain/league"
	"github.com/riskibarqy/sportsfeed/internal/domain/news"
	"github.com/riskibarqy/sportsfeed/internal/domain/odds"
	"github.com/riskibarqy/sportsfeed/internal/domain/sport"
	"github.com/riskibarqy/sportsfeed/internal/domain/standing"
	"github.com/riskibarqy/sportsfeed/internal/domain/team"
	"github.com/riskibarqy/sportsfeed/internal/platform/logging"
)

const (
	defaultNewsLimit = 50
	maxNewsLimit     = 100
	golfSport        = "golf"
)

// ScoreboardQuery narrows a scoreboard request. Empty fields are not sent.
type ScoreboardQuery struct {
	Date       string
	Group      string
	SeasonType string
}

// LeagueRef names a league by catalog slug or snake_case name. Sport is
// optional and overrides the catalog lookup.
type LeagueRef struct {
	League string
	Sport  string
}

// SportsDataProvider fetches and normalizes upstream sports data. Callers pass
// a resolved sport and league slug.
type SportsDataProvider interface {
	ListLeagues(ctx context.Context, sport string) ([]league.Info, error)
	GetLeague(ctx context.Context, sport, league string) (league.Info, error)
	ListTeams(ctx context.Context, sport, league string) ([]team.Team, error)
	GetTeam(ctx context.Context, sport, league, teamID string) (team.Detail, error)
	ListAthletes(ctx context.Context, sport, league string, active *bool) ([]athlete.Athlete, error)
	GetAthlete(ctx context.Context, sport, league, athleteID string) (athlete.Athlete, error)
	ListRoster(ctx context.Context, sport, league string, season int, teamID string) ([]athlete.Athlete, error)
	GetScoreboard(ctx context.Context, sport, league string, q ScoreboardQuery) (game.Scoreboard, error)
	GetTeamSchedule(ctx context.Context, sport, league, teamID, season string) (game.Scoreboard, error)
	GetGameSummary(ctx context.Context, sport, league, eventID string) (game.Summary, error)
	ListLivePlays(ctx context.Context, league, eventID string) ([]game.Play, error)
	GetStandings(ctx context.Context, sport, league string) ([]standing.Entry, error)
	GetAthleteSplits(ctx context.Context, sport, league, athleteID string) (athlete.SplitStats, error)
	ListOdds(ctx context.Context, sport, league, eventID string) ([]odds.Entry, error)
	ListNews(ctx context.Context, sport, league, teamID string, limit int) ([]news.Article, error)
	GetLeaderboard(ctx context.Context, league, date string) ([]leaderboard.Entry, error)
}

type SportsDataService struct {
	provider SportsDataProvider
	logger   *logging.Logger
}

func NewSportsDataService(provider SportsDataProvider, logger *logging.Logger) *SportsDataService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SportsDataService{
		provider: provider,
		logger:   logger,
	}
}

type resolvedLeague struct {
	sport  string
	league string
}

func (s *SportsDataService) resolve(ref LeagueRef) (resolvedLeague, error) {
	name := strings.TrimSpace(ref.League)
	if name == "" {
		return resolvedLeague{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}

	slug, ok := sport.LeagueFor(name)
	if !ok {
		slug = strings.ToLower(name)
	}

	sportSlug, err := sport.Resolve(slug, ref.Sport)
	if err != nil {
		if errors.Is(err, sport.ErrUnknownLeague) {
			return resolvedLeague{}, fmt.Errorf("%w: league=%s", ErrUnresolvableSport, name)
		}
		return resolvedLeague{}, err
	}
	return resolvedLeague{sport: sportSlug, league: slug}, nil
}

func requireID(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return value, nil
}

func (s *SportsDataService) ListSports(ctx context.Context) []sport.Info {
	_, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ListSports")
	defer span.End()

	return sport.Sports()
}

func (s *SportsDataService) ListLeagues(ctx context.Context, sportSlug string) ([]league.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ListLeagues")
	defer span.End()

	sportSlug, err := requireID("sport", sportSlug)
	if err != nil {
		return nil, err
	}

	leagues, err := s.provider.ListLeagues(ctx, strings.ToLower(sportSlug))
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *SportsDataService) GetLeague(ctx context.Context, ref LeagueRef) (league.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.GetLeague")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return league.Info{}, err
	}

	info, err := s.provider.GetLeague(ctx, target.sport, target.league)
	if err != nil {
		return league.Info{}, fmt.Errorf("get league: %w", err)
	}
	return info, nil
}

func (s *SportsDataService) ResolveTeams(ctx context.Context, ref LeagueRef) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveTeams")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	teams, err := s.provider.ListTeams(ctx, target.sport, target.league)
	if err != nil {
		return nil, fmt.Errorf("resolve teams: %w", err)
	}
	return teams, nil
}

func (s *SportsDataService) GetTeam(ctx context.Context, ref LeagueRef, teamID string) (team.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.GetTeam")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return team.Detail{}, err
	}
	teamID, err = requireID("team id", teamID)
	if err != nil {
		return team.Detail{}, err
	}

	detail, err := s.provider.GetTeam(ctx, target.sport, target.league, teamID)
	if err != nil {
		return team.Detail{}, fmt.Errorf("get team: %w", err)
	}
	return detail, nil
}

func (s *SportsDataService) ResolveAthletes(ctx context.Context, ref LeagueRef, active *bool) ([]athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveAthletes")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	athletes, err := s.provider.ListAthletes(ctx, target.sport, target.league, active)
	if err != nil {
		return nil, fmt.Errorf("resolve athletes: %w", err)
	}
	return athletes, nil
}

func (s *SportsDataService) GetAthlete(ctx context.Context, ref LeagueRef, athleteID string) (athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.GetAthlete")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return athlete.Athlete{}, err
	}
	athleteID, err = requireID("athlete id", athleteID)
	if err != nil {
		return athlete.Athlete{}, err
	}

	item, err := s.provider.GetAthlete(ctx, target.sport, target.league, athleteID)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("get athlete: %w", err)
	}
	return item, nil
}

// ResolveRoster lists a team's athletes for the league's current season.
func (s *SportsDataService) ResolveRoster(ctx context.Context, ref LeagueRef, teamID string) ([]athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveRoster")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	teamID, err = requireID("team id", teamID)
	if err != nil {
		return nil, err
	}

	info, err := s.provider.GetLeague(ctx, target.sport, target.league)
	if err != nil {
		return nil, fmt.Errorf("get league season: %w", err)
	}
	if info.SeasonYear <= 0 {
		return nil, fmt.Errorf("%w: current season unknown for league=%s", ErrNotFound, target.league)
	}

	roster, err := s.provider.ListRoster(ctx, target.sport, target.league, info.SeasonYear, teamID)
	if err != nil {
		return nil, fmt.Errorf("resolve roster: %w", err)
	}
	return roster, nil
}

func (s *SportsDataService) ResolveScoreboard(ctx context.Context, ref LeagueRef, q ScoreboardQuery) (game.Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveScoreboard")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return game.Scoreboard{}, err
	}

	q.Date = strings.TrimSpace(q.Date)
	q.Group = strings.TrimSpace(q.Group)
	q.SeasonType = strings.TrimSpace(q.SeasonType)

	board, err := s.provider.GetScoreboard(ctx, target.sport, target.league, q)
	if err != nil {
		return game.Scoreboard{}, fmt.Errorf("resolve scoreboard: %w", err)
	}
	if board.SkippedEvents > 0 {
		s.logger.DebugContext(ctx, "scoreboard returned with skipped events",
			"league", target.league,
			"games", len(board.Games),
			"skipped", board.SkippedEvents,
		)
	}
	return board, nil
}

func (s *SportsDataService) ResolveTeamSchedule(ctx context.Context, ref LeagueRef, teamID, season string) (game.Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveTeamSchedule")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return game.Scoreboard{}, err
	}
	teamID, err = requireID("team id", teamID)
	if err != nil {
		return game.Scoreboard{}, err
	}

	schedule, err := s.provider.GetTeamSchedule(ctx, target.sport, target.league, teamID, strings.TrimSpace(season))
	if err != nil {
		return game.Scoreboard{}, fmt.Errorf("resolve team schedule: %w", err)
	}
	return schedule, nil
}

func (s *SportsDataService) ResolveGameSummary(ctx context.Context, ref LeagueRef, eventID string) (game.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveGameSummary")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return game.Summary{}, err
	}
	eventID, err = requireID("event id", eventID)
	if err != nil {
		return game.Summary{}, err
	}

	summary, err := s.provider.GetGameSummary(ctx, target.sport, target.league, eventID)
	if err != nil {
		return game.Summary{}, fmt.Errorf("resolve game summary: %w", err)
	}
	return summary, nil
}

func (s *SportsDataService) ResolveLivePlays(ctx context.Context, ref LeagueRef, eventID string) ([]game.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveLivePlays")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	eventID, err = requireID("event id", eventID)
	if err != nil {
		return nil, err
	}

	plays, err := s.provider.ListLivePlays(ctx, target.league, eventID)
	if err != nil {
		return nil, fmt.Errorf("resolve live plays: %w", err)
	}
	return plays, nil
}

func (s *SportsDataService) ResolveStandings(ctx context.Context, ref LeagueRef) ([]standing.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveStandings")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	entries, err := s.provider.GetStandings(ctx, target.sport, target.league)
	if err != nil {
		return nil, fmt.Errorf("resolve standings: %w", err)
	}
	return entries, nil
}

func (s *SportsDataService) ResolveAthleteSplits(ctx context.Context, ref LeagueRef, athleteID string) (athlete.SplitStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveAthleteSplits")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	athleteID, err = requireID("athlete id", athleteID)
	if err != nil {
		return nil, err
	}

	splits, err := s.provider.GetAthleteSplits(ctx, target.sport, target.league, athleteID)
	if err != nil {
		return nil, fmt.Errorf("resolve athlete splits: %w", err)
	}
	return splits, nil
}

func (s *SportsDataService) ResolveOdds(ctx context.Context, ref LeagueRef, eventID string) ([]odds.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveOdds")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	eventID, err = requireID("event id", eventID)
	if err != nil {
		return nil, err
	}

	entries, err := s.provider.ListOdds(ctx, target.sport, target.league, eventID)
	if err != nil {
		return nil, fmt.Errorf("resolve odds: %w", err)
	}
	return entries, nil
}

// ResolveNews returns league headlines, optionally narrowed to one team.
// A zero limit means the default page size.
func (s *SportsDataService) ResolveNews(ctx context.Context, ref LeagueRef, teamID string, limit int) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveNews")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	if limit < 0 || limit > maxNewsLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxNewsLimit)
	}
	if limit == 0 {
		limit = defaultNewsLimit
	}

	articles, err := s.provider.ListNews(ctx, target.sport, target.league, strings.TrimSpace(teamID), limit)
	if err != nil {
		return nil, fmt.Errorf("resolve news: %w", err)
	}
	return articles, nil
}

func (s *SportsDataService) ResolveLeaderboard(ctx context.Context, ref LeagueRef, date string) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportsDataService.ResolveLeaderboard")
	defer span.End()

	target, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	if target.sport != golfSport {
		return nil, fmt.Errorf("%w: leaderboard is only available for golf, league=%s sport=%s", ErrInvalidInput, target.league, target.sport)
	}

	entries, err := s.provider.GetLeaderboard(ctx, target.league, strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("resolve leaderboard: %w", err)
	}
	return entries, nil
}
