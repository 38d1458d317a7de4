package usecasemock

import (
	"context"

	"github.com/riskibarqy/sportsfeed/internal/domain/athlete"
	"github.com/riskibarqy/sportsfeed/internal/domain/game"
	"github.com/riskibarqy/sportsfeed/internal/domain/leaderboard"
	"github.com/riskibarqy/sportsfeed/internal/domain/league"
	"github.com/riskibarqy/sportsfeed/internal/domain/news"
	"github.com/riskibarqy/sportsfeed/internal/domain/odds"
	"github.com/riskibarqy/sportsfeed/internal/domain/standing"
	"github.com/riskibarqy/sportsfeed/internal/domain/team"
	"github.com/riskibarqy/sportsfeed/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// SportsDataProvider is a testify mock of usecase.SportsDataProvider.
type SportsDataProvider struct {
	mock.Mock
}

var _ usecase.SportsDataProvider = (*SportsDataProvider)(nil)

// NewSportsDataProvider registers AssertExpectations on test cleanup.
func NewSportsDataProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *SportsDataProvider {
	m := &SportsDataProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func value[T any](ret mock.Arguments, index int) T {
	var zero T
	if v := ret.Get(index); v != nil {
		return v.(T)
	}
	return zero
}

func (m *SportsDataProvider) ListLeagues(ctx context.Context, sport string) ([]league.Info, error) {
	ret := m.Called(ctx, sport)
	return value[[]league.Info](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetLeague(ctx context.Context, sport, leagueSlug string) (league.Info, error) {
	ret := m.Called(ctx, sport, leagueSlug)
	return value[league.Info](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListTeams(ctx context.Context, sport, leagueSlug string) ([]team.Team, error) {
	ret := m.Called(ctx, sport, leagueSlug)
	return value[[]team.Team](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetTeam(ctx context.Context, sport, leagueSlug, teamID string) (team.Detail, error) {
	ret := m.Called(ctx, sport, leagueSlug, teamID)
	return value[team.Detail](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListAthletes(ctx context.Context, sport, leagueSlug string, active *bool) ([]athlete.Athlete, error) {
	ret := m.Called(ctx, sport, leagueSlug, active)
	return value[[]athlete.Athlete](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetAthlete(ctx context.Context, sport, leagueSlug, athleteID string) (athlete.Athlete, error) {
	ret := m.Called(ctx, sport, leagueSlug, athleteID)
	return value[athlete.Athlete](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListRoster(ctx context.Context, sport, leagueSlug string, season int, teamID string) ([]athlete.Athlete, error) {
	ret := m.Called(ctx, sport, leagueSlug, season, teamID)
	return value[[]athlete.Athlete](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetScoreboard(ctx context.Context, sport, leagueSlug string, q usecase.ScoreboardQuery) (game.Scoreboard, error) {
	ret := m.Called(ctx, sport, leagueSlug, q)
	return value[game.Scoreboard](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetTeamSchedule(ctx context.Context, sport, leagueSlug, teamID, season string) (game.Scoreboard, error) {
	ret := m.Called(ctx, sport, leagueSlug, teamID, season)
	return value[game.Scoreboard](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetGameSummary(ctx context.Context, sport, leagueSlug, eventID string) (game.Summary, error) {
	ret := m.Called(ctx, sport, leagueSlug, eventID)
	return value[game.Summary](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListLivePlays(ctx context.Context, leagueSlug, eventID string) ([]game.Play, error) {
	ret := m.Called(ctx, leagueSlug, eventID)
	return value[[]game.Play](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetStandings(ctx context.Context, sport, leagueSlug string) ([]standing.Entry, error) {
	ret := m.Called(ctx, sport, leagueSlug)
	return value[[]standing.Entry](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetAthleteSplits(ctx context.Context, sport, leagueSlug, athleteID string) (athlete.SplitStats, error) {
	ret := m.Called(ctx, sport, leagueSlug, athleteID)
	return value[athlete.SplitStats](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListOdds(ctx context.Context, sport, leagueSlug, eventID string) ([]odds.Entry, error) {
	ret := m.Called(ctx, sport, leagueSlug, eventID)
	return value[[]odds.Entry](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) ListNews(ctx context.Context, sport, leagueSlug, teamID string, limit int) ([]news.Article, error) {
	ret := m.Called(ctx, sport, leagueSlug, teamID, limit)
	return value[[]news.Article](ret, 0), ret.Error(1)
}

func (m *SportsDataProvider) GetLeaderboard(ctx context.Context, leagueSlug, date string) ([]leaderboard.Entry, error) {
	ret := m.Called(ctx, leagueSlug, date)
	return value[[]leaderboard.Entry](ret, 0), ret.Error(1)
}
