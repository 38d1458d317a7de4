package espn

import (
	"github.com/riskibarqy/sportsfeed/internal/domain/game"
	"github.com/riskibarqy/sportsfeed/internal/domain/leaderboard"
	"github.com/riskibarqy/sportsfeed/internal/domain/news"
)

func normalizeSummary(eventID string, doc map[string]any) game.Summary {
	out := game.Summary{
		GameInfo:     getMap(doc, "gameInfo"),
		Boxscore:     normalizeBoxscore(eventID, getMap(doc, "boxscore")),
		Plays:        normalizePlays(getMaps(doc, "plays")),
		ScoringPlays: getSlice(doc, "scoringPlays"),
		Videos:       getSlice(doc, "videos"),
		Article:      getMap(doc, "article"),
	}

	if picks := getMaps(doc, "pickcenter"); len(picks) > 0 {
		primary := picks[0]
		overUnder, _ := getFloat(primary, "overUnder")
		spread, _ := getFloat(primary, "spread")
		out.Odds = &game.Odds{
			Provider:  firstNonEmpty(getString(getMap(primary, "provider"), "name"), unknownProvider),
			Details:   getString(primary, "details"),
			OverUnder: overUnder,
			Spread:    spread,
		}
	}
	return out
}

func normalizePlays(items []map[string]any) []game.Play {
	out := make([]game.Play, 0, len(items))
	for _, p := range items {
		out = append(out, game.Play{
			ID:          getString(p, "id"),
			Text:        getString(p, "text"),
			Clock:       getString(getMap(p, "clock"), "displayValue"),
			Period:      getInt(getMap(p, "period"), "number"),
			ScoringPlay: getBool(p, "scoringPlay", false),
			ScoreValue:  getInt(p, "scoreValue"),
			HomeScore:   getInt(p, "homeScore"),
			AwayScore:   getInt(p, "awayScore"),
		})
	}
	return out
}

func normalizeNews(doc map[string]any) []news.Article {
	articles := getMaps(doc, "articles")
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		var image *string
		if images := getMaps(a, "images"); len(images) > 0 {
			image = ptrString(getString(images[0], "url"))
		}
		web := getPath(a, "links", "web")
		out = append(out, news.Article{
			ID:           getString(a, "id"),
			Headline:     getString(a, "headline"),
			Description:  getString(a, "description"),
			Published:    getString(a, "published"),
			LastModified: getString(a, "lastModified"),
			Author:       getString(a, "byline"),
			Premium:      getBool(a, "premium", false),
			Image:        image,
			URL:          ptrString(firstNonEmpty(getString(web, "href"), getString(getMap(web, "short"), "href"))),
		})
	}
	return out
}

// normalizeLeaderboard reads the first golf tournament of a scoreboard.
func normalizeLeaderboard(doc map[string]any) []leaderboard.Entry {
	events := getMaps(doc, "events")
	if len(events) == 0 {
		return []leaderboard.Entry{}
	}
	event := events[0]
	competitions := getMaps(event, "competitions")
	if len(competitions) == 0 {
		return []leaderboard.Entry{}
	}

	tournament := getString(event, "name")
	status := firstNonEmpty(
		getString(getPath(competitions[0], "status", "type"), "description"),
		getString(getPath(event, "status", "type"), "description"),
	)

	competitors := getMaps(competitions[0], "competitors")
	out := make([]leaderboard.Entry, 0, len(competitors))
	for i, c := range competitors {
		rank := getInt(c, "order")
		if rank == 0 {
			rank = i + 1
		}
		a := getMap(c, "athlete")

		rounds := make([]string, 0, 4)
		total := 0.0
		for _, ls := range getMaps(c, "linescores") {
			v, ok := getFloat(ls, "value")
			if !ok {
				continue
			}
			rounds = append(rounds, formatNumber(v))
			total += v
		}
		totalStrokes := ""
		if len(rounds) > 0 {
			totalStrokes = formatNumber(total)
		}

		out = append(out, leaderboard.Entry{
			Rank:           rank,
			ID:             firstNonEmpty(getString(a, "id"), getString(c, "id")),
			Name:           firstNonEmpty(getString(a, "displayName"), getString(a, "fullName")),
			TournamentName: tournament,
			Status:         status,
			ScoreToPar:     scoreValue(c["score"]),
			TotalStrokes:   totalStrokes,
			Rounds:         rounds,
		})
	}
	return out
}
