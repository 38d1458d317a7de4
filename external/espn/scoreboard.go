package espn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsfeed/internal/domain/game"
)

var errMalformedEvent = errors.New("malformed event")

// competitorKind tags where a competitor's identity lives in the payload.
type competitorKind int

const (
	competitorTeam competitorKind = iota
	competitorAthlete
)

type competitorSide struct {
	name       string
	id         string
	score      string
	logo       *string
	linescores []string
}

// normalizeScoreboard flattens events into games. A malformed event is skipped
// and counted instead of failing the whole scoreboard.
func normalizeScoreboard(doc map[string]any) game.Scoreboard {
	events := getSlice(doc, "events")
	out := game.Scoreboard{Games: make([]game.Game, 0, len(events))}
	for _, rawEvent := range events {
		games, err := safeParseEvent(rawEvent)
		if err != nil {
			out.SkippedEvents++
			continue
		}
		out.Games = append(out.Games, games...)
	}
	return out
}

func safeParseEvent(rawEvent any) (games []game.Game, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			games = nil
			err = fmt.Errorf("%w: %v", errMalformedEvent, rec)
		}
	}()
	return parseEvent(rawEvent)
}

func parseEvent(rawEvent any) ([]game.Game, error) {
	event, ok := rawEvent.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: event is %T", errMalformedEvent, rawEvent)
	}
	eventID := getString(event, "id")
	if eventID == "" {
		return nil, fmt.Errorf("%w: event without id", errMalformedEvent)
	}

	competitions, grouped, err := eventCompetitions(event)
	if err != nil {
		return nil, err
	}
	if len(competitions) == 0 {
		return nil, fmt.Errorf("%w: event %s has no competitions", errMalformedEvent, eventID)
	}

	season := getMap(event, "season")
	out := make([]game.Game, 0, len(competitions))
	for _, competition := range competitions {
		g, err := parseCompetition(event, competition, grouped)
		if err != nil {
			return nil, err
		}
		g.SeasonYear = getInt(season, "year")
		g.SeasonType = getInt(season, "type")
		g.SeasonSlug = getString(season, "slug")
		out = append(out, g)
	}
	return out, nil
}

// eventCompetitions returns the competitions of an event, flattening
// tournament groupings when the event has them.
func eventCompetitions(event map[string]any) ([]map[string]any, bool, error) {
	if groupings, present := event["groupings"]; present {
		list, ok := groupings.([]any)
		if !ok {
			return nil, false, fmt.Errorf("%w: groupings is %T", errMalformedEvent, groupings)
		}
		var out []map[string]any
		for _, rawGrouping := range list {
			grouping, ok := rawGrouping.(map[string]any)
			if !ok {
				return nil, false, fmt.Errorf("%w: grouping is %T", errMalformedEvent, rawGrouping)
			}
			items, err := objectList(grouping, "competitions")
			if err != nil {
				return nil, false, err
			}
			out = append(out, items...)
		}
		return out, true, nil
	}

	items, err := objectList(event, "competitions")
	return items, false, err
}

func objectList(src map[string]any, key string) ([]map[string]any, error) {
	raw, present := src[key]
	if !present || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", errMalformedEvent, key, raw)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s item is %T", errMalformedEvent, key, item)
		}
		out = append(out, obj)
	}
	return out, nil
}

func parseCompetition(event, competition map[string]any, grouped bool) (game.Game, error) {
	competitors, err := objectList(competition, "competitors")
	if err != nil {
		return game.Game{}, err
	}

	status := getMap(competition, "status")
	if status == nil {
		status = getMap(event, "status")
	}
	statusType := getMap(status, "type")
	completed := getBool(statusType, "completed", false)

	g := game.Game{
		ID:         firstNonEmpty(competitionID(competition, grouped), getString(event, "id")),
		Date:       firstNonEmpty(getString(competition, "date"), getString(event, "date")),
		Name:       getString(event, "name"),
		ShortName:  getString(event, "shortName"),
		Status:     getString(statusType, "description"),
		Completed:  completed,
		Clock:      getString(status, "displayClock"),
		Period:     getInt(status, "period"),
		Venue:      getString(getMap(competition, "venue"), "fullName"),
		Broadcasts: broadcastNames(competition),
	}

	home, away, individual := assignSides(competitors, completed)
	if grouped || individual {
		g.TournamentName = getString(event, "name")
	}
	if grouped && (home.name != "" || away.name != "") {
		g.Name = home.name + " vs " + away.name
	}

	g.HomeTeam, g.HomeTeamID, g.HomeScore, g.HomeLogo, g.HomeLinescores = home.name, home.id, home.score, home.logo, home.linescores
	g.AwayTeam, g.AwayTeamID, g.AwayScore, g.AwayLogo, g.AwayLinescores = away.name, away.id, away.score, away.logo, away.linescores
	g.SetScores = setScores(home.linescores, away.linescores)
	return g, nil
}

func competitionID(competition map[string]any, grouped bool) string {
	if !grouped {
		return ""
	}
	return getString(competition, "id")
}

func broadcastNames(competition map[string]any) []string {
	out := make([]string, 0, 2)
	for _, block := range getMaps(competition, "broadcasts") {
		names := getStringSlice(block, "names")
		if len(names) > 0 && names[0] != "" {
			out = append(out, names[0])
		}
	}
	return out
}

// assignSides routes competitors by homeAway. Without homeAway the first
// competitor takes the home slot and the second the away slot.
func assignSides(competitors []map[string]any, completed bool) (home, away competitorSide, individual bool) {
	var unrouted []map[string]any
	for _, c := range competitors {
		switch strings.ToLower(getString(c, "homeAway")) {
		case "home":
			home = parseCompetitor(c, completed)
		case "away":
			away = parseCompetitor(c, completed)
		default:
			unrouted = append(unrouted, c)
		}
	}
	if len(unrouted) == 0 {
		return home, away, false
	}
	if home.id == "" && home.name == "" {
		home = parseCompetitor(unrouted[0], completed)
		unrouted = unrouted[1:]
	}
	if len(unrouted) > 0 && away.id == "" && away.name == "" {
		away = parseCompetitor(unrouted[0], completed)
	}
	return home, away, true
}

func parseCompetitor(c map[string]any, completed bool) competitorSide {
	kind, entity := competitorEntity(c)

	side := competitorSide{
		id:         firstNonEmpty(getString(entity, "id"), getString(c, "id")),
		linescores: linescoreValues(c),
	}
	switch kind {
	case competitorAthlete:
		side.name = firstNonEmpty(getString(entity, "displayName"), getString(entity, "fullName"), getString(entity, "shortName"))
		side.logo = ptrString(firstNonEmpty(getString(getMap(entity, "headshot"), "href"), getString(getMap(entity, "flag"), "href")))
	default:
		side.name = firstNonEmpty(getString(entity, "displayName"), getString(entity, "name"))
		side.logo = ptrString(firstNonEmpty(getString(entity, "logo"), derefString(firstLogo(entity))))
	}
	side.score = competitorScore(c, completed)
	return side
}

func competitorEntity(c map[string]any) (competitorKind, map[string]any) {
	if t := getMap(c, "team"); t != nil {
		return competitorTeam, t
	}
	if a := getMap(c, "athlete"); a != nil {
		return competitorAthlete, a
	}
	if roster := getMap(c, "roster"); roster != nil {
		return competitorAthlete, roster
	}
	return competitorTeam, nil
}

// competitorScore prefers a direct score, then the number of won sets, then the
// last linescore of a completed match.
func competitorScore(c map[string]any, completed bool) string {
	if score := scoreValue(c["score"]); score != "" {
		return score
	}

	linescores := getMaps(c, "linescores")
	flagged := false
	won := 0
	for _, ls := range linescores {
		if _, ok := ls["winner"]; ok {
			flagged = true
			if getBool(ls, "winner", false) {
				won++
			}
		}
	}
	if flagged {
		return strconv.Itoa(won)
	}
	if completed && len(linescores) > 0 {
		return linescoreValue(linescores[len(linescores)-1])
	}
	return ""
}

func scoreValue(raw any) string {
	switch typed := raw.(type) {
	case map[string]any:
		return firstNonEmpty(getString(typed, "displayValue"), getString(typed, "value"))
	default:
		return asString(typed)
	}
}

func linescoreValues(c map[string]any) []string {
	linescores := getMaps(c, "linescores")
	if len(linescores) == 0 {
		return nil
	}
	out := make([]string, 0, len(linescores))
	for _, ls := range linescores {
		out = append(out, linescoreValue(ls))
	}
	return out
}

func linescoreValue(ls map[string]any) string {
	if v, ok := getFloat(ls, "value"); ok {
		return formatNumber(v)
	}
	return getString(ls, "displayValue")
}

func setScores(home, away []string) string {
	if len(home) == 0 || len(home) != len(away) {
		return ""
	}
	parts := make([]string, len(home))
	for i := range home {
		parts[i] = home[i] + "-" + away[i]
	}
	return strings.Join(parts, ", ")
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
