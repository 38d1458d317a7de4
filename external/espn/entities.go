package espn

import (
	"strings"

	"github.com/riskibarqy/sportsfeed/internal/domain/athlete"
	"github.com/riskibarqy/sportsfeed/internal/domain/league"
	"github.com/riskibarqy/sportsfeed/internal/domain/team"
)

func normalizeTeam(raw map[string]any) team.Team {
	return team.Team{
		ID:               getString(raw, "id"),
		Slug:             getString(raw, "slug"),
		Location:         getString(raw, "location"),
		Name:             getString(raw, "name"),
		Nickname:         getString(raw, "nickname"),
		Abbreviation:     getString(raw, "abbreviation"),
		DisplayName:      getString(raw, "displayName"),
		ShortDisplayName: getString(raw, "shortDisplayName"),
		Color:            getString(raw, "color"),
		AlternateColor:   getString(raw, "alternateColor"),
		IsActive:         getBool(raw, "isActive", true),
		Logo:             firstLogo(raw),
	}
}

func normalizeTeamDetail(raw map[string]any) team.Detail {
	detail := team.Detail{
		Team:            normalizeTeam(raw),
		StandingSummary: getString(raw, "standingSummary"),
	}
	for _, item := range getMaps(getMap(raw, "record"), "items") {
		if summary := getString(item, "summary"); summary != "" {
			detail.Record = summary
			break
		}
	}
	return detail
}

func normalizeAthlete(raw map[string]any) athlete.Athlete {
	position := getMap(raw, "position")
	weight, _ := getFloat(raw, "weight")
	height, _ := getFloat(raw, "height")

	var headshot *string
	if hs := getMap(raw, "headshot"); hs != nil {
		headshot = ptrString(getString(hs, "href"))
	}

	return athlete.Athlete{
		ID:                   getString(raw, "id"),
		TeamID:               extractTeamID(getString(getMap(raw, "team"), "$ref")),
		Slug:                 getString(raw, "slug"),
		FirstName:            getString(raw, "firstName"),
		LastName:             getString(raw, "lastName"),
		FullName:             getString(raw, "fullName"),
		DisplayName:          getString(raw, "displayName"),
		ShortName:            getString(raw, "shortName"),
		Weight:               weight,
		DisplayWeight:        getString(raw, "displayWeight"),
		Height:               height,
		DisplayHeight:        getString(raw, "displayHeight"),
		Age:                  getInt(raw, "age"),
		DateOfBirth:          getString(raw, "dateOfBirth"),
		Jersey:               getString(raw, "jersey"),
		Position:             firstNonEmpty(getString(position, "displayName"), getString(position, "name")),
		PositionAbbreviation: getString(position, "abbreviation"),
		Active:               getBool(raw, "active", false),
		Headshot:             headshot,
	}
}

func normalizeLeague(raw map[string]any) league.Info {
	return league.Info{
		ID:           getString(raw, "id"),
		Name:         getString(raw, "name"),
		DisplayName:  getString(raw, "displayName"),
		Abbreviation: getString(raw, "abbreviation"),
		ShortName:    getString(raw, "shortName"),
		Slug:         getString(raw, "slug"),
		Logo:         firstLogo(raw),
		SeasonYear:   getInt(getMap(raw, "season"), "year"),
	}
}

func firstLogo(raw map[string]any) *string {
	logos := getMaps(raw, "logos")
	if len(logos) == 0 {
		return nil
	}
	return ptrString(getString(logos[0], "href"))
}

// extractTeamID takes the path segment after "/teams/" in a team $ref,
// e.g. ".../seasons/2024/teams/12?lang=en" -> "12".
func extractTeamID(ref string) *string {
	_, rest, found := strings.Cut(ref, "/teams/")
	if !found {
		return nil
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return ptrString(strings.TrimSpace(rest))
}
