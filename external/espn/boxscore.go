package espn

import (
	"github.com/riskibarqy/sportsfeed/internal/domain/boxscore"
)

// normalizeBoxscore flattens the "teams" and "players" blocks of a summary
// boxscore. Named stat categories (passing, rushing) nest under the category
// name; an unnamed category merges straight into the player's stats.
func normalizeBoxscore(gameID string, raw map[string]any) boxscore.Boxscore {
	out := boxscore.Boxscore{
		Teams:   make([]boxscore.Team, 0, 2),
		Players: make([]boxscore.Player, 0, 64),
	}

	for _, block := range getMaps(raw, "teams") {
		t := getMap(block, "team")
		stats := make(map[string]string)
		for _, stat := range getMaps(block, "statistics") {
			label := firstNonEmpty(getString(stat, "label"), getString(stat, "name"))
			if label == "" {
				continue
			}
			stats[label] = getString(stat, "displayValue")
		}
		out.Teams = append(out.Teams, boxscore.Team{
			GameID:       gameID,
			ID:           getString(t, "id"),
			Name:         getString(t, "displayName"),
			Abbreviation: getString(t, "abbreviation"),
			Stats:        stats,
		})
	}

	for _, block := range getMaps(raw, "players") {
		teamID := getString(getMap(block, "team"), "id")
		out.Players = append(out.Players, teamPlayers(gameID, teamID, block)...)
	}

	return out
}

// teamPlayers accumulates one team's players by athlete id in first-seen order.
func teamPlayers(gameID, teamID string, block map[string]any) []boxscore.Player {
	index := make(map[string]int)
	players := make([]boxscore.Player, 0, 32)

	for _, category := range getMaps(block, "statistics") {
		categoryName := getString(category, "name")
		labels := getStringSlice(category, "labels")

		for _, row := range getMaps(category, "athletes") {
			a := getMap(row, "athlete")
			athleteID := getString(a, "id")
			if athleteID == "" {
				continue
			}

			pos, seen := index[athleteID]
			if !seen {
				pos = len(players)
				index[athleteID] = pos
				players = append(players, boxscore.Player{
					GameID:       gameID,
					ID:           athleteID,
					Name:         firstNonEmpty(getString(a, "displayName"), getString(a, "shortName")),
					Abbreviation: getString(getMap(a, "position"), "abbreviation"),
					TeamID:       teamID,
				})
			}

			zipped := zipStats(labels, getStringSlice(row, "stats"))
			if len(zipped) == 0 {
				continue
			}
			stats := &players[pos].Stats
			if categoryName == "" {
				if stats.Flat == nil {
					stats.Flat = make(map[string]string, len(zipped))
				}
				for k, v := range zipped {
					stats.Flat[k] = v
				}
				continue
			}
			if stats.Categories == nil {
				stats.Categories = make(map[string]map[string]string)
			}
			if existing, ok := stats.Categories[categoryName]; ok {
				for k, v := range zipped {
					existing[k] = v
				}
				continue
			}
			stats.Categories[categoryName] = zipped
		}
	}

	return players
}

// zipStats pairs labels with positional values up to the shorter list.
func zipStats(labels, values []string) map[string]string {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return nil
	}
	out := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if labels[i] == "" {
			continue
		}
		out[labels[i]] = values[i]
	}
	return out
}
