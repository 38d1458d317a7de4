package boxscore

import (
	"bytes"
	"sort"

	sonic "github.com/bytedance/sonic"
)

// Team holds one side's aggregate statistics, label -> display value.
type Team struct {
	GameID       string            `json:"gameId"`
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Abbreviation string            `json:"abbreviation"`
	Stats        map[string]string `json:"stats"`
}

// Player holds one athlete's statistics for a game.
type Player struct {
	GameID       string      `json:"gameId"`
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Abbreviation string      `json:"abbreviation"`
	TeamID       string      `json:"teamId"`
	Stats        PlayerStats `json:"stats"`
}

// PlayerStats keeps unnamed-category stats flat and named categories nested.
// Both encode into one JSON object.
type PlayerStats struct {
	Flat       map[string]string
	Categories map[string]map[string]string
}

func (p PlayerStats) Empty() bool {
	return len(p.Flat) == 0 && len(p.Categories) == 0
}

func (p PlayerStats) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(p.Flat)+len(p.Categories))
	for k := range p.Flat {
		keys = append(keys, k)
	}
	for k := range p.Categories {
		if _, dup := p.Flat[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		rawKey, err := sonic.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(rawKey)
		buf.WriteByte(':')

		var value any = p.Flat[k]
		if nested, ok := p.Categories[k]; ok {
			value = nested
		}
		rawValue, err := sonic.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(rawValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Boxscore is the flattened boxscore of one game.
type Boxscore struct {
	Teams   []Team   `json:"teams"`
	Players []Player `json:"players"`
}
