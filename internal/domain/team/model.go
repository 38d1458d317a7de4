package team

import "fmt"

// Team is a club or franchise as listed by the provider's reference catalog.
type Team struct {
	ID               string  `json:"id"`
	Slug             string  `json:"slug"`
	Location         string  `json:"location"`
	Name             string  `json:"name"`
	Nickname         string  `json:"nickname,omitempty"`
	Abbreviation     string  `json:"abbreviation"`
	DisplayName      string  `json:"displayName"`
	ShortDisplayName string  `json:"shortDisplayName"`
	Color            string  `json:"color"`
	AlternateColor   string  `json:"alternateColor"`
	IsActive         bool    `json:"isActive"`
	Logo             *string `json:"logo"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	return nil
}

// Detail is a single team lookup, carrying the provider's one-line standing summary.
type Detail struct {
	Team
	StandingSummary string `json:"standingSummary,omitempty"`
	Record          string `json:"record,omitempty"`
}
