package athlete

import "sort"

// Athlete is a player or individual competitor.
type Athlete struct {
	ID                   string  `json:"id"`
	TeamID               *string `json:"teamId"`
	Slug                 string  `json:"slug"`
	FirstName            string  `json:"firstName"`
	LastName             string  `json:"lastName"`
	FullName             string  `json:"fullName"`
	DisplayName          string  `json:"displayName"`
	ShortName            string  `json:"shortName"`
	Weight               float64 `json:"weight,omitempty"`
	DisplayWeight        string  `json:"displayWeight,omitempty"`
	Height               float64 `json:"height,omitempty"`
	DisplayHeight        string  `json:"displayHeight,omitempty"`
	Age                  int     `json:"age,omitempty"`
	DateOfBirth          string  `json:"dateOfBirth,omitempty"`
	Jersey               string  `json:"jersey,omitempty"`
	Position             string  `json:"position,omitempty"`
	PositionAbbreviation string  `json:"positionAbbreviation,omitempty"`
	Active               bool    `json:"active"`
	Headshot             *string `json:"headshot"`
}

// SplitStats maps a split name such as "Home" or "Wins/Ties" to label -> value.
type SplitStats map[string]map[string]string

// Names returns the split names sorted alphabetically.
func (s SplitStats) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
