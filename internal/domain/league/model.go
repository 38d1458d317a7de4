package league

import "fmt"

// Info describes a league inside a sport.
type Info struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DisplayName  string  `json:"displayName"`
	Abbreviation string  `json:"abbreviation"`
	ShortName    string  `json:"shortName"`
	Slug         string  `json:"slug"`
	Logo         *string `json:"logo"`
	SeasonYear   int     `json:"seasonYear,omitempty"`
}

func (l Info) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	return nil
}
