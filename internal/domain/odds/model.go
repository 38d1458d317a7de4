package odds

// Entry is one provider's line for an event.
type Entry struct {
	Provider      string   `json:"provider"`
	Details       string   `json:"details"`
	OverUnder     *float64 `json:"overUnder"`
	Spread        *float64 `json:"spread"`
	AwayMoneyLine *float64 `json:"awayMoneyLine"`
	HomeMoneyLine *float64 `json:"homeMoneyLine"`
}
