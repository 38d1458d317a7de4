package sport

import (
	"errors"
	"sort"
	"strings"
)

var ErrUnknownLeague = errors.New("league is not in the sport catalog")

// Info is a top-level sport.
type Info struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

var leagueToSport = map[string]string{
	// football
	"nfl":              "football",
	"college-football": "football",
	"cfl":              "football",
	"ufl":              "football",
	"xfl":              "football",

	// basketball
	"nba":                        "basketball",
	"wnba":                       "basketball",
	"nba-development":            "basketball",
	"nba-summer-las-vegas":       "basketball",
	"mens-college-basketball":    "basketball",
	"womens-college-basketball":  "basketball",
	"nbl":                        "basketball",
	"fiba":                       "basketball",
	"mens-olympics-basketball":   "basketball",
	"womens-olympics-basketball": "basketball",

	// baseball
	"mlb":                        "baseball",
	"college-baseball":           "baseball",
	"world-baseball-classic":     "baseball",
	"caribbean-series":           "baseball",
	"dominican-winter-league":    "baseball",
	"venezuelan-winter-league":   "baseball",
	"puerto-rican-winter-league": "baseball",
	"olympics-baseball":          "baseball",

	// hockey
	"nhl":                        "hockey",
	"mens-college-hockey":        "hockey",
	"womens-college-hockey":      "hockey",
	"olympics-mens-ice-hockey":   "hockey",
	"olympics-womens-ice-hockey": "hockey",

	// soccer
	"eng.1":                 "soccer",
	"eng.2":                 "soccer",
	"eng.3":                 "soccer",
	"eng.fa":                "soccer",
	"eng.league_cup":        "soccer",
	"esp.1":                 "soccer",
	"esp.2":                 "soccer",
	"esp.copa_del_rey":      "soccer",
	"ger.1":                 "soccer",
	"ger.2":                 "soccer",
	"ger.dfb_pokal":         "soccer",
	"ita.1":                 "soccer",
	"ita.2":                 "soccer",
	"ita.coppa_italia":      "soccer",
	"fra.1":                 "soccer",
	"fra.2":                 "soccer",
	"ned.1":                 "soccer",
	"ned.2":                 "soccer",
	"por.1":                 "soccer",
	"sco.1":                 "soccer",
	"tur.1":                 "soccer",
	"bra.1":                 "soccer",
	"arg.1":                 "soccer",
	"mex.1":                 "soccer",
	"usa.1":                 "soccer",
	"usa.nwsl":              "soccer",
	"usa.usl.1":             "soccer",
	"jpn.1":                 "soccer",
	"aus.1":                 "soccer",
	"idn.1":                 "soccer",
	"uefa.champions":        "soccer",
	"uefa.europa":           "soccer",
	"uefa.europa.conf":      "soccer",
	"uefa.nations":          "soccer",
	"uefa.euro":             "soccer",
	"uefa.super_cup":        "soccer",
	"conmebol.libertadores": "soccer",
	"concacaf.champions":    "soccer",
	"fifa.world":            "soccer",
	"fifa.wwc":              "soccer",
	"fifa.cwc":              "soccer",

	// golf
	"pga":            "golf",
	"lpga":           "golf",
	"eur":            "golf",
	"liv":            "golf",
	"champions-tour": "golf",
	"ntw":            "golf",
	"tgl":            "golf",

	// racing
	"f1":               "racing",
	"irl":              "racing",
	"nascar-premier":   "racing",
	"nascar-secondary": "racing",
	"nascar-truck":     "racing",

	// tennis
	"atp": "tennis",
	"wta": "tennis",

	// mma
	"ufc":      "mma",
	"pfl":      "mma",
	"bellator": "mma",

	// lacrosse
	"pll":                     "lacrosse",
	"nll":                     "lacrosse",
	"mens-college-lacrosse":   "lacrosse",
	"womens-college-lacrosse": "lacrosse",

	// other team sports
	"afl":                         "australian-football",
	"womens-college-volleyball":   "volleyball",
	"mens-college-volleyball":     "volleyball",
	"womens-college-field-hockey": "field-hockey",
	"womens-college-water-polo":   "water-polo",
	"mens-college-water-polo":     "water-polo",
}

var sportNames = map[string]string{
	"football":            "Football",
	"basketball":          "Basketball",
	"baseball":            "Baseball",
	"hockey":              "Hockey",
	"soccer":              "Soccer",
	"golf":                "Golf",
	"racing":              "Racing",
	"tennis":              "Tennis",
	"mma":                 "MMA",
	"lacrosse":            "Lacrosse",
	"australian-football": "Australian Football",
	"volleyball":          "Volleyball",
	"field-hockey":        "Field Hockey",
	"water-polo":          "Water Polo",
}

// Resolve returns the sport for a league. An explicit sport always wins.
func Resolve(league, sport string) (string, error) {
	if s := strings.TrimSpace(sport); s != "" {
		return strings.ToLower(s), nil
	}
	if s, ok := leagueToSport[strings.ToLower(strings.TrimSpace(league))]; ok {
		return s, nil
	}
	return "", ErrUnknownLeague
}

// LeagueFor maps a snake_case name like "college_football" or "eng_1" to a
// catalog slug. Hyphenated slugs are tried before dotted ones, then a dot in
// place of only the first underscore ("eng_league_cup" -> "eng.league_cup").
func LeagueFor(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	if _, ok := leagueToSport[key]; ok {
		return key, true
	}
	if hyphen := strings.ReplaceAll(key, "_", "-"); hyphen != key {
		if _, ok := leagueToSport[hyphen]; ok {
			return hyphen, true
		}
	}
	if dot := strings.ReplaceAll(key, "_", "."); dot != key {
		if _, ok := leagueToSport[dot]; ok {
			return dot, true
		}
	}
	if prefixed := strings.Replace(key, "_", ".", 1); prefixed != key {
		if _, ok := leagueToSport[prefixed]; ok {
			return prefixed, true
		}
	}
	return "", false
}

// Leagues lists catalog slugs for a sport, or every slug when sport is empty.
func Leagues(sport string) []string {
	sport = strings.ToLower(strings.TrimSpace(sport))
	out := make([]string, 0, len(leagueToSport))
	for league, s := range leagueToSport {
		if sport == "" || s == sport {
			out = append(out, league)
		}
	}
	sort.Strings(out)
	return out
}

// Sports lists every sport the catalog knows about.
func Sports() []Info {
	out := make([]Info, 0, len(sportNames))
	for slug, name := range sportNames {
		out = append(out, Info{Name: name, Slug: slug})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
