// Package catalog lists the countries and competitions the app offers. The
// oracle itself is not limited to these; the catalog only drives flag
// validation and the competitions endpoint.
package catalog

// Country groups the competitions offered under one key.
type Country struct {
	Key          string   `json:"key"`
	Competitions []string `json:"competitions"`
}

var countries = []Country{
	{Key: "brazil", Competitions: []string{"Brasileirão Série A", "Copa do Brasil"}},
	{Key: "england", Competitions: []string{"Premier League", "FA Cup", "EFL Championship"}},
	{Key: "spain", Competitions: []string{"La Liga", "Copa del Rey"}},
	{Key: "germany", Competitions: []string{"Bundesliga", "DFB-Pokal"}},
	{Key: "italy", Competitions: []string{"Serie A", "Coppa Italia"}},
	{Key: "france", Competitions: []string{"Ligue 1", "Coupe de France"}},
	{Key: "portugal", Competitions: []string{"Primeira Liga", "Taça de Portugal"}},
	{Key: "netherlands", Competitions: []string{"Eredivisie", "KNVB Cup"}},
	{Key: "international", Competitions: []string{"UEFA Champions League", "UEFA Europa League", "Copa Libertadores"}},
}

// Countries returns the full catalog.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CompetitionsFor returns the competitions for a country key.
func CompetitionsFor(key string) ([]string, bool) {
	for _, c := range countries {
		if c.Key == key {
			return c.Competitions, true
		}
	}
	return nil, false
}

// Contains reports whether the competition is listed under the country key.
func Contains(countryKey, competition string) bool {
	comps, ok := CompetitionsFor(countryKey)
	if !ok {
		return false
	}
	for _, c := range comps {
		if c == competition {
			return true
		}
	}
	return false
}
