package domain

import "sort"

// DomesticCountry is the jurisdiction the advising institution is licensed in.
const DomesticCountry = "Lithuania"

// euEEAMembers lists EU member states plus the EEA EFTA states, by the
// English short names used throughout the rule sets.
var euEEAMembers = map[string]struct{}{
	"Austria":        {},
	"Belgium":        {},
	"Bulgaria":       {},
	"Croatia":        {},
	"Cyprus":         {},
	"Czech Republic": {},
	"Denmark":        {},
	"Estonia":        {},
	"Finland":        {},
	"France":         {},
	"Germany":        {},
	"Greece":         {},
	"Hungary":        {},
	"Ireland":        {},
	"Italy":          {},
	"Latvia":         {},
	"Lithuania":      {},
	"Luxembourg":     {},
	"Malta":          {},
	"Netherlands":    {},
	"Poland":         {},
	"Portugal":       {},
	"Romania":        {},
	"Slovakia":       {},
	"Slovenia":       {},
	"Spain":          {},
	"Sweden":         {},
	// EEA, not EU
	"Iceland":       {},
	"Liechtenstein": {},
	"Norway":        {},
}

// IsEUEEAMember reports whether country is an EU or EEA member state.
// Matching is exact and case-sensitive.
func IsEUEEAMember(country string) bool {
	_, ok := euEEAMembers[country]
	return ok
}

// EUEEAMembers returns the member list sorted alphabetically.
func EUEEAMembers() []string {
	out := make([]string, 0, len(euEEAMembers))
	for c := range euEEAMembers {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
