package extract

import (
	"fmt"
	"time"
	"unicode/utf8"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/internal/rules/source"
	pkgstrings "compliance-advisor/pkg/platform/strings"
)

var (
	prohibitedActivityHeadings = []string{
		"prohibited activities",
		"prohibited business",
		"not accepted",
		"unacceptable activities",
	}
	restrictedActivityHeadings = []string{
		"restricted activities",
		"conditional activities",
		"review required",
		"restricted business",
	}
)

const (
	minCountryLen  = 2
	maxCountryLen  = 49
	minActivityLen = 3
)

// CompanyRules extracts the onboarding rule set from the country table page
// and the activities annex. Both documents are required.
func CompanyRules(countryDoc, activitiesDoc *source.Document, fetchedAt time.Time) (*models.CompanyRules, error) {
	countries, err := parsePage(countryDoc)
	if err != nil {
		return nil, err
	}
	activities, err := parsePage(activitiesDoc)
	if err != nil {
		return nil, err
	}

	var restricted, edd []string
	for _, row := range countries.rows {
		if len(row) < 2 {
			continue
		}
		country, status := row[0], row[1]
		if n := utf8.RuneCountInString(country); n < minCountryLen || n > maxCountryLen {
			continue
		}
		switch {
		case isRestrictedStatus(status):
			restricted = append(restricted, country)
		case pkgstrings.ContainsAnyFold(status, "enhanced", "edd", "high risk"):
			edd = append(edd, country)
		}
	}

	prohibitedActs := activityItems(activities.itemsUnder(prohibitedActivityHeadings))
	restrictedActs := activityItems(activities.itemsUnder(restrictedActivityHeadings))

	restricted = pkgstrings.DedupeAndTrim(restricted)
	if len(restricted) == 0 && len(prohibitedActs) == 0 {
		return nil, fmt.Errorf("%w: no restricted countries in %s and no prohibited activities in %s",
			ErrExtractionFailed, countryDoc.ID, activitiesDoc.ID)
	}

	return models.NewCompanyRules(models.CompanyRulesInput{
		ProhibitedActivities:          prohibitedActs,
		RestrictedActivities:          restrictedActs,
		RestrictedCountries:           restricted,
		EnhancedDueDiligenceCountries: pkgstrings.DedupeAndTrim(edd),
		SourceReference:               countryDoc.URL,
		ActivitiesSourceReference:     activitiesDoc.URL,
		FetchedAt:                     fetchedAt,
		Origin:                        models.OriginRemote,
	}), nil
}

// isRestrictedStatus fails closed: any status mentioning "no" restricts the
// country, so "Not permitted" and "None" count as well as a bare "No".
func isRestrictedStatus(status string) bool {
	return pkgstrings.ContainsAnyFold(status, "no", "prohibited", "not accepted")
}

func activityItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range pkgstrings.DedupeFold(items) {
		if utf8.RuneCountInString(item) >= minActivityLen {
			out = append(out, item)
		}
	}
	return out
}
