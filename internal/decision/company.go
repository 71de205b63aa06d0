package decision

import (
	"fmt"
	"strings"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/pkg/domain"
	dErrors "compliance-advisor/pkg/domain-errors"
)

// Conditions attached to accepted companies.
var (
	restrictedActivityConditions = []string{
		"Valid licenses and regulatory authorisations for the activity must be provided",
		"Account activity will be subject to enhanced transaction monitoring",
	}
	eddConditions = []string{
		"Enhanced due diligence documentation must be provided",
		"Source of funds and source of wealth must be verified",
		"Ultimate beneficial owners must be identified and verified",
	}
)

type matchKind int

const (
	noMatch matchKind = iota
	prohibitedMatch
	restrictedMatch
)

// activityMatch is the outcome of scanning the activity lists once.
// entries holds the single prohibited entry or every restricted entry hit.
type activityMatch struct {
	kind    matchKind
	entries []string
}

// matchActivity scans prohibited entries first; the first hit wins. Without a
// prohibited hit every restricted entry that matches is collected in order.
func matchActivity(activity string, rules *models.CompanyRules) activityMatch {
	for _, entry := range rules.ProhibitedActivities {
		if activityMatches(activity, entry) {
			return activityMatch{kind: prohibitedMatch, entries: []string{entry}}
		}
	}
	var hits []string
	for _, entry := range rules.RestrictedActivities {
		if activityMatches(activity, entry) {
			hits = append(hits, entry)
		}
	}
	if len(hits) > 0 {
		return activityMatch{kind: restrictedMatch, entries: hits}
	}
	return activityMatch{kind: noMatch}
}

// activityMatches is a bidirectional, case-insensitive substring test.
// activity must already be lower-cased.
func activityMatches(activity, entry string) bool {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if entry == "" {
		return false
	}
	return strings.Contains(activity, entry) || strings.Contains(entry, activity)
}

// EvaluateCompany applies the onboarding rule chain.
// This is pure domain logic - no I/O, no clock.
// Rule priority (fail-fast):
//  1. Country sanctions (hard fail, activity not assessed)
//  2. Prohibited activity (hard fail)
//  3. Restricted activity (conditional acceptance)
//  4. EDD country (conditional acceptance)
func EvaluateCompany(req CompanyRequest, rules *models.CompanyRules) (*CompanyResult, error) {
	country, activity, err := normalizeCompany(req)
	if err != nil {
		return nil, err
	}

	result := &CompanyResult{
		Restrictions:              []string{},
		Conditions:                []string{},
		SourceReference:           rules.SourceReference,
		ActivitiesSourceReference: rules.ActivitiesSourceReference,
		RulesOrigin:               rules.Origin,
	}

	if rules.IsRestricted(country) {
		result.CountryStatus = CountryStatusProhibited
		result.ActivityStatus = ActivityStatusNotAssessed
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("Companies incorporated in %s cannot be onboarded due to sanctions restrictions", country))
		return result, nil
	}

	edd := rules.RequiresEDD(country)
	switch {
	case edd:
		result.CountryStatus = CountryStatusEDD
	case domain.IsEUEEAMember(country):
		result.CountryStatus = CountryStatusStandard
	default:
		result.CountryStatus = CountryStatusCaseByCase
	}

	match := matchActivity(activity, rules)
	switch match.kind {
	case prohibitedMatch:
		result.ActivityStatus = ActivityStatusProhibited
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("Business activity %q is prohibited", match.entries[0]))
		return result, nil
	case restrictedMatch:
		result.ActivityStatus = ActivityStatusReview
		for _, entry := range match.entries {
			result.Restrictions = append(result.Restrictions,
				fmt.Sprintf("Business activity %q is restricted and requires additional review", entry))
			result.Conditions = append(result.Conditions, restrictedActivityConditions...)
		}
	default:
		result.ActivityStatus = ActivityStatusAccepted
	}

	if edd {
		result.Conditions = append(result.Conditions, eddConditions...)
	}
	result.Possible = true
	return result, nil
}

// normalizeCompany trims both fields and lower-cases the activity.
func normalizeCompany(req CompanyRequest) (country, activity string, err error) {
	country = strings.TrimSpace(req.Country)
	activity = strings.ToLower(strings.TrimSpace(req.Activity))
	if country == "" {
		return "", "", dErrors.New(dErrors.CodeValidation, "country is required")
	}
	if activity == "" {
		return "", "", dErrors.New(dErrors.CodeValidation, "activity is required")
	}
	return country, activity, nil
}
