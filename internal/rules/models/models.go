package models

import (
	"maps"
	"slices"
	"time"
)

// Origin records where a rule snapshot came from.
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginFallback Origin = "fallback"
)

// CurrencyStatusProhibited is the only currency status the engines act on.
const CurrencyStatusProhibited = "Prohibited"

// TransferRules is an immutable snapshot of the money-transfer rule set.
// Construct with NewTransferRules; callers must not mutate the fields.
type TransferRules struct {
	RestrictedCountries         Set                         `json:"restricted_countries"`
	EnhancedMonitoringCountries Set                         `json:"enhanced_monitoring_countries"`
	CurrencyRestrictions        map[string]string           `json:"currency_restrictions"`
	SettlementSystems           map[string]SettlementSystem `json:"settlement_systems"`
	SourceReference             string                      `json:"source_reference"`
	FetchedAt                   time.Time                   `json:"fetched_at"`
	Origin                      Origin                      `json:"origin"`
}

// TransferRulesInput carries the raw lists a TransferRules snapshot is built from.
type TransferRulesInput struct {
	RestrictedCountries         []string
	EnhancedMonitoringCountries []string
	CurrencyRestrictions        map[string]string
	SourceReference             string
	FetchedAt                   time.Time
	Origin                      Origin
}

// NewTransferRules copies in into a fresh snapshot. Settlement metadata always
// comes from the static table.
func NewTransferRules(in TransferRulesInput) *TransferRules {
	currencies := make(map[string]string, len(in.CurrencyRestrictions))
	maps.Copy(currencies, in.CurrencyRestrictions)
	return &TransferRules{
		RestrictedCountries:         NewSet(in.RestrictedCountries...),
		EnhancedMonitoringCountries: NewSet(in.EnhancedMonitoringCountries...),
		CurrencyRestrictions:        currencies,
		SettlementSystems:           DefaultSettlementSystems(),
		SourceReference:             in.SourceReference,
		FetchedAt:                   in.FetchedAt,
		Origin:                      in.Origin,
	}
}

// IsRestricted reports whether no transfer may originate in or terminate at country.
func (r *TransferRules) IsRestricted(country string) bool {
	return r.RestrictedCountries.Has(country)
}

// RequiresEnhancedMonitoring reports whether country triggers extra due-diligence narrative.
func (r *TransferRules) RequiresEnhancedMonitoring(country string) bool {
	return r.EnhancedMonitoringCountries.Has(country)
}

// IsCurrencyProhibited reports whether transfers in currency are blocked.
func (r *TransferRules) IsCurrencyProhibited(currency string) bool {
	return r.CurrencyRestrictions[currency] == CurrencyStatusProhibited
}

// CompanyRules is an immutable snapshot of the company onboarding rule set.
type CompanyRules struct {
	ProhibitedActivities          []string  `json:"prohibited_activities"`
	RestrictedActivities          []string  `json:"restricted_activities"`
	RestrictedCountries           Set       `json:"restricted_countries"`
	EnhancedDueDiligenceCountries Set       `json:"enhanced_due_diligence_countries"`
	SourceReference               string    `json:"source_reference"`
	ActivitiesSourceReference     string    `json:"activities_source_reference"`
	FetchedAt                     time.Time `json:"fetched_at"`
	Origin                        Origin    `json:"origin"`
}

// CompanyRulesInput carries the raw lists a CompanyRules snapshot is built from.
type CompanyRulesInput struct {
	ProhibitedActivities          []string
	RestrictedActivities          []string
	RestrictedCountries           []string
	EnhancedDueDiligenceCountries []string
	SourceReference               string
	ActivitiesSourceReference     string
	FetchedAt                     time.Time
	Origin                        Origin
}

// NewCompanyRules copies in into a fresh snapshot. Activity order is kept:
// the first matching entry wins.
func NewCompanyRules(in CompanyRulesInput) *CompanyRules {
	return &CompanyRules{
		ProhibitedActivities:          slices.Clone(in.ProhibitedActivities),
		RestrictedActivities:          slices.Clone(in.RestrictedActivities),
		RestrictedCountries:           NewSet(in.RestrictedCountries...),
		EnhancedDueDiligenceCountries: NewSet(in.EnhancedDueDiligenceCountries...),
		SourceReference:               in.SourceReference,
		ActivitiesSourceReference:     in.ActivitiesSourceReference,
		FetchedAt:                     in.FetchedAt,
		Origin:                        in.Origin,
	}
}

// IsRestricted reports whether companies from country are rejected outright.
func (r *CompanyRules) IsRestricted(country string) bool {
	return r.RestrictedCountries.Has(country)
}

// RequiresEDD reports whether companies from country need enhanced due diligence.
func (r *CompanyRules) RequiresEDD(country string) bool {
	return r.EnhancedDueDiligenceCountries.Has(country)
}
