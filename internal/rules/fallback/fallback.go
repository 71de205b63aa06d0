// Package fallback provides the built-in rule sets used when remote rules
// cannot be acquired.
package fallback

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"compliance-advisor/internal/rules/models"
)

// SourceReference marks snapshots built from the embedded defaults.
const SourceReference = "fallback:built-in"

//go:embed defaults.yaml
var defaultsYAML []byte

type document struct {
	Transfer struct {
		RestrictedCountries         []string          `yaml:"restricted_countries"`
		EnhancedMonitoringCountries []string          `yaml:"enhanced_monitoring_countries"`
		CurrencyRestrictions        map[string]string `yaml:"currency_restrictions"`
	} `yaml:"transfer"`
	Company struct {
		RestrictedCountries           []string `yaml:"restricted_countries"`
		EnhancedDueDiligenceCountries []string `yaml:"enhanced_due_diligence_countries"`
		ProhibitedActivities          []string `yaml:"prohibited_activities"`
		RestrictedActivities          []string `yaml:"restricted_activities"`
	} `yaml:"company"`
}

var (
	loadOnce sync.Once
	defaults document
)

func load() *document {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
			// The file is compiled in; a decode failure is a build defect.
			panic(fmt.Sprintf("fallback: decode embedded defaults: %v", err))
		}
	})
	return &defaults
}

// Transfer returns a fresh transfer snapshot built from the defaults.
func Transfer(now time.Time) *models.TransferRules {
	d := load()
	return models.NewTransferRules(models.TransferRulesInput{
		RestrictedCountries:         d.Transfer.RestrictedCountries,
		EnhancedMonitoringCountries: d.Transfer.EnhancedMonitoringCountries,
		CurrencyRestrictions:        d.Transfer.CurrencyRestrictions,
		SourceReference:             SourceReference,
		FetchedAt:                   now,
		Origin:                      models.OriginFallback,
	})
}

// Company returns a fresh company snapshot built from the defaults.
func Company(now time.Time) *models.CompanyRules {
	d := load()
	return models.NewCompanyRules(models.CompanyRulesInput{
		ProhibitedActivities:          d.Company.ProhibitedActivities,
		RestrictedActivities:          d.Company.RestrictedActivities,
		RestrictedCountries:           d.Company.RestrictedCountries,
		EnhancedDueDiligenceCountries: d.Company.EnhancedDueDiligenceCountries,
		SourceReference:               SourceReference,
		ActivitiesSourceReference:     SourceReference,
		FetchedAt:                     now,
		Origin:                        models.OriginFallback,
	})
}
