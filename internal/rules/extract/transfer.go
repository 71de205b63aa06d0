package extract

import (
	"fmt"
	"strings"
	"time"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/internal/rules/source"
	pkgstrings "compliance-advisor/pkg/platform/strings"
)

var (
	restrictedCountryHeadings = []string{
		"restricted countries",
		"prohibited countries",
		"sanctioned countries",
		"sanctioned jurisdictions",
		"blocked countries",
	}
	enhancedMonitoringHeadings = []string{
		"enhanced monitoring",
		"high-risk countries",
		"high risk countries",
		"increased monitoring",
	}
	currencyRestrictionHeadings = []string{
		"currency restrictions",
		"restricted currencies",
		"prohibited currencies",
	}
)

// TransferRules extracts the transfer rule set from doc. A document without
// any restricted country is rejected as a whole.
func TransferRules(doc *source.Document, fetchedAt time.Time) (*models.TransferRules, error) {
	p, err := parsePage(doc)
	if err != nil {
		return nil, err
	}

	restricted := pkgstrings.DedupeAndTrim(p.itemsUnder(restrictedCountryHeadings))
	if len(restricted) == 0 {
		return nil, fmt.Errorf("%w: no restricted countries in document %s", ErrExtractionFailed, doc.ID)
	}

	return models.NewTransferRules(models.TransferRulesInput{
		RestrictedCountries:         restricted,
		EnhancedMonitoringCountries: pkgstrings.DedupeAndTrim(p.itemsUnder(enhancedMonitoringHeadings)),
		CurrencyRestrictions:        parseCurrencyItems(p.itemsUnder(currencyRestrictionHeadings)),
		SourceReference:             doc.URL,
		FetchedAt:                   fetchedAt,
		Origin:                      models.OriginRemote,
	}), nil
}

// parseCurrencyItems splits "RUB: Prohibited" style items on the first ':' or
// '-'. Items without a separator are skipped.
func parseCurrencyItems(items []string) map[string]string {
	out := make(map[string]string, len(items))
	for _, item := range items {
		i := strings.IndexAny(item, ":-")
		if i < 0 {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(item[:i]))
		status := pkgstrings.CollapseSpace(item[i+1:])
		if code == "" || status == "" {
			continue
		}
		if pkgstrings.ContainsAnyFold(status, "prohibited") {
			status = models.CurrencyStatusProhibited
		}
		out[code] = status
	}
	return out
}
