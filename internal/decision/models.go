package decision

import (
	"time"

	"compliance-advisor/internal/rules/models"
)

// Country statuses reported for company onboarding.
const (
	CountryStatusProhibited   = "Prohibited"
	CountryStatusEDD          = "Enhanced Due Diligence Required"
	CountryStatusStandard     = "Standard Processing"
	CountryStatusCaseByCase   = "Case-by-case Review"
	ActivityStatusProhibited  = "Prohibited"
	ActivityStatusNotAssessed = "N/A"
	ActivityStatusReview      = "Requires Additional Review"
	ActivityStatusAccepted    = "Accepted"
)

// TransferRequest asks whether money can move between two countries in a currency.
type TransferRequest struct {
	SenderCountry    string
	RecipientCountry string
	Currency         string
}

// TransferResult is the advisory outcome for a transfer.
// System, Fee and ProcessingTime are set only when Possible is true.
type TransferResult struct {
	Possible                   bool
	System                     string
	Fee                        *models.Fee
	ProcessingTime             string
	Restrictions               []string
	RequiresEnhancedMonitoring bool
	SourceReference            string
	RulesOrigin                models.Origin
	EvaluatedAt                time.Time
}

// CompanyRequest asks whether a company may open an account.
type CompanyRequest struct {
	Country  string
	Activity string
}

// CompanyResult is the advisory outcome for company onboarding.
// Conditions is empty whenever Possible is false.
type CompanyResult struct {
	Possible                  bool
	CountryStatus             string
	ActivityStatus            string
	Restrictions              []string
	Conditions                []string
	SourceReference           string
	ActivitiesSourceReference string
	RulesOrigin               models.Origin
	EvaluatedAt               time.Time
}
