package ports

import (
	"context"

	"compliance-advisor/internal/rules/models"
)

// RulesPort supplies the current rule snapshots.
// This port lets the decision engine stay unaware of caching, remote fetching
// and fallback. Implementations never fail: a usable snapshot is always returned.
type RulesPort interface {
	// TransferRules returns the money-transfer rule set.
	TransferRules(ctx context.Context) *models.TransferRules

	// CompanyRules returns the company onboarding rule set.
	CompanyRules(ctx context.Context) *models.CompanyRules
}
