package decision

import (
	"fmt"

	"compliance-advisor/internal/rules/models"
	"compliance-advisor/pkg/domain"
)

// currencyOneCurrencies are served by the Currency One network.
var currencyOneCurrencies = map[string]struct{}{
	"USD": {}, "GBP": {}, "CHF": {}, "NOK": {}, "SEK": {}, "DKK": {},
	"PLN": {}, "CZK": {}, "HUF": {}, "RON": {}, "BGN": {}, "JPY": {},
	"CAD": {}, "AUD": {}, "NZD": {}, "SGD": {}, "HKD": {}, "ILS": {},
	"MXN": {}, "ZAR": {}, "TRY": {}, "CNY": {},
}

// EvaluateTransfer applies the transfer rule chain.
// This is pure domain logic - no I/O, no clock.
// Rule priority (fail-fast):
//  1. Sender sanctions
//  2. Recipient sanctions
//  3. Currency prohibition
//  4. Enhanced monitoring (narrative only)
//  5. Settlement system selection
func EvaluateTransfer(req TransferRequest, rules *models.TransferRules) *TransferResult {
	result := &TransferResult{
		Restrictions:    []string{},
		SourceReference: rules.SourceReference,
		RulesOrigin:     rules.Origin,
	}

	if rules.IsRestricted(req.SenderCountry) {
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("Transfers from %s are not permitted due to sanctions restrictions", req.SenderCountry))
		return result
	}
	if rules.IsRestricted(req.RecipientCountry) {
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("Transfers to %s are not permitted due to sanctions restrictions", req.RecipientCountry))
		return result
	}
	if rules.IsCurrencyProhibited(req.Currency) {
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("Transfers in %s are prohibited", req.Currency))
		return result
	}

	monitored := monitoredCountries(req, rules)
	result.RequiresEnhancedMonitoring = len(monitored) > 0

	system := SelectSettlementSystem(req.RecipientCountry, req.Currency)
	fee := system.Fee
	result.Possible = true
	result.System = system.Name
	result.Fee = &fee
	result.ProcessingTime = system.ProcessingTime

	for _, country := range monitored {
		result.Restrictions = append(result.Restrictions,
			fmt.Sprintf("%s is subject to enhanced monitoring; additional documentation may be requested", country))
	}
	result.Restrictions = append(result.Restrictions, "Source: "+rules.SourceReference)
	return result
}

// monitoredCountries lists the parties under enhanced monitoring, sender first.
func monitoredCountries(req TransferRequest, rules *models.TransferRules) []string {
	var out []string
	if rules.RequiresEnhancedMonitoring(req.SenderCountry) {
		out = append(out, req.SenderCountry)
	}
	if req.RecipientCountry != req.SenderCountry && rules.RequiresEnhancedMonitoring(req.RecipientCountry) {
		out = append(out, req.RecipientCountry)
	}
	return out
}

// SelectSettlementSystem picks the network for a transfer that is allowed.
// Every input maps to exactly one system; SWIFT is the catch-all.
func SelectSettlementSystem(recipientCountry, currency string) models.SettlementSystem {
	name := models.SystemSWIFT
	switch {
	case recipientCountry == domain.DomesticCountry && currency == string(domain.EUR):
		name = models.SystemLocalTransfer
	case currency == string(domain.EUR) && domain.IsEUEEAMember(recipientCountry):
		name = models.SystemSEPA
	case isCurrencyOneCurrency(currency):
		name = models.SystemCurrencyOne
	}
	system, _ := models.LookupSettlementSystem(name)
	return system
}

func isCurrencyOneCurrency(currency string) bool {
	_, ok := currencyOneCurrencies[currency]
	return ok
}
