package handler

import (
	"strings"

	"compliance-advisor/pkg/domain"
	dErrors "compliance-advisor/pkg/domain-errors"
)

// maxActivityLength bounds the free-text business activity.
const maxActivityLength = 200

// TransferCheckRequest is the HTTP request body for POST /api/v1/transfers/check.
type TransferCheckRequest struct {
	SenderCountry    string `json:"sender_country"`
	RecipientCountry string `json:"recipient_country"`
	Currency         string `json:"currency"`
}

// Validate normalizes and checks the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *TransferCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	sender, err := domain.ParseCountryName("sender_country", r.SenderCountry)
	if err != nil {
		return err
	}
	recipient, err := domain.ParseCountryName("recipient_country", r.RecipientCountry)
	if err != nil {
		return err
	}
	currency, err := domain.ParseCurrencyCode(r.Currency)
	if err != nil {
		return err
	}

	r.SenderCountry = sender
	r.RecipientCountry = recipient
	r.Currency = currency.String()
	return nil
}

// CompanyCheckRequest is the HTTP request body for POST /api/v1/companies/check.
type CompanyCheckRequest struct {
	Country  string `json:"country"`
	Activity string `json:"activity"`
}

// Validate normalizes and checks the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CompanyCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Activity) > maxActivityLength {
		return dErrors.New(dErrors.CodeValidation, "activity must be at most 200 characters")
	}

	country, err := domain.ParseCountryName("country", r.Country)
	if err != nil {
		return err
	}
	r.Country = country

	r.Activity = strings.TrimSpace(r.Activity)
	if r.Activity == "" {
		return dErrors.New(dErrors.CodeValidation, "activity is required")
	}
	return nil
}
