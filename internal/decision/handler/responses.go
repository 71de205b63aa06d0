package handler

import (
	"time"

	"compliance-advisor/internal/decision"
	"compliance-advisor/internal/rules/models"
)

// TransferCheckResponse is the HTTP response for POST /api/v1/transfers/check.
type TransferCheckResponse struct {
	Possible                   bool        `json:"possible"`
	System                     string      `json:"system,omitempty"`
	Fee                        *models.Fee `json:"fee,omitempty"`
	FeeDisplay                 string      `json:"fee_display,omitempty"`
	ProcessingTime             string      `json:"processing_time,omitempty"`
	Restrictions               []string    `json:"restrictions"`
	RequiresEnhancedMonitoring bool        `json:"requires_enhanced_monitoring"`
	SourceReference            string      `json:"source_reference"`
	RulesOrigin                string      `json:"rules_origin"`
	EvaluatedAt                time.Time   `json:"evaluated_at"`
}

// CompanyCheckResponse is the HTTP response for POST /api/v1/companies/check.
type CompanyCheckResponse struct {
	Possible                  bool      `json:"possible"`
	CountryStatus             string    `json:"country_status"`
	ActivityStatus            string    `json:"activity_status"`
	Restrictions              []string  `json:"restrictions"`
	Conditions                []string  `json:"conditions"`
	SourceReference           string    `json:"source_reference"`
	ActivitiesSourceReference string    `json:"activities_source_reference"`
	RulesOrigin               string    `json:"rules_origin"`
	EvaluatedAt               time.Time `json:"evaluated_at"`
}

// FromTransferResult converts a domain TransferResult to an HTTP response.
func FromTransferResult(result *decision.TransferResult) *TransferCheckResponse {
	resp := &TransferCheckResponse{
		Possible:                   result.Possible,
		System:                     result.System,
		Fee:                        result.Fee,
		ProcessingTime:             result.ProcessingTime,
		Restrictions:               result.Restrictions,
		RequiresEnhancedMonitoring: result.RequiresEnhancedMonitoring,
		SourceReference:            result.SourceReference,
		RulesOrigin:                string(result.RulesOrigin),
		EvaluatedAt:                result.EvaluatedAt,
	}
	if result.Fee != nil {
		resp.FeeDisplay = result.Fee.String()
	}
	return resp
}

// FromCompanyResult converts a domain CompanyResult to an HTTP response.
func FromCompanyResult(result *decision.CompanyResult) *CompanyCheckResponse {
	return &CompanyCheckResponse{
		Possible:                  result.Possible,
		CountryStatus:             result.CountryStatus,
		ActivityStatus:            result.ActivityStatus,
		Restrictions:              result.Restrictions,
		Conditions:                result.Conditions,
		SourceReference:           result.SourceReference,
		ActivitiesSourceReference: result.ActivitiesSourceReference,
		RulesOrigin:               string(result.RulesOrigin),
		EvaluatedAt:               result.EvaluatedAt,
	}
}
