package decision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-advisor/internal/rules/fallback"
	"compliance-advisor/internal/rules/models"
)

func TestEvaluateTransfer(t *testing.T) {
	rules := fallback.Transfer(time.Now())

	tests := []struct {
		name           string
		req            TransferRequest
		wantPossible   bool
		wantSystem     string
		wantFee        string
		wantProcessing string
		wantFirst      string
		wantMonitoring bool
	}{
		{
			name:           "domestic euro transfer settles locally",
			req:            TransferRequest{SenderCountry: "Austria", RecipientCountry: "Lithuania", Currency: "EUR"},
			wantPossible:   true,
			wantSystem:     models.SystemLocalTransfer,
			wantFee:        "0 EUR",
			wantProcessing: "Instant",
		},
		{
			name:           "euro into the EEA uses SEPA",
			req:            TransferRequest{SenderCountry: "Austria", RecipientCountry: "Germany", Currency: "EUR"},
			wantPossible:   true,
			wantSystem:     models.SystemSEPA,
			wantFee:        "0 EUR",
			wantProcessing: "Same or next business day",
		},
		{
			name:         "euro to EFTA EEA member uses SEPA",
			req:          TransferRequest{SenderCountry: "Lithuania", RecipientCountry: "Norway", Currency: "EUR"},
			wantPossible: true,
			wantSystem:   models.SystemSEPA,
			wantFee:      "0 EUR",
		},
		{
			name:         "supported foreign currency uses Currency One",
			req:          TransferRequest{SenderCountry: "Austria", RecipientCountry: "Japan", Currency: "USD"},
			wantPossible: true,
			wantSystem:   models.SystemCurrencyOne,
			wantFee:      "1 EUR",
		},
		{
			name:         "non-EUR to Lithuania is not local",
			req:          TransferRequest{SenderCountry: "Austria", RecipientCountry: "Lithuania", Currency: "GBP"},
			wantPossible: true,
			wantSystem:   models.SystemCurrencyOne,
			wantFee:      "1 EUR",
		},
		{
			name:           "euro outside the EEA falls through to SWIFT",
			req:            TransferRequest{SenderCountry: "Austria", RecipientCountry: "Japan", Currency: "EUR"},
			wantPossible:   true,
			wantSystem:     models.SystemSWIFT,
			wantFee:        "15-45 EUR",
			wantProcessing: "2-5 business days",
		},
		{
			name:         "unknown currency uses SWIFT",
			req:          TransferRequest{SenderCountry: "Austria", RecipientCountry: "Brazil", Currency: "BRL"},
			wantPossible: true,
			wantSystem:   models.SystemSWIFT,
			wantFee:      "15-45 EUR",
		},
		{
			name:      "restricted recipient is rejected",
			req:       TransferRequest{SenderCountry: "Austria", RecipientCountry: "Russia", Currency: "EUR"},
			wantFirst: "Transfers to Russia are not permitted due to sanctions restrictions",
		},
		{
			name:      "restricted sender is rejected",
			req:       TransferRequest{SenderCountry: "Iran", RecipientCountry: "Germany", Currency: "EUR"},
			wantFirst: "Transfers from Iran are not permitted due to sanctions restrictions",
		},
		{
			name:      "both restricted reports the sender only",
			req:       TransferRequest{SenderCountry: "Cuba", RecipientCountry: "Syria", Currency: "EUR"},
			wantFirst: "Transfers from Cuba are not permitted due to sanctions restrictions",
		},
		{
			name:      "prohibited currency is rejected",
			req:       TransferRequest{SenderCountry: "Austria", RecipientCountry: "Germany", Currency: "RUB"},
			wantFirst: "Transfers in RUB are prohibited",
		},
		{
			name:           "monitored recipient is allowed with narrative",
			req:            TransferRequest{SenderCountry: "Austria", RecipientCountry: "Turkey", Currency: "TRY"},
			wantPossible:   true,
			wantSystem:     models.SystemCurrencyOne,
			wantFee:        "1 EUR",
			wantFirst:      "Turkey is subject to enhanced monitoring; additional documentation may be requested",
			wantMonitoring: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateTransfer(tt.req, rules)

			assert.Equal(t, tt.wantPossible, result.Possible)
			assert.Equal(t, tt.wantMonitoring, result.RequiresEnhancedMonitoring)
			assert.Equal(t, fallback.SourceReference, result.SourceReference)
			assert.Equal(t, models.OriginFallback, result.RulesOrigin)

			if !tt.wantPossible {
				assert.Empty(t, result.System)
				assert.Nil(t, result.Fee)
				require.Len(t, result.Restrictions, 1)
				assert.Equal(t, tt.wantFirst, result.Restrictions[0])
				return
			}

			assert.Equal(t, tt.wantSystem, result.System)
			require.NotNil(t, result.Fee)
			assert.Equal(t, tt.wantFee, result.Fee.String())
			if tt.wantProcessing != "" {
				assert.Equal(t, tt.wantProcessing, result.ProcessingTime)
			}
			require.NotEmpty(t, result.Restrictions)
			assert.Equal(t, "Source: "+fallback.SourceReference, result.Restrictions[len(result.Restrictions)-1])
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, result.Restrictions[0])
			}
		})
	}
}

func TestEvaluateTransfer_MonitoringNarrativeOrder(t *testing.T) {
	rules := fallback.Transfer(time.Now())

	result := EvaluateTransfer(TransferRequest{
		SenderCountry:    "China",
		RecipientCountry: "Turkey",
		Currency:         "USD",
	}, rules)

	require.True(t, result.Possible)
	require.Len(t, result.Restrictions, 3)
	assert.Contains(t, result.Restrictions[0], "China")
	assert.Contains(t, result.Restrictions[1], "Turkey")
	assert.Equal(t, "Source: "+fallback.SourceReference, result.Restrictions[2])
}

func TestEvaluateTransfer_UsesSuppliedRules(t *testing.T) {
	rules := models.NewTransferRules(models.TransferRulesInput{
		RestrictedCountries:  []string{"Atlantis"},
		CurrencyRestrictions: map[string]string{"XAU": "Review"},
		SourceReference:      "https://wiki.example.com/pages/101",
		Origin:               models.OriginRemote,
	})

	rejected := EvaluateTransfer(TransferRequest{SenderCountry: "Atlantis", RecipientCountry: "Germany", Currency: "EUR"}, rules)
	assert.False(t, rejected.Possible)

	allowed := EvaluateTransfer(TransferRequest{SenderCountry: "Russia", RecipientCountry: "Germany", Currency: "XAU"}, rules)
	assert.True(t, allowed.Possible, "only Prohibited currency status blocks")
	assert.Equal(t, models.SystemSWIFT, allowed.System)
	assert.Equal(t, "Source: https://wiki.example.com/pages/101", allowed.Restrictions[0])
}

func TestSelectSettlementSystem(t *testing.T) {
	assert.Equal(t, models.SystemLocalTransfer, SelectSettlementSystem("Lithuania", "EUR").Name)
	assert.Equal(t, models.SystemSEPA, SelectSettlementSystem("France", "EUR").Name)
	assert.Equal(t, models.SystemCurrencyOne, SelectSettlementSystem("France", "CHF").Name)
	assert.Equal(t, models.SystemSWIFT, SelectSettlementSystem("United States", "EUR").Name)
	assert.Equal(t, models.SystemSWIFT, SelectSettlementSystem("United States", "BRL").Name)
}
