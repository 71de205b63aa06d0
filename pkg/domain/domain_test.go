package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "compliance-advisor/pkg/domain-errors"
)

func TestIsEUEEAMember(t *testing.T) {
	assert.True(t, IsEUEEAMember("Germany"))
	assert.True(t, IsEUEEAMember("Norway"))
	assert.True(t, IsEUEEAMember(DomesticCountry))
	assert.False(t, IsEUEEAMember("germany"), "matching is case-sensitive")
	assert.False(t, IsEUEEAMember("Switzerland"))
	assert.False(t, IsEUEEAMember("United Kingdom"))
	assert.Len(t, EUEEAMembers(), 30)
}

func TestParseCurrencyCode(t *testing.T) {
	c, err := ParseCurrencyCode(" usd ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyCode("USD"), c)

	for _, bad := range []string{"", "EU", "EURO", "E1R"} {
		_, err := ParseCurrencyCode(bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), bad)
	}
}

func TestParseCountryName(t *testing.T) {
	name, err := ParseCountryName("sender_country", "  United Arab Emirates ")
	require.NoError(t, err)
	assert.Equal(t, "United Arab Emirates", name)

	_, err = ParseCountryName("sender_country", " ")
	require.Error(t, err)
	assert.Equal(t, "sender_country is required", dErrors.MessageOf(err))
}
