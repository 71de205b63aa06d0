package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIBAN(t *testing.T) {
	t.Run("reference IBAN is valid", func(t *testing.T) {
		r := Validate("GB82WEST12345698765432")

		assert.True(t, r.Valid)
		assert.Equal(t, KindIBAN, r.Kind)
		assert.Equal(t, "GB82 WEST 1234 5698 7654 32", r.Formatted)
		require.NotNil(t, r.Country)
		assert.Equal(t, "GB", r.Country.Code)
		assert.Equal(t, "United Kingdom", r.Country.Name)
		require.NotNil(t, r.IBAN)
		assert.Equal(t, "82", r.IBAN.CheckDigits)
		assert.Equal(t, "WEST12345698765432", r.IBAN.BBAN)
	})

	t.Run("spacing and case are ignored", func(t *testing.T) {
		r := Validate(" de89 3704 0044 0532 0130 00\t")
		assert.True(t, r.Valid)
		assert.Equal(t, "DE89370400440532013000", r.Identifier)
	})

	validIBANs := []string{
		"DE89370400440532013000",
		"NL91ABNA0417164300",
		"LT121000011101001000",
		"FR1420041010050500013M02606",
		"NO9386011117947",
		"BE68539007547034",
	}
	for _, iban := range validIBANs {
		t.Run("valid "+iban, func(t *testing.T) {
			assert.True(t, Validate(iban).Valid)
		})
	}

	t.Run("any single digit corruption is rejected", func(t *testing.T) {
		const iban = "GB82WEST12345698765432"
		for i := 2; i < len(iban); i++ {
			c := iban[i]
			if c < '0' || c > '9' {
				continue
			}
			corrupted := iban[:i] + string('0'+(c-'0'+1)%10) + iban[i+1:]
			r := Validate(corrupted)
			assert.False(t, r.Valid, corrupted)
			assert.Equal(t, KindIBAN, r.Kind)
		}
	})

	t.Run("wrong length names the expected length", func(t *testing.T) {
		r := Validate("GB82WEST1234569876543")
		assert.False(t, r.Valid)
		assert.Equal(t, "Invalid IBAN length for United Kingdom: expected 22 characters, got 21", r.Message)
	})

	t.Run("unknown country code", func(t *testing.T) {
		r := Validate("ZZ82WEST12345698765432")
		assert.False(t, r.Valid)
		assert.Equal(t, KindIBAN, r.Kind)
		assert.Contains(t, r.Message, "ZZ")
	})

	t.Run("punctuation is rejected", func(t *testing.T) {
		r := Validate("GB82-WEST-1234-5698-7654")
		assert.False(t, r.Valid)
		assert.Equal(t, KindIBAN, r.Kind)
	})

	t.Run("bad checksum", func(t *testing.T) {
		r := Validate("GB00WEST12345698765432")
		assert.False(t, r.Valid)
		assert.Equal(t, "Invalid IBAN checksum", r.Message)
		assert.Empty(t, r.Formatted)
	})
}

func TestValidateSWIFT(t *testing.T) {
	t.Run("eight character BIC is the primary office", func(t *testing.T) {
		r := Validate("DEUTDEFF")

		assert.True(t, r.Valid)
		assert.Equal(t, KindSWIFT, r.Kind)
		assert.Equal(t, "Germany", r.Country.Name)
		require.NotNil(t, r.SWIFT)
		assert.Equal(t, "DEUT", r.SWIFT.BankCode)
		assert.Equal(t, "FF", r.SWIFT.LocationCode)
		assert.Equal(t, "XXX", r.SWIFT.BranchCode)
		assert.True(t, r.SWIFT.PrimaryOffice)
	})

	t.Run("eleven character BIC carries a branch", func(t *testing.T) {
		r := Validate("cbvilt2x 123")

		assert.True(t, r.Valid)
		assert.Equal(t, "CBVILT2X123", r.Identifier)
		assert.Equal(t, "Lithuania", r.Country.Name)
		assert.Equal(t, "123", r.SWIFT.BranchCode)
		assert.False(t, r.SWIFT.PrimaryOffice)
	})

	t.Run("explicit XXX branch is the primary office", func(t *testing.T) {
		r := Validate("CHASUS33XXX")
		assert.True(t, r.Valid)
		assert.True(t, r.SWIFT.PrimaryOffice)
		assert.Equal(t, "United States", r.Country.Name)
	})

	t.Run("unknown country code is still valid", func(t *testing.T) {
		r := Validate("ABCDQQ12")
		assert.True(t, r.Valid)
		assert.Equal(t, "QQ", r.Country.Code)
		assert.Empty(t, r.Country.Name)
	})
}

func TestValidateUnknown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "   ", "Identifier is required"},
		{"too short for BIC", "DEUTDE", "Not a recognizable IBAN or SWIFT/BIC code"},
		{"nine characters", "DEUTDEFF1", "Not a recognizable IBAN or SWIFT/BIC code"},
		{"digits in bank code", "D3UTDEFF", "Not a recognizable IBAN or SWIFT/BIC code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.input)
			assert.False(t, r.Valid)
			assert.Equal(t, KindUnknown, r.Kind)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestIBANTableCoverage(t *testing.T) {
	assert.GreaterOrEqual(t, len(ibanLengths), 75)
	for code := range ibanLengths {
		assert.NotEmpty(t, countryName(code), code)
	}
}

func TestMod97(t *testing.T) {
	assert.Equal(t, 1, mod97("WEST12345698765432GB82"))
	assert.Equal(t, 0, mod97("97"))
	assert.Equal(t, 10, mod97("A"))
}
