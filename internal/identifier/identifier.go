// Package identifier checks the structure of bank account and bank
// identifiers. Validation is purely arithmetic: nothing is looked up remotely.
package identifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Kind is the identifier family that was recognized.
type Kind string

const (
	KindIBAN    Kind = "iban"
	KindSWIFT   Kind = "swift"
	KindUnknown Kind = "unknown"
)

// primaryOfficeBranch is the branch code (explicit or implied) of a head office.
const primaryOfficeBranch = "XXX"

var swiftPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// Country is the jurisdiction encoded in an identifier. Name may be empty
// when the code is not in the local table.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// IBANDetails breaks an IBAN into its parts.
type IBANDetails struct {
	CheckDigits string `json:"check_digits"`
	BBAN        string `json:"bban"`
}

// SWIFTDetails breaks a BIC into its parts.
type SWIFTDetails struct {
	BankCode      string `json:"bank_code"`
	LocationCode  string `json:"location_code"`
	BranchCode    string `json:"branch_code"`
	PrimaryOffice bool   `json:"primary_office"`
}

// Result is the outcome of Validate.
type Result struct {
	Valid      bool          `json:"valid"`
	Kind       Kind          `json:"kind"`
	Identifier string        `json:"identifier"`
	Formatted  string        `json:"formatted,omitempty"`
	Country    *Country      `json:"country,omitempty"`
	Message    string        `json:"message"`
	IBAN       *IBANDetails  `json:"iban,omitempty"`
	SWIFT      *SWIFTDetails `json:"swift,omitempty"`
}

// Validate classifies raw as an IBAN or SWIFT/BIC and checks its structure.
// Whitespace is ignored and letters are upper-cased first.
//
// Two letters followed by two digits always means IBAN: a BIC carries letters
// in positions 3-4, so the two families never overlap.
func Validate(raw string) Result {
	id := normalize(raw)
	if id == "" {
		return Result{Kind: KindUnknown, Message: "Identifier is required"}
	}
	if looksLikeIBAN(id) {
		return validateIBAN(id)
	}
	if swiftPattern.MatchString(id) {
		return validateSWIFT(id)
	}
	return Result{
		Kind:       KindUnknown,
		Identifier: id,
		Message:    "Not a recognizable IBAN or SWIFT/BIC code",
	}
}

func normalize(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}

func looksLikeIBAN(id string) bool {
	return len(id) >= 4 &&
		isUpperLetter(id[0]) && isUpperLetter(id[1]) &&
		isDigit(id[2]) && isDigit(id[3])
}

func validateIBAN(id string) Result {
	code := id[:2]
	result := Result{
		Kind:       KindIBAN,
		Identifier: id,
		Country:    &Country{Code: code, Name: countryName(code)},
	}

	expected, ok := ibanLengths[code]
	if !ok {
		result.Message = fmt.Sprintf("Unsupported IBAN country code %s", code)
		return result
	}
	if len(id) != expected {
		result.Message = fmt.Sprintf("Invalid IBAN length for %s: expected %d characters, got %d",
			displayName(result.Country), expected, len(id))
		return result
	}
	for i := 0; i < len(id); i++ {
		if !isUpperLetter(id[i]) && !isDigit(id[i]) {
			result.Message = "IBAN may contain only letters and digits"
			return result
		}
	}
	if mod97(id[4:]+id[:4]) != 1 {
		result.Message = "Invalid IBAN checksum"
		return result
	}

	result.Valid = true
	result.Formatted = groupsOf4(id)
	result.Message = fmt.Sprintf("Valid IBAN for %s", displayName(result.Country))
	result.IBAN = &IBANDetails{CheckDigits: id[2:4], BBAN: id[4:]}
	return result
}

func validateSWIFT(id string) Result {
	code := id[4:6]
	branch := primaryOfficeBranch
	if len(id) == 11 {
		branch = id[8:11]
	}
	details := &SWIFTDetails{
		BankCode:      id[:4],
		LocationCode:  id[6:8],
		BranchCode:    branch,
		PrimaryOffice: branch == primaryOfficeBranch,
	}
	country := &Country{Code: code, Name: countryName(code)}
	return Result{
		Valid:      true,
		Kind:       KindSWIFT,
		Identifier: id,
		Formatted:  id,
		Country:    country,
		Message:    fmt.Sprintf("Valid SWIFT/BIC code (%s)", displayName(country)),
		SWIFT:      details,
	}
}

// mod97 computes s mod 97 with letters expanded to two digits (A=10 ... Z=35),
// folding digit by digit so arbitrarily long inputs never overflow.
func mod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			rem = (rem*10 + int(c-'0')) % 97
			continue
		}
		v := int(c-'A') + 10
		rem = (rem*100 + v) % 97
	}
	return rem
}

func groupsOf4(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+4, len(s))
		b.WriteString(s[i:end])
	}
	return b.String()
}

func displayName(c *Country) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Code
}

func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
