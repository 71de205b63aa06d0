package identifier

// ibanLengths is the registered IBAN length per country code.
var ibanLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28, "BA": 20, "BE": 16,
	"BG": 22, "BH": 22, "BI": 27, "BR": 29, "BY": 28, "CH": 21, "CR": 22,
	"CY": 28, "CZ": 24, "DE": 22, "DJ": 27, "DK": 18, "DO": 28, "EE": 20,
	"EG": 29, "ES": 24, "FI": 18, "FK": 18, "FO": 18, "FR": 27, "GB": 22,
	"GE": 22, "GI": 23, "GL": 18, "GR": 27, "GT": 28, "HN": 28, "HR": 21,
	"HU": 28, "IE": 22, "IL": 23, "IQ": 23, "IS": 26, "IT": 27, "JO": 30,
	"KW": 30, "KZ": 20, "LB": 28, "LC": 32, "LI": 21, "LT": 20, "LU": 20,
	"LV": 21, "LY": 25, "MC": 27, "MD": 24, "ME": 22, "MK": 19, "MN": 20,
	"MR": 27, "MT": 31, "MU": 30, "NI": 28, "NL": 18, "NO": 15, "OM": 23,
	"PK": 24, "PL": 28, "PS": 29, "PT": 25, "QA": 29, "RO": 24, "RS": 22,
	"RU": 33, "SA": 24, "SC": 31, "SD": 18, "SE": 24, "SI": 19, "SK": 24,
	"SM": 27, "SO": 23, "ST": 25, "SV": 28, "TL": 23, "TN": 24, "TR": 26,
	"UA": 29, "VA": 22, "VG": 24, "XK": 20, "YE": 30,
}

// countryNames maps ISO 3166-1 alpha-2 codes to display names. It covers
// every IBAN country plus the usual SWIFT-only correspondents.
var countryNames = map[string]string{
	"AD": "Andorra", "AE": "United Arab Emirates", "AF": "Afghanistan", "AL": "Albania",
	"AR": "Argentina", "AT": "Austria", "AU": "Australia", "AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina", "BE": "Belgium", "BG": "Bulgaria", "BH": "Bahrain",
	"BI": "Burundi", "BR": "Brazil", "BY": "Belarus", "CA": "Canada",
	"CH": "Switzerland", "CL": "Chile", "CN": "China", "CO": "Colombia",
	"CR": "Costa Rica", "CU": "Cuba", "CY": "Cyprus", "CZ": "Czech Republic",
	"DE": "Germany", "DJ": "Djibouti", "DK": "Denmark", "DO": "Dominican Republic",
	"EE": "Estonia", "EG": "Egypt", "ES": "Spain", "FI": "Finland",
	"FK": "Falkland Islands", "FO": "Faroe Islands", "FR": "France", "GB": "United Kingdom",
	"GE": "Georgia", "GI": "Gibraltar", "GL": "Greenland", "GR": "Greece",
	"GT": "Guatemala", "HK": "Hong Kong", "HN": "Honduras", "HR": "Croatia",
	"HU": "Hungary", "ID": "Indonesia", "IE": "Ireland", "IL": "Israel",
	"IN": "India", "IQ": "Iraq", "IR": "Iran", "IS": "Iceland",
	"IT": "Italy", "JO": "Jordan", "JP": "Japan", "KE": "Kenya",
	"KP": "North Korea", "KR": "South Korea", "KW": "Kuwait", "KZ": "Kazakhstan",
	"LB": "Lebanon", "LC": "Saint Lucia", "LI": "Liechtenstein", "LT": "Lithuania",
	"LU": "Luxembourg", "LV": "Latvia", "LY": "Libya", "MA": "Morocco",
	"MC": "Monaco", "MD": "Moldova", "ME": "Montenegro", "MK": "North Macedonia",
	"MM": "Myanmar", "MN": "Mongolia", "MR": "Mauritania", "MT": "Malta",
	"MU": "Mauritius", "MX": "Mexico", "MY": "Malaysia", "NG": "Nigeria",
	"NI": "Nicaragua", "NL": "Netherlands", "NO": "Norway", "NZ": "New Zealand",
	"OM": "Oman", "PA": "Panama", "PE": "Peru", "PH": "Philippines",
	"PK": "Pakistan", "PL": "Poland", "PS": "Palestine", "PT": "Portugal",
	"QA": "Qatar", "RO": "Romania", "RS": "Serbia", "RU": "Russia",
	"SA": "Saudi Arabia", "SC": "Seychelles", "SD": "Sudan", "SE": "Sweden",
	"SG": "Singapore", "SI": "Slovenia", "SK": "Slovakia", "SM": "San Marino",
	"SO": "Somalia", "ST": "Sao Tome and Principe", "SV": "El Salvador", "SY": "Syria",
	"TH": "Thailand", "TL": "Timor-Leste", "TN": "Tunisia", "TR": "Turkey",
	"TW": "Taiwan", "UA": "Ukraine", "US": "United States", "VA": "Vatican City",
	"VE": "Venezuela", "VG": "British Virgin Islands", "VN": "Vietnam", "XK": "Kosovo",
	"YE": "Yemen", "ZA": "South Africa",
}

func countryName(code string) string {
	return countryNames[code]
}
