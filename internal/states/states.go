// Package states resolves US state identifiers for the OpenStates API. The
// tables are read-only; nothing here mutates after init.
package states

import "strings"

// codeByName maps lowercase state names to postal codes, 50 states plus DC.
var codeByName = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"district of columbia": "DC",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
}

var nameByCode = func() map[string]string {
	m := make(map[string]string, len(codeByName))
	for name, code := range codeByName {
		m[code] = name
	}
	return m
}()

// Resolve accepts a full state name or two-letter postal code, in any case,
// and returns the postal code.
func Resolve(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 2 {
		code := strings.ToUpper(trimmed)
		if _, ok := nameByCode[code]; ok {
			return code, true
		}
	}
	code, ok := codeByName[strings.ToLower(trimmed)]
	return code, ok
}

// Name returns the lowercase full name for a postal code, used as the
// OpenStates jurisdiction parameter.
func Name(code string) (string, bool) {
	name, ok := nameByCode[strings.ToUpper(code)]
	return name, ok
}
