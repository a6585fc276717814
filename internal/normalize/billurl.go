package normalize

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const congressHost = "https://www.congress.gov"

// billTypeSlugs maps Congress.gov bill type codes to the slugs used in
// public bill URLs.
var billTypeSlugs = map[string]string{
	"hr":      "house-bill",
	"s":       "senate-bill",
	"hjres":   "house-joint-resolution",
	"sjres":   "senate-joint-resolution",
	"hconres": "house-concurrent-resolution",
	"sconres": "senate-concurrent-resolution",
	"hres":    "house-resolution",
	"sres":    "senate-resolution",
}

var slugTypeCodes = func() map[string]string {
	m := make(map[string]string, len(billTypeSlugs))
	for code, slug := range billTypeSlugs {
		m[slug] = code
	}
	return m
}()

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BillURL builds the public Congress.gov URL for a bill identified by its
// congress number, type code and bill number. The number may carry
// formatting ("H.R.187"); everything but digits is stripped. Returns ""
// when the type code is unknown or no digits remain.
func BillURL(congress int, typeCode, number string) string {
	slug, ok := billTypeSlugs[strings.ToLower(strings.TrimSpace(typeCode))]
	if !ok {
		return ""
	}
	digits := digitsOnly(number)
	if congress <= 0 || digits == "" {
		return ""
	}
	return fmt.Sprintf("%s/bill/%s-congress/%s/%s", congressHost, Ordinal(congress), slug, digits)
}

// ParseBillPath extracts the (congress, type, number) triple from a bill
// URL. It accepts both API resource URLs (".../bill/119/hr/187") and public
// URLs (".../bill/119th-congress/house-bill/187"): the three path segments
// after the literal "bill" segment are read as congress, type and number.
func ParseBillPath(raw string) (congress int, typeCode, number string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, "", "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	idx := -1
	for i, seg := range segments {
		if seg == "bill" && i+3 < len(segments) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, "", "", false
	}
	congressSeg := segments[idx+1]
	typeSeg := segments[idx+2]
	numberSeg := segments[idx+3]

	congressDigits := digitsOnly(strings.TrimSuffix(congressSeg, "-congress"))
	if congressDigits == "" {
		return 0, "", "", false
	}
	congress, _ = strconv.Atoi(congressDigits)

	typeCode = strings.ToLower(typeSeg)
	if code, found := slugTypeCodes[typeCode]; found {
		typeCode = code
	} else {
		// generic "<type>-bill" slugs parse back to the bare type code
		typeCode = strings.TrimSuffix(typeCode, "-bill")
	}

	number = digitsOnly(numberSeg)
	if number == "" {
		return 0, "", "", false
	}
	return congress, typeCode, number, true
}

// BillURLFromSource rebuilds the public URL from a raw upstream resource
// URL. Unknown type codes fall back to a generic "<type>-bill" slug.
// Returns "" when the URL carries no recognizable bill path.
func BillURLFromSource(raw string) string {
	congress, typeCode, number, ok := ParseBillPath(raw)
	if !ok {
		return ""
	}
	slug, found := billTypeSlugs[typeCode]
	if !found {
		slug = typeCode + "-bill"
	}
	return fmt.Sprintf("%s/bill/%s-congress/%s/%s", congressHost, Ordinal(congress), slug, number)
}

// NormalizeBillURL derives the canonical public URL for a bill, degrading
// through the fallback chain: structured fields, then the raw source URL,
// then the host root. Never fails on malformed input.
func NormalizeBillURL(congress int, typeCode, number, raw string) string {
	if u := BillURL(congress, typeCode, number); u != "" {
		return u
	}
	if u := BillURLFromSource(raw); u != "" {
		return u
	}
	return congressHost
}
