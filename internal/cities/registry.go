// Package cities holds the static registry of municipalities whose Legistar
// portals have been checked for usable data. The registry is read-only
// reference data; verification of new cities happens through the
// type=verify diagnostic endpoint, never by mutating this table.
package cities

import (
	"sort"
	"strings"
)

type Municipality struct {
	Slug       string
	Name       string
	State      string
	ClientID   string
	Population int
	VerifiedAt string
	PortalURL  string
	Verified   bool
}

var registry = map[string]Municipality{
	"seattle": {
		Slug:       "seattle",
		Name:       "Seattle",
		State:      "WA",
		ClientID:   "seattle",
		Population: 737015,
		VerifiedAt: "2026-07-14",
		PortalURL:  "https://seattle.legistar.com",
		Verified:   true,
	},
	"oakland": {
		Slug:       "oakland",
		Name:       "Oakland",
		State:      "CA",
		ClientID:   "oakland",
		Population: 440646,
		VerifiedAt: "2026-07-14",
		PortalURL:  "https://oakland.legistar.com",
		Verified:   true,
	},
	"long-beach": {
		Slug:       "long-beach",
		Name:       "Long Beach",
		State:      "CA",
		ClientID:   "longbeach",
		Population: 466742,
		VerifiedAt: "2026-07-18",
		PortalURL:  "https://longbeach.legistar.com",
		Verified:   true,
	},
	"mesa": {
		Slug:       "mesa",
		Name:       "Mesa",
		State:      "AZ",
		ClientID:   "mesa",
		Population: 504258,
		VerifiedAt: "2026-07-18",
		PortalURL:  "https://mesa.legistar.com",
		Verified:   true,
	},
	"milwaukee": {
		Slug:       "milwaukee",
		Name:       "Milwaukee",
		State:      "WI",
		ClientID:   "milwaukee",
		Population: 577222,
		VerifiedAt: "2026-07-21",
		PortalURL:  "https://milwaukee.legistar.com",
		Verified:   true,
	},
	"pittsburgh": {
		Slug:       "pittsburgh",
		Name:       "Pittsburgh",
		State:      "PA",
		ClientID:   "pittsburgh",
		Population: 302971,
		VerifiedAt: "2026-07-21",
		PortalURL:  "https://pittsburgh.legistar.com",
		Verified:   true,
	},
	"san-jose": {
		Slug:       "san-jose",
		Name:       "San Jose",
		State:      "CA",
		ClientID:   "sanjose",
		Population: 971233,
		VerifiedAt: "2026-08-02",
		PortalURL:  "https://sanjose.legistar.com",
		Verified:   true,
	},
	"fullerton": {
		Slug:       "fullerton",
		Name:       "Fullerton",
		State:      "CA",
		ClientID:   "fullerton",
		Population: 143617,
		VerifiedAt: "2026-08-02",
		PortalURL:  "https://fullerton.legistar.com",
		Verified:   true,
	},
	// Known portals that did not pass the usable-data probe yet.
	"gainesville": {
		Slug:      "gainesville",
		Name:      "Gainesville",
		State:     "FL",
		ClientID:  "gainesville",
		PortalURL: "https://gainesville.legistar.com",
	},
	"roanoke": {
		Slug:      "roanoke",
		Name:      "Roanoke",
		State:     "VA",
		ClientID:  "roanoke",
		PortalURL: "https://roanoke.legistar.com",
	},
}

// Lookup finds a municipality by slug or display name, case-insensitive.
func Lookup(city string) (Municipality, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	key = strings.ReplaceAll(key, " ", "-")
	m, ok := registry[key]
	return m, ok
}

// Verified lists verified municipalities sorted by name.
func Verified() []Municipality {
	var out []Municipality
	for _, m := range registry {
		if m.Verified {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// VerifiedSlugs lists the slugs accepted by the city parameter, sorted.
func VerifiedSlugs() []string {
	var out []string
	for _, m := range registry {
		if m.Verified {
			out = append(out, m.Slug)
		}
	}
	sort.Strings(out)
	return out
}
