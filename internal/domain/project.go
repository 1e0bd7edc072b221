package domain

import (
	"sort"
	"strings"
)

// DefaultZoom is the map zoom hint used when a source record carries none.
const DefaultZoom = 12.0

// Coordinates is a [longitude, latitude] pair (GeoJSON order).
type Coordinates [2]float64

// NewCoordinates builds a pair from separate longitude and latitude values.
func NewCoordinates(longitude, latitude float64) Coordinates {
	return Coordinates{longitude, latitude}
}

func (c Coordinates) Longitude() float64 { return c[0] }
func (c Coordinates) Latitude() float64  { return c[1] }

// Project is the canonical built-project entity every view is derived from.
type Project struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Location       string      `json:"location"`
	CountryCode    string      `json:"country_code"`
	Coordinates    Coordinates `json:"coordinates"`
	Type           string      `json:"type"`
	Architect      string      `json:"architect"`
	Year           int         `json:"year"`
	Materials      []string    `json:"materials"`
	ClimateZone    string      `json:"climate_zone"`
	CO2Reduction   string      `json:"co2_reduction"`
	Certifications []string    `json:"certifications"`
	Description    string      `json:"description"`
	ImageURL       string      `json:"image_url"`
	Zoom           float64     `json:"zoom"`
}

// NormalizeCountryCode upper-cases and trims a country code. Length is not checked.
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DistinctTypes drops empty values, de-duplicates and sorts building types.
func DistinctTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
