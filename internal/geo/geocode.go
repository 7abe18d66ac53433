// Package geo provides the static city geocoding table and great-circle
// distance calculations. It performs no network access; the table is bundled.
package geo

import (
	"sort"
	"strings"
)

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Unresolved reports whether c is the (0,0) sentinel produced by Resolve for
// unknown city names. The sentinel is interpreted only inside this package;
// everywhere else absent coordinates are modeled as pointers.
func (c Coordinate) Unresolved() bool {
	return c.Lat == 0 && c.Lng == 0
}

// cityCoordinates maps normalized (lowercase, trimmed) city names to their
// coordinates.
var cityCoordinates = map[string]Coordinate{
	"new york":       {Lat: 40.7128, Lng: -74.0060},
	"london":         {Lat: 51.5074, Lng: -0.1278},
	"paris":          {Lat: 48.8566, Lng: 2.3522},
	"tokyo":          {Lat: 35.6762, Lng: 139.6503},
	"sydney":         {Lat: -33.8688, Lng: 151.2093},
	"dubai":          {Lat: 25.2048, Lng: 55.2708},
	"singapore":      {Lat: 1.3521, Lng: 103.8198},
	"los angeles":    {Lat: 34.0522, Lng: -118.2437},
	"san francisco":  {Lat: 37.7749, Lng: -122.4194},
	"berlin":         {Lat: 52.5200, Lng: 13.4050},
	"rome":           {Lat: 41.9028, Lng: 12.4964},
	"mumbai":         {Lat: 19.0760, Lng: 72.8777},
	"delhi":          {Lat: 28.6139, Lng: 77.2090},
	"bangalore":      {Lat: 12.9716, Lng: 77.5946},
	"hyderabad":      {Lat: 17.3850, Lng: 78.4867},
	"chennai":        {Lat: 13.0827, Lng: 80.2707},
	"toronto":        {Lat: 43.6532, Lng: -79.3832},
	"vancouver":      {Lat: 49.2827, Lng: -123.1207},
	"barcelona":      {Lat: 41.3851, Lng: 2.1734},
	"madrid":         {Lat: 40.4168, Lng: -3.7038},
	"amsterdam":      {Lat: 52.3676, Lng: 4.9041},
	"bangkok":        {Lat: 13.7563, Lng: 100.5018},
	"seoul":          {Lat: 37.5665, Lng: 126.9780},
	"hong kong":      {Lat: 22.3193, Lng: 114.1694},
	"istanbul":       {Lat: 41.0082, Lng: 28.9784},
	"rio de janeiro": {Lat: -22.9068, Lng: -43.1729},
	"cairo":          {Lat: 30.0444, Lng: 31.2357},
	"beijing":        {Lat: 39.9042, Lng: 116.4074},
	"shanghai":       {Lat: 31.2304, Lng: 121.4737},
	"moscow":         {Lat: 55.7558, Lng: 37.6173},
	"mexico city":    {Lat: 19.4326, Lng: -99.1332},
}

// normalize lowercases and trims a city name before table lookup.
func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Lookup returns the coordinates for a city name, normalizing case and
// whitespace first. The second return value is false for unknown names.
func Lookup(city string) (Coordinate, bool) {
	c, ok := cityCoordinates[normalize(city)]
	return c, ok
}

// Resolve returns the coordinates for a city name, or the (0,0) unresolved
// sentinel for unknown names. Callers must treat the sentinel as "unresolved"
// and apply fallback policy rather than computing real distances from it.
func Resolve(city string) Coordinate {
	c, ok := Lookup(city)
	if !ok {
		return Coordinate{}
	}
	return c
}

// CityNames returns the known city names, title-cased and sorted, for
// autocomplete display.
func CityNames() []string {
	names := make([]string, 0, len(cityCoordinates))
	for city := range cityCoordinates {
		names = append(names, titleCase(city))
	}
	sort.Strings(names)
	return names
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
