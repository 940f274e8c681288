// Package catalog holds the static destinations a journey can be booked to
package catalog

import (
	"math/rand/v2"
	"strings"
)

// FreestyleID identifies the freestyle placeholder destination.
const FreestyleID = "freestyle"

// surprisePrefix marks destinations built from the hidden catalog with a
// user-chosen duration.
const surprisePrefix = "freestyle-"

// DefaultID is the destination selected when nothing else is configured.
const DefaultID = "kyoto"

// Destination is a place a focus session travels to. DurationMinutes is the
// scheduled length of the session.
type Destination struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Region          string  `json:"region"`
	ThemeColor      string  `json:"theme_color"`
	ImageURL        string  `json:"image_url"`
	Timezone        string  `json:"timezone"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      int     `json:"distance_km"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
}

// IsFreestyle reports whether d is the freestyle placeholder.
func (d Destination) IsFreestyle() bool {
	return d.ID == FreestyleID
}

// IsSurprise reports whether d was produced by Surprise.
func (d Destination) IsSurprise() bool {
	return strings.HasPrefix(d.ID, surprisePrefix)
}

// DurationSeconds returns the scheduled duration in whole seconds.
func (d Destination) DurationSeconds() int {
	return d.DurationMinutes * 60
}

// Freestyle is the selection placeholder for a custom duration. It is never
// used as the destination of a running session.
var Freestyle = Destination{
	ID:              FreestyleID,
	Name:            "Freestyle",
	Region:          "Unknown",
	DurationMinutes: 0,
	DistanceKm:      0,
	ThemeColor:      "#E2E8F0",
	ImageURL:        "https://images.unsplash.com/photo-1470115636492-6d2b56f9146d?auto=format&fit=crop&w=800&q=80",
	Timezone:        "UTC",
}

var public = []Destination{
	{
		ID: "commute", Name: "Suburbs", Region: "Local Line",
		DurationMinutes: 15, DistanceKm: 12, ThemeColor: "#60A5FA",
		ImageURL: "https://images.unsplash.com/photo-1500382017468-9049fed747ef?auto=format&fit=crop&w=800&q=80",
		Lat:      40.7128, Lng: -74.0060, Timezone: "America/New_York",
	},
	{
		ID: "kyoto", Name: "Kyoto", Region: "Japan",
		DurationMinutes: 25, DistanceKm: 45, ThemeColor: "#F472B6",
		ImageURL: "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?auto=format&fit=crop&w=800&q=80",
		Lat:      35.0116, Lng: 135.7681, Timezone: "Asia/Tokyo",
	},
	{
		ID: "zurich", Name: "Zürich", Region: "Switzerland",
		DurationMinutes: 45, DistanceKm: 120, ThemeColor: "#22D3EE",
		ImageURL: "https://images.unsplash.com/photo-1515488764276-beab7607c1e6?auto=format&fit=crop&w=800&q=80",
		Lat:      47.3769, Lng: 8.5417, Timezone: "Europe/Zurich",
	},
	{
		ID: "paris", Name: "Paris", Region: "France",
		DurationMinutes: 60, DistanceKm: 300, ThemeColor: "#FBBF24",
		ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&w=800&q=80",
		Lat:      48.8566, Lng: 2.3522, Timezone: "Europe/Paris",
	},
	{
		ID: "london", Name: "London", Region: "UK",
		DurationMinutes: 90, DistanceKm: 450, ThemeColor: "#F87171",
		ImageURL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?auto=format&fit=crop&w=800&q=80",
		Lat:      51.5074, Lng: -0.1278, Timezone: "Europe/London",
	},
	{
		ID: "berlin", Name: "Berlin", Region: "Germany",
		DurationMinutes: 120, DistanceKm: 800, ThemeColor: "#FACC15",
		ImageURL: "https://images.unsplash.com/photo-1560969184-10fe8719e047?auto=format&fit=crop&w=800&q=80",
		Lat:      52.5200, Lng: 13.4050, Timezone: "Europe/Berlin",
	},
	{
		ID: "cairo", Name: "Cairo", Region: "Egypt",
		DurationMinutes: 150, DistanceKm: 1800, ThemeColor: "#FDBA74",
		ImageURL: "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?auto=format&fit=crop&w=800&q=80",
		Lat:      30.0444, Lng: 31.2357, Timezone: "Africa/Cairo",
	},
	{
		ID: "istanbul", Name: "Istanbul", Region: "Turkey",
		DurationMinutes: 180, DistanceKm: 2500, ThemeColor: "#F97316",
		ImageURL: "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?auto=format&fit=crop&w=800&q=80",
		Lat:      41.0082, Lng: 28.9784, Timezone: "Europe/Istanbul",
	},
	{
		ID: "tokyo", Name: "Tokyo", Region: "Japan",
		DurationMinutes: 240, DistanceKm: 9000, ThemeColor: "#E879F9",
		ImageURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?auto=format&fit=crop&w=800&q=80",
		Lat:      35.6762, Lng: 139.6503, Timezone: "Asia/Tokyo",
	},
	{
		ID: "nyc", Name: "New York", Region: "USA",
		DurationMinutes: 300, DistanceKm: 6000, ThemeColor: "#34D399",
		ImageURL: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?auto=format&fit=crop&w=800&q=80",
		Lat:      40.7128, Lng: -74.0060, Timezone: "America/New_York",
	},
	{
		ID: "rio", Name: "Rio", Region: "Brazil",
		DurationMinutes: 360, DistanceKm: 8000, ThemeColor: "#22C55E",
		ImageURL: "https://images.unsplash.com/photo-1483729558449-99ef09a8c325?auto=format&fit=crop&w=800&q=80",
		Lat:      -22.9068, Lng: -43.1729, Timezone: "America/Sao_Paulo",
	},
	{
		ID: "sydney", Name: "Sydney", Region: "Australia",
		DurationMinutes: 480, DistanceKm: 12000, ThemeColor: "#818CF8",
		ImageURL: "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?auto=format&fit=crop&w=800&q=80",
		Lat:      -33.8688, Lng: 151.2093, Timezone: "Australia/Sydney",
	},
}

// hidden destinations are only reachable through a freestyle booking.
var hidden = []Destination{
	{
		ID: "rome", Name: "Rome", Region: "Italy", DurationMinutes: 60, DistanceKm: 800,
		ThemeColor: "#F59E0B", Lat: 41.9028, Lng: 12.4964, Timezone: "Europe/Rome",
		ImageURL: "https://images.unsplash.com/photo-1552832230-c0197dd311b5?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "barcelona", Name: "Barcelona", Region: "Spain", DurationMinutes: 60, DistanceKm: 900,
		ThemeColor: "#FB923C", Lat: 41.3851, Lng: 2.1734, Timezone: "Europe/Madrid",
		ImageURL: "https://images.unsplash.com/photo-1579282240050-352db0a14c21?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "reykjavik", Name: "Reykjavik", Region: "Iceland", DurationMinutes: 60, DistanceKm: 2000,
		ThemeColor: "#67E8F9", Lat: 64.1466, Lng: -21.9426, Timezone: "Atlantic/Reykjavik",
		ImageURL: "https://images.unsplash.com/photo-1476610182048-b716b8518aae?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "singapore", Name: "Singapore", Region: "Asia", DurationMinutes: 60, DistanceKm: 9500,
		ThemeColor: "#10B981", Lat: 1.3521, Lng: 103.8198, Timezone: "Asia/Singapore",
		ImageURL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "cape-town", Name: "Cape Town", Region: "South Africa", DurationMinutes: 60, DistanceKm: 10000,
		ThemeColor: "#EAB308", Lat: -33.9249, Lng: 18.4241, Timezone: "Africa/Johannesburg",
		ImageURL: "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "amsterdam", Name: "Amsterdam", Region: "Netherlands", DurationMinutes: 60, DistanceKm: 400,
		ThemeColor: "#F87171", Lat: 52.3676, Lng: 4.9041, Timezone: "Europe/Amsterdam",
		ImageURL: "https://images.unsplash.com/photo-1512470876302-6a084e9c62ea?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "vancouver", Name: "Vancouver", Region: "Canada", DurationMinutes: 60, DistanceKm: 5000,
		ThemeColor: "#2DD4BF", Lat: 49.2827, Lng: -123.1207, Timezone: "America/Vancouver",
		ImageURL: "https://images.unsplash.com/photo-1559511260-66a654ae98e2?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "seoul", Name: "Seoul", Region: "South Korea", DurationMinutes: 60, DistanceKm: 8500,
		ThemeColor: "#818CF8", Lat: 37.5665, Lng: 126.9780, Timezone: "Asia/Seoul",
		ImageURL: "https://images.unsplash.com/photo-1517154421773-0529f29ea451?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "dubai", Name: "Dubai", Region: "UAE", DurationMinutes: 60, DistanceKm: 6000,
		ThemeColor: "#FCD34D", Lat: 25.2048, Lng: 55.2708, Timezone: "Asia/Dubai",
		ImageURL: "https://images.unsplash.com/photo-1512453979798-5ea904ac66de?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "prague", Name: "Prague", Region: "Czech Republic", DurationMinutes: 60, DistanceKm: 700,
		ThemeColor: "#FDBA74", Lat: 50.0755, Lng: 14.4378, Timezone: "Europe/Prague",
		ImageURL: "https://images.unsplash.com/photo-1541849546-216549ae216d?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID: "athens", Name: "Athens", Region: "Greece", DurationMinutes: 60, DistanceKm: 2000,
		ThemeColor: "#93C5FD", Lat: 37.9838, Lng: 23.7275, Timezone: "Europe/Athens",
		ImageURL: "https://images.unsplash.com/photo-1603565816030-6b389eeb23cb?auto=format&fit=crop&w=800&q=80",
	},
}

// All returns the public catalog in display order.
func All() []Destination {
	out := make([]Destination, len(public))
	copy(out, public)

	return out
}

// Hidden returns the destinations used for freestyle surprises.
func Hidden() []Destination {
	out := make([]Destination, len(hidden))
	copy(out, hidden)

	return out
}

// Lookup finds a public destination (or the freestyle placeholder) by id or
// case-insensitive name.
func Lookup(key string) (Destination, bool) {
	if strings.EqualFold(key, FreestyleID) {
		return Freestyle, true
	}

	for _, d := range public {
		if d.ID == key || strings.EqualFold(d.Name, key) {
			return d, true
		}
	}

	return Destination{}, false
}

// Default returns the destination selected on startup.
func Default() Destination {
	d, _ := Lookup(DefaultID)

	return d
}

// Surprise picks a random hidden destination and relabels it with the given
// duration. The destination behind lastID, a previous surprise, is excluded
// when another one is available.
func Surprise(rng *rand.Rand, lastID string, minutes int) Destination {
	candidates := hidden

	if strings.HasPrefix(lastID, surprisePrefix) {
		filtered := make([]Destination, 0, len(hidden))

		for _, d := range hidden {
			if surprisePrefix+d.ID != lastID {
				filtered = append(filtered, d)
			}
		}

		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	picked := candidates[rng.IntN(len(candidates))]

	picked.DurationMinutes = minutes
	picked.ID = surprisePrefix + picked.ID

	return picked
}
