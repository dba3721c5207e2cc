package domain

import "strings"

// Coarse weather buckets derived from free-text descriptions. The keyword
// scan is case-insensitive, first match wins, and anything unmatched counts
// as clear.
const (
	CategoryRain  = "rain"
	CategoryStorm = "storm"
	CategorySnow  = "snow"
	CategoryCloud = "cloud"
	CategoryMist  = "mist"
	CategoryClear = "clear"
)

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{CategoryStorm, []string{"thunder", "storm"}},
	// snow before rain: "snow showers" is snow, not rain
	{CategorySnow, []string{"snow", "sleet"}},
	{CategoryRain, []string{"rain", "drizzle", "shower"}},
	{CategoryCloud, []string{"cloud", "overcast"}},
	{CategoryMist, []string{"mist", "fog", "haze"}},
}

// CategorizeWeather maps a forecast description to a coarse category.
func CategorizeWeather(description string) string {
	d := strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(d, w) {
				return c.category
			}
		}
	}
	return CategoryClear
}

var suggestionByCategory = map[string]string{
	CategoryStorm: "Suggestion: thunderstorms expected, keep plans flexible and stay indoors during alerts.",
	CategoryRain:  "Suggestion: pack an umbrella and favour indoor sights today.",
	CategorySnow:  "Suggestion: dress warmly and allow extra travel time.",
	CategoryCloud: "Suggestion: comfortable day for long walks and open-air sights.",
	CategoryMist:  "Suggestion: visibility may be low, plan viewpoints for later in the day.",
	CategoryClear: "Suggestion: great day to be outdoors, carry sunscreen and water.",
}

// SuggestionFor returns the fixed activity hint for a weather category.
func SuggestionFor(category string) string {
	if s, ok := suggestionByCategory[category]; ok {
		return s
	}
	return suggestionByCategory[CategoryClear]
}
