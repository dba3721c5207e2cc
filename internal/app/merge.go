package app

import (
	"fmt"
	"strings"

	"trip_planner/internal/domain"
)

const placesHeader = "Top Places to Visit:"

// isDayBoundary reports whether a line opens a new day section. Detection is
// purely positional: the Nth boundary found pairs with the Nth weather entry,
// day numbers inside the text are never parsed.
func isDayBoundary(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "day")
}

// MergeEnrichment walks the itinerary line by line and inserts a weather
// summary plus a category-keyed suggestion after each day-boundary line while
// weather entries remain. Non-boundary lines pass through untouched and in
// order. The places block is appended once at the end, header included even
// when the list is empty.
//
// Fewer boundaries than weather entries drops the trailing entries silently;
// more boundaries than entries leaves the extra days unannotated.
func MergeEnrichment(itinerary string, weather []domain.WeatherDay, places []domain.PlaceRecommendation) string {
	var b strings.Builder

	i := 0
	for _, line := range strings.Split(itinerary, "\n") {
		b.WriteString(line)
		b.WriteString("\n")
		if isDayBoundary(line) && i < len(weather) {
			w := weather[i]
			b.WriteString(w.Summary())
			b.WriteString("\n")
			b.WriteString(domain.SuggestionFor(domain.CategorizeWeather(w.Description)))
			b.WriteString("\n")
			i++
		}
	}

	b.WriteString("\n")
	b.WriteString(placesHeader)
	b.WriteString("\n")
	for n, p := range places {
		rating := "rating unknown"
		if p.Rating != nil {
			rating = fmt.Sprintf("rating %.1f", *p.Rating)
		}
		b.WriteString(fmt.Sprintf("%d. %s (%s) - %s\n", n+1, p.Name, rating, p.Address))
	}

	return b.String()
}
