package bonappetit

import "menubot-backend/lib/textutil"

func IsMainDishStation(station string) bool {
	return textutil.ContainsAny(station, mainDishStations)
}

func IsExcludedStation(station string) bool {
	return textutil.ContainsAny(station, excludedStations)
}

// IsHighlightEligible decides whether meat/seafood items from this
// station land in the highlighted category lists. Keyword matching
// alone would promote incidental matches like salad bar toppings, so
// the station has to look like an entrée station and must not be one
// of the known side/beverage stations.
func IsHighlightEligible(station string) bool {
	return IsMainDishStation(station) && !IsExcludedStation(station)
}
