package bonappetit

// DayMenu is one calendar day's lunch offering. The category lists
// hold distinct item names in first-seen order; Stations is the raw
// grouping of every occurrence by serving station.
type DayMenu struct {
	Date     string
	URL      string
	Meat     []string
	Seafood  []string
	Other    []string
	Stations map[string][]string
	// non-empty when the page fetch failed, in which case every
	// other field besides Date and URL is empty
	Error string
}

// WeekMenu holds Monday through Friday, in order.
type WeekMenu []DayMenu
