package bonappetit

// static classification configuration, tuned against the live menu
// pages rather than derived from any structured feed

var meatKeywords = []string{
	"beef", "steak", "pork", "bacon", "ham", "sausage", "lamb", "veal",
	"chicken", "turkey", "duck", "poultry", "wing", "thigh", "breast",
	"ribs", "brisket", "meatball", "burger", "patty", "pulled pork",
	"braised beef", "carnitas", "chorizo", "prosciutto", "pepperoni",
	"teriyaki chicken", "fried chicken", "bbq chicken", "rotisserie",
	"bulgogi", "galbi", "kalbi", "korean bbq", "bibimbap", "japchae",
	"dakgalbi", "samgyeopsal", "bo ssam", "bossam", "katsu", "tonkatsu",
	"karaage", "gyudon", "yakitori", "donburi", "yakiniku", "ribeye",
	"chashu", "nikujaga", "char siu", "mapo", "kung pao", "orange chicken",
	"general tso", "mongolian beef", "szechuan", "sichuan", "satay", "rendang",
	"adobo", "larb", "laab",
}

var seafoodKeywords = []string{
	"fish", "salmon", "tuna", "cod", "tilapia", "halibut", "mahi", "trout",
	"shrimp", "prawn", "lobster", "crab", "clam", "mussel", "oyster",
	"scallop", "squid", "calamari", "octopus", "seafood", "sushi", "sashimi",
	"poke", "ceviche", "anchovy", "sardine", "bass", "snapper", "ahi",
	"unagi", "eel", "ikura", "ebi", "hotate", "uni",
}

// text fragments that mark navigation chrome, nutrition legends,
// marketing copy and other non-food noise on the scraped pages
var excludeKeywords = []string{
	"nutrition", "ingredients", "read more", "cal.", "calories",
	"menu icon", "legend", "subscribe", "email", "contact",
	"hours", "served from", "closed", "copyright", "privacy",
	"terms of use", "secondary navigation", "primary navigation",
	"stay fresh", "the power of", "the buzz", "wellness",
	"sustainability", "food allergies", "hide descriptions",
	"collapse dayparts", "menu mail", "tell us", "faq",
	"icons", "about your food", "snapchat", "days", "café", "cafe",
	"filters", "show", "exclude", "clear filters", "apply filters",
	"view menu", "palo alto", "santa monica", "seattle", "new york",
	"san francisco", "bellevue", "friday", "monday", "tuesday",
	"wednesday", "thursday", "tomorrow", "today", "breakfast",
	"coffee bar", "condiments", "extras", "specials", "station",
	"may contain", "gluten", "vegan:", "vegetarian:", "dairy",
	"allergen", "kitchen", "prepared in", "raw/undercooked",
	"bon appétit", "bon appetit",
	// blog/article titles that leak into the item list
	"eat with your senses", "improve your mood", "upcycle your",
	"boards, boards", "how to plan", "simple shifts", "beat holiday",
	"ways to uplift", "gift (guide)", "gift guide", "power of mental",
	"tree nut", "ask us", "am -", "pm -", "- pm", "- am",
	"light breakfast", "desserts",
}

// stations likely to serve entrées, the only ones whose meat/seafood
// items get highlighted
var mainDishStations = []string{
	"the daily dish", "daily dish", "grill", "wok", "exhibition",
	"chef", "entree", "hot food", "global", "comfort", "green lite",
}

// stations whose items never count as meat/seafood highlights even
// when the name matches a keyword (sides, beverages, etc.)
var excludedStations = []string{
	"bowl bar enhancements", "beverages", "coffee bar",
	"soup", "desserts", "condiments",
}

// always-available salad bar toppings that would otherwise pass the
// keyword check, matched by exact lowercase name
var excludedItems = map[string]bool{
	"tuna salad":      true,
	"parmesan cheese": true,
	"shredded cheese": true,
	"croutons":        true,
	"cage free egg":   true,
}

// single words short enough to fail the one-word heuristic that are
// nevertheless real menu items
var singleWordFoods = []string{
	"oatmeal", "congee", "pasta", "rice", "soup", "salad",
}
