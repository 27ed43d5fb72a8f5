package bonappetit

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"menubot-backend/lib/textutil"
)

var calorieRegex = regexp.MustCompile(`^\d+\s*(cal\.?|calories?)?\s*$`)

// IsValidMenuItem reports whether a scraped text fragment looks like a
// genuine dish name. The menu pages mix real items with nutrition
// legends, navigation chrome and marketing copy, so this is a layered
// blacklist rather than anything principled.
func IsValidMenuItem(text string) bool {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	// character count, not bytes: dish names carry accents
	length := utf8.RuneCountInString(text)
	if length < 4 || length > 60 {
		return false
	}

	if textutil.ContainsAny(lower, excludeKeywords) {
		return false
	}

	// bare numbers and calorie figures
	if calorieRegex.MatchString(lower) {
		return false
	}

	// single short words are usually labels, not dishes
	if len(strings.Fields(text)) == 1 && length < 10 {
		if !slices.Contains(singleWordFoods, lower) {
			return false
		}
	}

	switch lower {
	case "vegan", "vegetarian", "gluten-free", "organic":
		return false
	}

	if textutil.ContainsAny(lower, []string{"click", "select", "choose", "option"}) {
		return false
	}

	return true
}
