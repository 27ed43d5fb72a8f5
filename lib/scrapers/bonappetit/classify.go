package bonappetit

import "menubot-backend/lib/textutil"

type Category int

const (
	CategoryOther Category = iota
	CategoryMeat
	CategorySeafood
)

func (c Category) String() string {
	switch c {
	case CategoryMeat:
		return "meat"
	case CategorySeafood:
		return "seafood"
	}
	return "other"
}

// Classify buckets an item name by keyword substring match. Seafood is
// checked before meat so that composite names containing both kinds of
// keyword resolve to the more specific signal.
func Classify(name string) Category {
	if textutil.ContainsAny(name, seafoodKeywords) {
		return CategorySeafood
	}
	if textutil.ContainsAny(name, meatKeywords) {
		return CategoryMeat
	}
	return CategoryOther
}
