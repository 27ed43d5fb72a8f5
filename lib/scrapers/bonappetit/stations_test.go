package bonappetit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHighlightEligible(t *testing.T) {
	cases := []struct {
		station  string
		eligible bool
	}{
		{"The Daily Dish", true},
		{"Grill", true},
		{"Wok Station", true},
		{"Chef's Table", true},
		{"Exhibition Kitchen", true},
		// not entrée stations
		{"Salad Bar", false},
		{"General", false},
		{"Bakery", false},
		// explicitly excluded even when they look like entrée stations
		{"Condiments", false},
		{"Beverages", false},
		{"Soup & Chili Grill", false},
		{"Desserts", false},
	}

	for _, test := range cases {
		require.Equal(
			t, test.eligible, IsHighlightEligible(test.station),
			"station: %q", test.station,
		)
	}
}

func TestIsExcludedStation(t *testing.T) {
	require.True(t, IsExcludedStation("Coffee Bar"))
	require.True(t, IsExcludedStation("Bowl Bar Enhancements"))
	require.False(t, IsExcludedStation("The Daily Dish"))
}
