package bonappetit

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFromString(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func item(title, station string) string {
	s := fmt.Sprintf(
		`<div class="site-panel__daypart-item">
			<button class="site-panel__daypart-item-title">%s</button>`,
		title,
	)
	if station != "" {
		s += fmt.Sprintf(
			`<span class="site-panel__daypart-item-station">%s</span>`,
			station,
		)
	}
	return s + `</div>`
}

func lunchPage(items ...string) string {
	return fmt.Sprintf(
		`<html><body>
			<div id="breakfast-daypart">%s</div>
			<div id="lunch-daypart">%s</div>
		</body></html>`,
		item("Scrambled Eggs Benedict", "@Grill"),
		strings.Join(items, "\n"),
	)
}

func TestExtractDayStationEligibility(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Grilled Salmon", "@The Daily Dish"),
		item("Beef Tacos", "@Condiments"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Grilled Salmon"}, menu.Seafood)
	require.Empty(t, menu.Meat)
	require.Equal(t, []string{"Beef Tacos"}, menu.Other)
}

func TestExtractDayIgnoresOtherDayparts(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Grilled Salmon", "@The Daily Dish"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	for _, items := range menu.Stations {
		require.NotContains(t, items, "Scrambled Eggs Benedict")
	}
}

func TestExtractDayDedupKeepsRawStationOccurrences(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Orange Chicken", "@Wok"),
		item("Orange Chicken", "@Wok"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Orange Chicken"}, menu.Meat)
	require.Equal(t, []string{"Orange Chicken", "Orange Chicken"}, menu.Stations["Wok"])
}

// the same name under an ineligible station first and an eligible one
// later stays where its first occurrence put it
func TestExtractDayFirstOccurrenceDecidesBucket(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Kung Pao Chicken", "@Salad Bar"),
		item("Kung Pao Chicken", "@Wok"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Kung Pao Chicken"}, menu.Other)
	require.Empty(t, menu.Meat)
	require.Equal(t, []string{"Kung Pao Chicken"}, menu.Stations["Salad Bar"])
	require.Equal(t, []string{"Kung Pao Chicken"}, menu.Stations["Wok"])
}

func TestExtractDayDefaultsStationAndStripsMarker(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Vegetable Stir Fry", ""),
		item("Grilled Salmon", "@@The Daily Dish"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Vegetable Stir Fry"}, menu.Stations["General"])
	require.Equal(t, []string{"Grilled Salmon"}, menu.Stations["The Daily Dish"])
}

func TestExtractDaySkipsExcludedAndInvalidItems(t *testing.T) {
	doc := docFromString(t, lunchPage(
		item("Tuna Salad", "@Salad Bar"),
		item("450 cal", "@Grill"),
		item("Croutons", "@Salad Bar"),
		item("Grilled Salmon", "@The Daily Dish"),
	))

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Grilled Salmon"}, menu.Seafood)
	require.Empty(t, menu.Other)
	require.Empty(t, menu.Stations["Salad Bar"])
	require.Len(t, menu.Stations, 1)
}

func TestExtractDayMissingLunchSection(t *testing.T) {
	doc := docFromString(t, `<html><body>
		<div id="breakfast-daypart">`+item("Oatmeal", "@Grill")+`</div>
	</body></html>`)

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Empty(t, menu.Error, "a structural miss is not a fetch error")
	require.Empty(t, menu.Meat)
	require.Empty(t, menu.Seafood)
	require.Empty(t, menu.Other)
	require.Empty(t, menu.Stations)
}

func TestExtractDayHeadingFallback(t *testing.T) {
	doc := docFromString(t, `<html><body>
		<section>
			<h2>Lunch</h2>
			`+item("Grilled Salmon", "@The Daily Dish")+`
		</section>
	</body></html>`)

	menu := ExtractDay(context.Background(), doc, "2024-10-14", "https://example.com")

	require.Equal(t, []string{"Grilled Salmon"}, menu.Seafood)
}
