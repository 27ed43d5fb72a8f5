package bonappetit

import (
	"context"
	"log/slog"
	"strings"

	"menubot-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("scrapers/bonappetit")

// ExtractDay pulls the lunch menu out of a fetched day page. A page
// without a recognizable lunch section yields an empty but valid menu,
// not an error.
func ExtractDay(ctx context.Context, doc *goquery.Document, date, url string) DayMenu {
	ctx, span := tracer.Start(ctx, "ExtractDay")
	defer span.End()
	span.SetAttributes(attribute.String("date", date))

	menu := DayMenu{
		Date:     date,
		URL:      url,
		Stations: map[string][]string{},
	}

	lunch := findLunchSection(doc)
	if lunch == nil || lunch.Length() == 0 {
		slog.WarnContext(ctx, "could not find lunch section", "date", date)
		return menu
	}

	seen := map[string]bool{}

	lunch.Find(".site-panel__daypart-item").Each(func(_ int, item *goquery.Selection) {
		title := textutil.NormalizeSpace(textutil.RemoveNonPrintable(
			item.Find(".site-panel__daypart-item-title").First().Text(),
		))
		if title == "" || !IsValidMenuItem(title) {
			return
		}
		if excludedItems[strings.ToLower(title)] {
			return
		}

		station := "General"
		stationSel := item.Find(".site-panel__daypart-item-station").First()
		if stationSel.Length() > 0 {
			s := strings.TrimLeft(textutil.NormalizeSpace(stationSel.Text()), "@")
			if s != "" {
				station = s
			}
		}

		// the station grouping records every raw occurrence; the
		// per-day dedup below only gates the category lists, so the
		// first occurrence of a name decides its bucket
		menu.Stations[station] = append(menu.Stations[station], title)

		if seen[title] {
			return
		}
		seen[title] = true

		category := Classify(title)
		switch {
		case category == CategorySeafood && IsHighlightEligible(station):
			menu.Seafood = append(menu.Seafood, title)
		case category == CategoryMeat && IsHighlightEligible(station):
			menu.Meat = append(menu.Meat, title)
		default:
			menu.Other = append(menu.Other, title)
		}
	})

	// defensive final pass, first occurrence wins
	menu.Meat = dedupe(menu.Meat)
	menu.Seafood = dedupe(menu.Seafood)
	menu.Other = dedupe(menu.Other)

	span.SetAttributes(
		attribute.Int("meat", len(menu.Meat)),
		attribute.Int("seafood", len(menu.Seafood)),
		attribute.Int("other", len(menu.Other)),
	)
	return menu
}

// finds the subtree containing the midday-meal entries, first by an
// element id containing "lunch", then by falling back to a heading
// and its nearest enclosing section or div
func findLunchSection(doc *goquery.Document) *goquery.Selection {
	byId := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return strings.Contains(strings.ToLower(id), "lunch")
	})
	if byId.Length() > 0 {
		return byId.First()
	}

	var container *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(h.Text()), "lunch") {
			return true
		}
		parent := h.ParentsFiltered("section").First()
		if parent.Length() == 0 {
			parent = h.ParentsFiltered("div").First()
		}
		if parent.Length() > 0 {
			container = parent
		}
		return false
	})
	return container
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
