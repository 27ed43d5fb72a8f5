package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"menubot-backend/lib/scrapers/bonappetit"
	"menubot-backend/lib/timezone"
)

//go:embed menu.tmpl
var menuTemplate string

var tmpl = template.Must(template.New("menu").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(menuTemplate))

// Options carries the presentation knobs that used to be hardcoded
// into two near-identical generators (desktop file vs published page).
type Options struct {
	Location string
	Footer   string
}

type categoryView struct {
	Icon   string
	Title  string
	Class  string
	Count  int
	Items  []string
	More   int
	Inline bool
	Empty  string
}

type dayView struct {
	Name       string
	Date       string
	URL        string
	Error      string
	Categories []categoryView
}

type pageView struct {
	StartDate    string
	EndDate      string
	LocationName string
	Generated    string
	Days         []dayView
	Footer       string
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func newCategory(icon, title, class string, items []string, limit int, inline bool, empty string) categoryView {
	v := categoryView{
		Icon:   icon,
		Title:  title,
		Class:  class,
		Count:  len(items),
		Items:  items,
		Inline: inline,
		Empty:  empty,
	}
	if len(items) > limit {
		v.Items = items[:limit]
		v.More = len(items) - limit
	}
	return v
}

func locationName(location string) string {
	words := strings.Fields(strings.ReplaceAll(location, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// HTML renders the week as a self-contained static page.
func HTML(week bonappetit.WeekMenu, opts Options) (string, error) {
	view := pageView{
		StartDate:    week[0].Date,
		EndDate:      week[len(week)-1].Date,
		LocationName: locationName(opts.Location),
		Generated:    timezone.Now().Format("Monday, January 02, 2006 at 3:04 PM"),
		Footer:       opts.Footer,
	}

	for i, menu := range week {
		day := dayView{
			Name:  dayNames[i],
			Date:  displayDate(menu.Date),
			URL:   menu.URL,
			Error: menu.Error,
		}
		if menu.Error == "" {
			day.Categories = []categoryView{
				newCategory("🥩", "Meat", "meat-section", menu.Meat, 8, false, "No meat dishes today"),
				newCategory("🐟", "Seafood", "seafood-section", menu.Seafood, 5, false, "No seafood today"),
				newCategory("🥗", "Other", "other-section", menu.Other, 8, true, "No other dishes today"),
			}
		}
		view.Days = append(view.Days, day)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render menu template: %w", err)
	}
	return buf.String(), nil
}

func displayDate(date string) string {
	d, err := time.Parse(bonappetit.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format("January 02")
}
