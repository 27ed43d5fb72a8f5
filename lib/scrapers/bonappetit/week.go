package bonappetit

import (
	"context"
	"log/slog"
	"time"

	"menubot-backend/lib/timezone"

	"go.opentelemetry.io/otel/attribute"
)

const DateFormat = "2006-01-02"

// WeekDates returns Monday through Friday of the week containing now.
func WeekDates(now time.Time) []time.Time {
	// time.Weekday counts from Sunday, the menu week from Monday
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)

	dates := make([]time.Time, 5)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// ScrapeWeek fetches the lunch menus for Monday through Friday of the
// current week, one date at a time. A failed day is recorded on its
// own DayMenu and never stops the remaining dates.
func (c Client) ScrapeWeek(ctx context.Context, location string) WeekMenu {
	ctx, span := tracer.Start(ctx, "client:ScrapeWeek")
	defer span.End()
	span.SetAttributes(attribute.String("location", location))

	var week WeekMenu
	for _, d := range WeekDates(timezone.Now()) {
		date := d.Format(DateFormat)
		slog.InfoContext(ctx, "scraping menu", "date", date)
		week = append(week, c.FetchDay(ctx, location, date))
	}
	return week
}
