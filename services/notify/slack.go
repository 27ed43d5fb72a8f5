package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"menubot-backend/lib/scrapers/bonappetit"
	"menubot-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

// Slack Block Kit payload types, only the fields the webhook needs.

type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type Button struct {
	Type     string `json:"type"`
	Text     Text   `json:"text"`
	URL      string `json:"url"`
	ActionID string `json:"action_id"`
}

type Block struct {
	Type      string  `json:"type"`
	Text      *Text   `json:"text,omitempty"`
	Elements  []Text  `json:"elements,omitempty"`
	Accessory *Button `json:"accessory,omitempty"`
}

type Message struct {
	Text   string  `json:"text,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func locationName(location string) string {
	words := strings.Fields(strings.ReplaceAll(location, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func displayDate(date string) string {
	d, err := time.Parse(bonappetit.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format("01/02")
}

func joinCapped(items []string, limit int, sep string) string {
	if len(items) <= limit {
		return strings.Join(items, sep)
	}
	return strings.Join(items[:limit], sep) + fmt.Sprintf(" _(+%d)_", len(items)-limit)
}

// BlockMessage renders the week as a rich Block Kit message with
// meat and seafood highlighted above everything else.
func BlockMessage(week bonappetit.WeekMenu, location string) Message {
	blocks := []Block{
		{
			Type: "header",
			Text: &Text{
				Type:  "plain_text",
				Text:  fmt.Sprintf("🍽️ %s - Weekly Lunch Menu", locationName(location)),
				Emoji: true,
			},
		},
		{
			Type: "context",
			Elements: []Text{{
				Type: "mrkdwn",
				Text: fmt.Sprintf("📅 Week of %s to %s", week[0].Date, week[len(week)-1].Date),
			}},
		},
		{Type: "divider"},
	}

	for i, menu := range week {
		blocks = append(blocks, Block{
			Type: "section",
			Text: &Text{
				Type: "mrkdwn",
				Text: fmt.Sprintf("*%s - %s*", dayNames[i], displayDate(menu.Date)),
			},
			Accessory: &Button{
				Type:     "button",
				Text:     Text{Type: "plain_text", Text: "View Menu 🔗", Emoji: true},
				URL:      menu.URL,
				ActionID: fmt.Sprintf("view_menu_%d", i),
			},
		})

		if menu.Error != "" {
			blocks = append(blocks, Block{
				Type: "section",
				Text: &Text{
					Type: "mrkdwn",
					Text: fmt.Sprintf("⚠️ Could not fetch menu: %s", menu.Error),
				},
			}, Block{Type: "divider"})
			continue
		}

		var parts []string
		if len(menu.Meat) > 0 {
			parts = append(parts, fmt.Sprintf("🥩 *Meat*: %s", joinCapped(menu.Meat, 6, " • ")))
		}
		if len(menu.Seafood) > 0 {
			parts = append(parts, fmt.Sprintf("🐟 *Seafood*: %s", joinCapped(menu.Seafood, 4, " • ")))
		}
		if len(menu.Other) > 0 {
			parts = append(parts, fmt.Sprintf("🥗 *Other*: %s", joinCapped(menu.Other, 4, ", ")))
		}
		if len(parts) > 0 {
			blocks = append(blocks, Block{
				Type: "section",
				Text: &Text{Type: "mrkdwn", Text: strings.Join(parts, "\n")},
			})
		}
		blocks = append(blocks, Block{Type: "divider"})
	}

	blocks = append(blocks, Block{
		Type: "context",
		Elements: []Text{{
			Type: "mrkdwn",
			Text: "🤖 Auto-generated by Cafe Menu Bot | Lunch only | 🥩🐟 Highlighted at top",
		}},
	})

	return Message{Blocks: blocks}
}

// TextMessage renders the week as a single mrkdwn text payload. This
// degrades more gracefully in clients that mangle Block Kit messages.
func TextMessage(week bonappetit.WeekMenu, location string) Message {
	divider := strings.Repeat("━", 35)

	lines := []string{
		fmt.Sprintf("🍽️ *%s Cafeteria - Weekly Lunch Menu*", locationName(location)),
		fmt.Sprintf("📅 Week of %s to %s", week[0].Date, week[len(week)-1].Date),
		"",
	}

	for i, menu := range week {
		lines = append(lines,
			divider,
			fmt.Sprintf("*%s - %s*", dayNames[i], displayDate(menu.Date)),
			fmt.Sprintf("<%s|🔗 View Full Menu>", menu.URL),
		)

		if menu.Error != "" {
			lines = append(lines, fmt.Sprintf("⚠️ Could not fetch menu: %s", menu.Error))
			continue
		}

		if len(menu.Meat) > 0 {
			lines = append(lines, fmt.Sprintf("\n🥩 *Meat* (%d items)", len(menu.Meat)))
			for _, item := range capped(menu.Meat, 8) {
				lines = append(lines, fmt.Sprintf("  • %s", item))
			}
			if len(menu.Meat) > 8 {
				lines = append(lines, fmt.Sprintf("  _...+%d more_", len(menu.Meat)-8))
			}
		}

		if len(menu.Seafood) > 0 {
			lines = append(lines, fmt.Sprintf("\n🐟 *Seafood* (%d items)", len(menu.Seafood)))
			for _, item := range capped(menu.Seafood, 5) {
				lines = append(lines, fmt.Sprintf("  • %s", item))
			}
			if len(menu.Seafood) > 5 {
				lines = append(lines, fmt.Sprintf("  _...+%d more_", len(menu.Seafood)-5))
			}
		}

		if len(menu.Other) > 0 {
			lines = append(lines,
				fmt.Sprintf("\n🥗 *Other* (%d items)", len(menu.Other)),
				fmt.Sprintf("  %s", strings.Join(capped(menu.Other, 5), ", ")),
			)
			if len(menu.Other) > 5 {
				lines = append(lines, fmt.Sprintf("  _...+%d more_", len(menu.Other)-5))
			}
		}

		lines = append(lines, "")
	}

	lines = append(lines, divider, "🤖 _Auto-generated by Cafe Menu Bot_")

	return Message{Text: strings.Join(lines, "\n")}
}

func capped(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

var client = resty.New().SetTimeout(time.Second * 30)

func init() {
	telemetry.InstrumentResty(client, "notify/slack")
}

// Send posts the message to a Slack incoming webhook. Delivery is
// fire-and-forget: there is no retry, and a rejected message surfaces
// the response body for the operator.
func Send(ctx context.Context, webhookURL string, msg Message) error {
	res, err := client.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(msg).
		Post(webhookURL)
	if err != nil {
		return err
	}
	if res.IsError() {
		slog.ErrorContext(ctx, "slack webhook rejected message", "status", res.Status(), "body", res.String())
		return fmt.Errorf("slack webhook returned %s: %s", res.Status(), res.String())
	}
	return nil
}
