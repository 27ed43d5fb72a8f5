package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"menubot-backend/lib/scrapers/bonappetit"

	"github.com/stretchr/testify/require"
)

func testWeek() bonappetit.WeekMenu {
	week := make(bonappetit.WeekMenu, 5)
	for i := range week {
		date := fmt.Sprintf("2024-10-%02d", 14+i)
		week[i] = bonappetit.DayMenu{
			Date:    date,
			URL:     "https://snap-palo-alto.cafebonappetit.com/cafe/" + date + "/",
			Meat:    []string{"Beef Tacos", "Kung Pao Chicken"},
			Seafood: []string{"Grilled Salmon"},
			Other:   []string{"Vegetable Stir Fry", "Garlic Mashed Potatoes"},
		}
	}
	return week
}

func manyItems(prefix string, n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return items
}

func TestTextMessage(t *testing.T) {
	msg := TextMessage(testWeek(), "palo-alto")

	require.Empty(t, msg.Blocks)
	require.Contains(t, msg.Text, "*Palo Alto Cafeteria - Weekly Lunch Menu*")
	require.Contains(t, msg.Text, "Week of 2024-10-14 to 2024-10-18")
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		require.Contains(t, msg.Text, day)
	}
	require.Contains(t, msg.Text, "*Meat* (2 items)")
	require.Contains(t, msg.Text, "  • Beef Tacos")
	require.Contains(t, msg.Text, "<https://snap-palo-alto.cafebonappetit.com/cafe/2024-10-14/|🔗 View Full Menu>")
}

func TestTextMessageTruncation(t *testing.T) {
	week := testWeek()
	week[0].Meat = manyItems("Meat Dish", 10)
	week[0].Seafood = manyItems("Fish Dish", 7)
	week[0].Other = manyItems("Side Dish", 6)

	msg := TextMessage(week, "palo-alto")

	require.Contains(t, msg.Text, "*Meat* (10 items)")
	require.Contains(t, msg.Text, "Meat Dish 8")
	require.NotContains(t, msg.Text, "Meat Dish 9")
	require.Contains(t, msg.Text, "_...+2 more_")

	require.Contains(t, msg.Text, "Fish Dish 5")
	require.NotContains(t, msg.Text, "Fish Dish 6")

	require.Contains(t, msg.Text, "Side Dish 5")
	require.NotContains(t, msg.Text, "Side Dish 6")
	require.Contains(t, msg.Text, "_...+1 more_")
}

func TestTextMessageErrorDay(t *testing.T) {
	week := testWeek()
	week[2].Error = "context deadline exceeded"
	week[2].Meat = nil
	week[2].Seafood = nil
	week[2].Other = nil

	msg := TextMessage(week, "palo-alto")

	require.Contains(t, msg.Text, "⚠️ Could not fetch menu: context deadline exceeded")
}

func TestBlockMessage(t *testing.T) {
	msg := BlockMessage(testWeek(), "palo-alto")

	require.Empty(t, msg.Text)
	require.Equal(t, "header", msg.Blocks[0].Type)
	require.Contains(t, msg.Blocks[0].Text.Text, "Palo Alto - Weekly Lunch Menu")

	var dayHeaders, dividers int
	for _, b := range msg.Blocks {
		if b.Type == "divider" {
			dividers++
		}
		if b.Accessory != nil {
			dayHeaders++
			require.Equal(t, "button", b.Accessory.Type)
			require.NotEmpty(t, b.Accessory.URL)
		}
	}
	require.Equal(t, 5, dayHeaders)
	// one divider after the header context plus one per day
	require.Equal(t, 6, dividers)
}

func TestBlockMessageTruncation(t *testing.T) {
	week := testWeek()
	week[0].Meat = manyItems("Meat Dish", 8)

	msg := BlockMessage(week, "palo-alto")

	serialized, err := json.Marshal(msg)
	require.NoError(t, err)
	require.Contains(t, string(serialized), "Meat Dish 6")
	require.NotContains(t, string(serialized), "Meat Dish 7")
	require.Contains(t, string(serialized), "_(+2)_")
}

func TestSend(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("content-type")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	err := Send(context.Background(), server.URL, TextMessage(testWeek(), "palo-alto"))

	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Contains(t, gotBody, `"text"`)
}

func TestSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid_blocks"))
	}))
	defer server.Close()

	err := Send(context.Background(), server.URL, Message{Text: "hello"})

	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "invalid_blocks"))
}
