package commands

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// location key, resolved to a cafe subdomain by the scraper
	Location string
	// Slack incoming webhook, required only for the slack command
	WebhookURL string
}

func loadConfig() Config {
	// a .env file is a convenience for local runs, the real
	// configuration surface is the process environment
	_ = godotenv.Load()

	location := os.Getenv("CAFE_LOCATION")
	if location == "" {
		location = "palo-alto"
	}

	return Config{
		Location:   location,
		WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
	}
}
