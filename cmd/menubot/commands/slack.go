package commands

import (
	"fmt"
	"log/slog"
	"os"

	"menubot-backend/lib/scrapers/bonappetit"
	"menubot-backend/lib/serviceutil"
	"menubot-backend/services/notify"

	"github.com/spf13/cobra"
)

var slackBlocks *bool

func init() {
	slackBlocks = slackCmd.Flags().Bool("blocks", false, "Send the rich block-formatted message instead of plain text.")
	rootCmd.AddCommand(slackCmd)
}

var slackCmd = &cobra.Command{
	Use:   "slack [--blocks]",
	Short: "Posts this week's lunch menus to a Slack webhook.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		// fail on missing configuration before any scraping happens
		if cfg.WebhookURL == "" {
			fmt.Fprintln(os.Stderr, "SLACK_WEBHOOK_URL environment variable is required")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "To set up a Slack webhook:")
			fmt.Fprintln(os.Stderr, "1. Go to https://api.slack.com/apps")
			fmt.Fprintln(os.Stderr, "2. Create a new app or select an existing one")
			fmt.Fprintln(os.Stderr, "3. Add the 'Incoming Webhooks' feature")
			fmt.Fprintln(os.Stderr, "4. Create a webhook for your channel")
			fmt.Fprintln(os.Stderr, "5. Set the SLACK_WEBHOOK_URL environment variable")
			os.Exit(1)
		}

		client := bonappetit.NewClient(bonappetit.ClientOptions{})
		week := client.ScrapeWeek(cmd.Context(), cfg.Location)

		for _, day := range week {
			slog.Info("scraped day",
				"date", day.Date,
				"meat", len(day.Meat),
				"seafood", len(day.Seafood),
				"other", len(day.Other),
			)
		}

		msg := notify.TextMessage(week, cfg.Location)
		if *slackBlocks {
			msg = notify.BlockMessage(week, cfg.Location)
		}

		err := notify.Send(cmd.Context(), cfg.WebhookURL, msg)
		if err != nil {
			serviceutil.Fatal("failed to send message to slack", err)
		}
		slog.Info("message sent to slack")
	},
}
