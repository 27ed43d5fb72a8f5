package commands

import (
	"os"

	"menubot-backend/lib/scrapers/bonappetit"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes this week's lunch menus and prints a per-day summary.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		client := bonappetit.NewClient(bonappetit.ClientOptions{})
		week := client.ScrapeWeek(cmd.Context(), cfg.Location)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Meat", "Seafood", "Other", "Error"})

		for _, day := range week {
			t.AppendRow(table.Row{
				day.Date,
				len(day.Meat),
				len(day.Seafood),
				len(day.Other),
				day.Error,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
