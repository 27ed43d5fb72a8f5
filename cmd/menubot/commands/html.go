package commands

import (
	"log/slog"
	"os"

	"menubot-backend/lib/browserutil"
	"menubot-backend/lib/scrapers/bonappetit"
	"menubot-backend/lib/serviceutil"
	"menubot-backend/services/render"

	"github.com/spf13/cobra"
)

var htmlOut *string
var htmlFooter *string
var htmlOpen *bool

func init() {
	htmlOut = htmlCmd.Flags().String("out", "weekly_lunch_menu.html", "The file to write the rendered menu to.")
	htmlFooter = htmlCmd.Flags().String("footer", "🤖 Auto-generated by Cafe Menu Bot", "Footer text embedded in the page.")
	htmlOpen = htmlCmd.Flags().Bool("open", false, "Open the rendered page in the default browser.")
	rootCmd.AddCommand(htmlCmd)
}

var htmlCmd = &cobra.Command{
	Use:   "html [--out <path>] [--footer <text>] [--open]",
	Short: "Renders this week's lunch menus to a static HTML page.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		client := bonappetit.NewClient(bonappetit.ClientOptions{})
		week := client.ScrapeWeek(cmd.Context(), cfg.Location)

		content, err := render.HTML(week, render.Options{
			Location: cfg.Location,
			Footer:   *htmlFooter,
		})
		if err != nil {
			serviceutil.Fatal("failed to render menu", err)
		}

		err = os.WriteFile(*htmlOut, []byte(content), 0644)
		if err != nil {
			serviceutil.Fatal("failed to write menu", err)
		}
		slog.Info("wrote menu", "path", *htmlOut)

		if *htmlOpen {
			err := browserutil.Open(*htmlOut)
			if err != nil {
				slog.Error("failed to open browser", "err", err)
			}
		}
	},
}
