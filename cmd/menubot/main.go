package main

import (
	"log/slog"
	"os"

	"menubot-backend/cmd/menubot/commands"
	"menubot-backend/lib/serviceutil"
	"menubot-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	// telemetry.json5 is optional; without it spans and metrics
	// simply go nowhere
	tel, err := telemetry.SetupFromEnv(ctx, "menubot")
	switch {
	case err == nil:
		telemetry.InstrumentPerfStats(ctx)
		defer tel.Shutdown(ctx)
	case !os.IsNotExist(err):
		// a present but broken config deserves a diagnostic
		slog.Error("failed to set up telemetry", "err", err)
	}

	commands.ExecuteContext(ctx)
}
