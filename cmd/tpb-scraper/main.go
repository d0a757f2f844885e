package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tpb-scraper/cmd/tpb-scraper/commands"
	"tpb-scraper/lib/serviceutil"
	"tpb-scraper/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	ctx := serviceutil.SignalContext(context.Background())

	tel, err := telemetry.SetupFromEnv(ctx, "tpb-scraper")
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no telemetry config found, telemetry is disabled")
	} else if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	err = commands.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := tel.Shutdown(shutdownCtx); shutdownErr != nil {
		slog.Warn("failed to flush telemetry", "err", shutdownErr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
