package main

import (
	"gpfinder-backend/cmd/gpfinder/commands"
	"gpfinder-backend/lib/serviceutil"
	"gpfinder-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(ctx, "gpfinder")
	commands.ExecuteContext(ctx)
}
