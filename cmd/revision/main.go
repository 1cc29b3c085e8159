package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"leetcode-revision/internal/app"
	"leetcode-revision/internal/di"
)

func main() {
	application, err := di.InitializeApp()
	if err != nil {
		log.Printf("❌ failed to initialize application: %v", err)
		os.Exit(app.ExitFatal)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = application.Run(ctx)
	stop()

	code := app.ExitCode(err)
	if code == app.ExitFatal {
		log.Printf("❌ fatal error: %v", err)
	}
	os.Exit(code)
}
