package main

import (
	"context"
	"log"
	"os"

	"github.com/yungbote/charmworks-backend/internal/app"
	"github.com/yungbote/charmworks-backend/internal/logger"
)

func main() {
	mode := os.Getenv("LOG_MODE")
	if mode == "" {
		mode = "development"
	}
	baseLog, err := logger.New(mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer baseLog.Sync()

	application, err := app.New(baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize application", "error", err)
	}
	defer application.Close()

	application.Start(context.Background())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := application.Run(":" + port); err != nil {
		baseLog.Fatal("HTTP server exited", "error", err)
	}
}
