package main

import (
	"context"
	"log"

	"careerpath-backend/internal/bootstrap"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/server"
	"careerpath-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
