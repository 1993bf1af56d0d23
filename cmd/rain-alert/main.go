package main

import (
	"github.com/joho/godotenv"

	"github.com/pkolodziej/rain-alert/internal/cli"
)

func main() {
	// .env is optional; CI injects TG_TOKEN and TG_CHAT directly.
	_ = godotenv.Load()

	cli.Execute()
}
