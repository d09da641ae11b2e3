package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/payflow-dev/payflow/internal/commands"
)

func main() {
	// Optional .env for LOG_LEVEL / LOG_FORMAT overrides.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
