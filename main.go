package main

import (
	"github.com/joho/godotenv"

	"github.com/malagasr/supply-alert/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Best effort: a missing .env is fine, the config layer falls back
	// to real environment variables.
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
