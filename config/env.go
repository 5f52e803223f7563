package config

import (
	"log"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	_ = godotenv.Load()
	// A missing .env is fine; variables may come from the environment itself.
	log.Println("Environment variables loaded (if .env present)")
}
