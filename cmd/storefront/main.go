package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"amana-bookstore/internal/shared"
	"amana-bookstore/internal/storefront/client"
	"amana-bookstore/internal/storefront/tui"
	"amana-bookstore/pkg/events"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	baseURL := getEnv("API_BASE_URL", "http://localhost:8080")
	userID := getEnv("STOREFRONT_USER_ID", shared.GuestUserID)

	api := client.New(baseURL, userID)
	bus := events.NewBus()

	if err := tui.Run(api, bus); err != nil {
		log.Fatalf("storefront exited with error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
