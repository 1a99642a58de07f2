package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port       = "8080"
	ContentDir = "./articles"

	// CatalogPath is empty when the built-in catalog is used.
	CatalogPath = ""

	SiteTitle = "The Dugout Diaries"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Port = getEnv("PORT", "8080")
	ContentDir = getEnv("CONTENT_DIR", "./articles")
	CatalogPath = getEnv("CATALOG_PATH", "")
	SiteTitle = getEnv("SITE_TITLE", "The Dugout Diaries")
}
