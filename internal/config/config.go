package config

import "os"

// Config holds the small set of runtime settings the site needs. Values
// come from the environment (a .env file is loaded by main before this
// runs).
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=nira_gabay port=5432 sslmode=disable TimeZone=Asia/Jerusalem"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:       getEnv("SITE_URL", "https://nira-gabay.co.il"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
