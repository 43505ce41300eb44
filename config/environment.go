package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool

	TutorAPIKey  string
	TutorBaseURL string
	TutorModel   string
	VisionModel  string
}

var Env Environment

// LoadEnv captures the environment into Env. It must run after any .env file
// has been loaded; package main calls it first thing, so settings supplied
// only through godotenv are picked up like the rest.
func LoadEnv() {
	// Get domain from environment variable
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	Env = Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
		TutorAPIKey:   os.Getenv("TUTOR_API_KEY"),
		TutorBaseURL:  os.Getenv("TUTOR_BASE_URL"),
		TutorModel:    getenvDefault("TUTOR_MODEL", "gpt-4o-mini"),
		VisionModel:   getenvDefault("VISION_MODEL", "gpt-4o"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
