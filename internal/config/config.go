package config

import (
	"os"
)

type Config struct {
	// A1.art API
	A1APIKey  string
	A1BaseURL string
	// Region deployment variant; "cn" attaches the section header on status
	// queries.
	A1Region string

	// Defaults applied when a raw create request omits provider parameters.
	DefaultAppID      string
	DefaultVersionID  string
	DefaultCnetFormID string

	// Collaborators
	TemplatesPath string
	InputDir      string
	StaticDir     string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads configuration from the environment. An absent API key is not an
// error here: the service must still start and the provider will reject the
// outbound calls itself.
func Load() *Config {
	return &Config{
		A1APIKey:  getEnv("API_KEY", ""),
		A1BaseURL: getEnv("A1_API_BASE_URL", "https://a1.art/open-api/v1/a1"),
		A1Region:  getEnv("A1_REGION", "cn"),

		DefaultAppID:      getEnv("A1_DEFAULT_APP_ID", "1920079111241039873"),
		DefaultVersionID:  getEnv("A1_DEFAULT_VERSION_ID", "1920079111245234177"),
		DefaultCnetFormID: getEnv("A1_DEFAULT_CNET_FORM_ID", "17466175263110005"),

		TemplatesPath: getEnv("TEMPLATES_PATH", "templates.json"),
		InputDir:      getEnv("INPUT_DIR", "input"),
		StaticDir:     getEnv("STATIC_DIR", "static"),

		Port:        getEnv("PORT", "1989"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:1989"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
