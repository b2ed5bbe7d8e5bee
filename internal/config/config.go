package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(Load))

// Config holds application configuration.
type Config struct {
	AppName     string
	Environment string
	HTTPAddr    string

	// APIPrivateKey gates the internal provisioning API.
	APIPrivateKey string
	// SessionSecret signs the auth session cookie.
	SessionSecret    string
	AuthCookieSecure bool

	AssetsPath  string
	InvoicesDir string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "billing"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		APIPrivateKey:    strings.TrimSpace(getenv("API_PRIVATE_KEY", "")),
		SessionSecret:    strings.TrimSpace(getenv("SESSION_SECRET", "")),
		AuthCookieSecure: authCookieSecure,
		AssetsPath:       getenv("ASSETS_PATH", "assets"),
		InvoicesDir:      getenv("INVOICES_DIR", "var/invoices"),
		DBType:           getenv("DATABASE_TYPE", "postgres"),
		DBHost:           getenv("DATABASE_HOST", "localhost"),
		DBPort:           getenv("DATABASE_PORT", "5432"),
		DBName:           getenv("DATABASE_NAME", "billing"),
		DBUser:           getenv("DATABASE_USER", "postgres"),
		DBPassword:       getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:        getenv("DATABASE_SSLMODE", "disable"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
