package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBPath         string // path of the SQLite database file
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
	QueueConsumer  bool   // whether to run the attendance event consumer
}

// Load reads configuration from the environment, sourcing an optional
// .env file first. Only JWT_SECRET is mandatory; everything else has a
// sensible default so the binary runs out of the box against a local
// database file.
func Load() Config {
	_ = godotenv.Load() // .env is optional; a missing file is not an error

	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "8080"),
		DBPath:         getenv("DB_PATH", "attendance.db"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   atoi(getenv("ACCESS_TOKEN_TTL_MIN", "30")),
		RefreshTTLDays: atoi(getenv("REFRESH_TOKEN_TTL_DAYS", "7")),
		BcryptCost:     atoi(getenv("BCRYPT_COST", "10")),
		QueueConsumer:  getenv("QUEUE_CONSUMER", "false") == "true",
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
