package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	JWTSecret           string
	JWTAccessExpiration time.Duration
	AdminEmail          string
	AdminPasswordHash   string
	FrontendURL         string
	MongoDBURI          string
	MongoDBDatabase     string

	// Calendar access
	CalendarSource  string // "google" or "ics"
	CredentialsFile string // Google "installed app" client secret JSON
	TokenFile       string
	ICSDir          string
	MaxResults      int64

	// Report run
	ReferenceOffset    string
	InclusionThreshold float64
	FetchConcurrency   int
	FetchTimeout       time.Duration
	RulesFile          string

	// Scheduled reports
	RosterFile         string
	ReportSchedule     string
	ReportLookbackDays int
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	accessExp, _ := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION", "15m"))
	fetchTimeout, _ := time.ParseDuration(getEnv("FETCH_TIMEOUT", "30s"))

	return &Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiration: accessExp,
		AdminEmail:          getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
		MongoDBURI:          getEnv("MONGODB_URI", ""),
		MongoDBDatabase:     getEnv("MONGODB_DATABASE", "meetinghours"),

		CalendarSource:  getEnv("CALENDAR_SOURCE", "google"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		TokenFile:       getEnv("GOOGLE_TOKEN_FILE", "credentials.json"),
		ICSDir:          getEnv("ICS_DIR", "calendars"),
		MaxResults:      int64(getEnvInt("MAX_RESULTS", 1000)),

		ReferenceOffset:    getEnv("REFERENCE_OFFSET", "-07:00"),
		InclusionThreshold: getEnvFloat("INCLUSION_THRESHOLD", 1.0),
		FetchConcurrency:   getEnvInt("FETCH_CONCURRENCY", 4),
		FetchTimeout:       fetchTimeout,
		RulesFile:          getEnv("RULES_FILE", ""),

		RosterFile:         getEnv("ROSTER_FILE", ""),
		ReportSchedule:     getEnv("REPORT_SCHEDULE", ""),
		ReportLookbackDays: getEnvInt("REPORT_LOOKBACK_DAYS", 7),
	}
}

// Location returns the fixed zone used for window day boundaries.
func (c *Config) Location() (*time.Location, error) {
	return ParseOffset(c.ReferenceOffset)
}

// ParseOffset turns "-07:00", "+0530", "-7" or "UTC" into a fixed zone.
func ParseOffset(s string) (*time.Location, error) {
	orig := strings.TrimSpace(s)
	s = orig
	if s == "" || strings.EqualFold(s, "UTC") || s == "Z" {
		return time.UTC, nil
	}

	sign, signChar := 1, "+"
	switch s[0] {
	case '-':
		sign, signChar = -1, "-"
		s = s[1:]
	case '+':
		s = s[1:]
	}

	var hours, minutes int
	var err error
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		hours, err = strconv.Atoi(parts[0])
		if err == nil {
			minutes, err = strconv.Atoi(parts[1])
		}
	case len(s) == 4:
		hours, err = strconv.Atoi(s[:2])
		if err == nil {
			minutes, err = strconv.Atoi(s[2:])
		}
	default:
		hours, err = strconv.Atoi(s)
	}
	if err != nil || hours < 0 || hours > 14 || minutes < 0 || minutes >= 60 {
		return nil, fmt.Errorf("invalid UTC offset %q", orig)
	}

	offset := sign * (hours*3600 + minutes*60)
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", signChar, hours, minutes), offset), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultValue
}
