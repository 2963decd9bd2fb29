package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	Leave        LeaveConfig
	Roles        RoleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         int
	Env          string
	LogLevel     string
	FrontendURL  string
	CORSOrigins  []string
	StoreBackend string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in was configured.
func (c OAuth2GoogleConfig) Enabled() bool {
	return c.ClientID != ""
}

// LeaveConfig holds the leave workflow settings.
type LeaveConfig struct {
	Limits                  leave.Limits
	RecentLimit             int
	ReopenOnTeacherDecision bool
	LookupConcurrency       int
}

// RoleConfig maps sign-in e-mails to roles.
type RoleConfig struct {
	StudentDomain string
	HODKeyword    string
	HODEmails     []string
	ClerkEmails   []string
	TeacherEmails []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	dbMaxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "leave_approval"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	frontendURL := getEnv("FRONTEND_URL", "http://localhost:3000")
	corsOrigins := getEnvSlice("CORS_ORIGINS")
	if len(corsOrigins) == 0 {
		corsOrigins = []string{frontendURL}
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		FrontendURL:  frontendURL,
		CORSOrigins:  corsOrigins,
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Leave workflow configuration
	limits := leave.DefaultLimits()
	for key, leaveType := range map[string]leave.LeaveType{
		"LEAVE_MAX_DAYS_ANNUAL":   leave.LeaveTypeAnnual,
		"LEAVE_MAX_DAYS_SICK":     leave.LeaveTypeSick,
		"LEAVE_MAX_DAYS_PERSONAL": leave.LeaveTypePersonal,
	} {
		days, err := getEnvInt(key, limits.PerType[leaveType])
		if err != nil {
			return nil, err
		}
		limits.PerType[leaveType] = days
	}
	if limits.Default, err = getEnvInt("LEAVE_MAX_DAYS_DEFAULT", limits.Default); err != nil {
		return nil, err
	}

	recentLimit, err := getEnvInt("LEAVE_RECENT_LIMIT", 3)
	if err != nil {
		return nil, err
	}
	lookupConcurrency, err := getEnvInt("LEAVE_LOOKUP_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}
	reopen, err := strconv.ParseBool(getEnv("LEAVE_REOPEN_ON_TEACHER_DECISION", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_REOPEN_ON_TEACHER_DECISION: %w", err)
	}

	config.Leave = LeaveConfig{
		Limits:                  limits,
		RecentLimit:             recentLimit,
		ReopenOnTeacherDecision: reopen,
		LookupConcurrency:       lookupConcurrency,
	}

	// Role detection
	config.Roles = RoleConfig{
		StudentDomain: getEnv("ROLE_STUDENT_DOMAIN", ""),
		HODKeyword:    getEnv("ROLE_HOD_KEYWORD", "hod"),
		HODEmails:     getEnvSlice("ROLE_HOD_EMAILS"),
		ClerkEmails:   getEnvSlice("ROLE_CLERK_EMAILS"),
		TeacherEmails: getEnvSlice("ROLE_TEACHER_EMAILS"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	switch c.App.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q", StoreMemory, StorePostgres)
	}

	if c.OAuth2Google.Enabled() {
		if c.OAuth2Google.ClientSecret == "" {
			return fmt.Errorf("CLIENT_SECRET is required")
		}
		if c.OAuth2Google.RedirectURL == "" {
			return fmt.Errorf("REDIRECT_URL is required")
		}
		if len(c.OAuth2Google.Scopes) == 0 {
			return fmt.Errorf("SCOPES is required")
		}
	}

	for t, days := range c.Leave.Limits.PerType {
		if days <= 0 {
			return fmt.Errorf("max days for %s must be positive", t)
		}
	}
	if c.Leave.Limits.Default <= 0 {
		return fmt.Errorf("LEAVE_MAX_DAYS_DEFAULT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel converts LOG_LEVEL to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
