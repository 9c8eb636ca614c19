package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cfg is the global configuration loaded at startup.
var Cfg Config

// Config holds all application configuration.
type Config struct {
	// Server
	Port    string
	BaseURL string

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string

	// Microsoft 365 / Graph (Excel lead log)
	MS365TenantID     string
	MS365ClientID     string
	MS365ClientSecret string
	MS365UserUPN      string
	ExcelFilePath     string
	ExcelTableName    string

	// Graph endpoints (overridable for tests)
	LoginBaseURL string
	GraphBaseURL string

	// SMTP
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Mail content
	MailFromName   string
	MailToOwner    string
	BookingLink    string
	BookLinkCrypto string
	BookLinkWeb    string
	BookLinkAI     string
	BookLinkSEO    string
	PDFSummary     bool

	// Anti-spam
	AntispamMinDwell time.Duration

	// Delivery
	DeliveryTimeout time.Duration
	MaxBodyBytes    int64

	// Rate limiter
	RateLimitRPS   int
	RateLimitBurst int

	// HTTP extras
	CORSOrigin  string
	GzipEnabled bool
}

// Load reads .env (if present) and populates Cfg from environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables")
	}

	Cfg = FromEnv()

	log.Printf("config: loaded (port=%s, excel=%v, smtp=%v)",
		Cfg.Port, Cfg.ExcelConfigured(), Cfg.SMTPConfigured())
}

// FromEnv builds a Config from the current environment without touching Cfg.
func FromEnv() Config {
	return Config{
		Port:    envOr("PORT", "8080"),
		BaseURL: envOr("BASE_URL", "https://gatorengineered.com"),

		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: envOr("SENTRY_ENVIRONMENT", "production"),
		SentryRelease:     envOr("SENTRY_RELEASE", "gatorengineered@1.0.0"),

		MS365TenantID:     os.Getenv("MS365_TENANT_ID"),
		MS365ClientID:     os.Getenv("MS365_CLIENT_ID"),
		MS365ClientSecret: os.Getenv("MS365_CLIENT_SECRET"),
		MS365UserUPN:      os.Getenv("MS365_USER_UPN"),
		ExcelFilePath:     os.Getenv("EXCEL_FILE_PATH"),
		ExcelTableName:    envOr("EXCEL_TABLE_NAME", "Table1"),

		LoginBaseURL: envOr("MS_LOGIN_BASE_URL", "https://login.microsoftonline.com"),
		GraphBaseURL: envOr("MS_GRAPH_BASE_URL", "https://graph.microsoft.com"),

		SMTPHost: envOr("SMTP_HOST", "smtp.office365.com"),
		SMTPPort: envInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		MailFromName:   envOr("MAIL_FROM_NAME", "Gator Engineered"),
		MailToOwner:    os.Getenv("MAIL_TO_OWNER"),
		BookingLink:    envOr("BOOKING_LINK", "#"),
		BookLinkCrypto: os.Getenv("BOOK_LINK_CRYPTO"),
		BookLinkWeb:    os.Getenv("BOOK_LINK_WEB"),
		BookLinkAI:     os.Getenv("BOOK_LINK_AI"),
		BookLinkSEO:    os.Getenv("BOOK_LINK_SEO"),
		PDFSummary:     envBool("PDF_SUMMARY", true),

		AntispamMinDwell: envDuration("ANTISPAM_MIN_DWELL", 3*time.Second),

		DeliveryTimeout: envDuration("DELIVERY_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(envInt("MAX_BODY_BYTES", 64<<10)),

		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 30),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 60),

		CORSOrigin:  os.Getenv("CORS_ORIGIN"),
		GzipEnabled: envBool("GZIP_ENABLED", true),
	}
}

// ExcelConfigured reports whether the Graph lead log has everything it needs.
func (c Config) ExcelConfigured() bool {
	return c.MS365TenantID != "" && c.MS365ClientID != "" && c.MS365ClientSecret != "" &&
		c.MS365UserUPN != "" && c.ExcelFilePath != ""
}

// SMTPConfigured reports whether the mail relay has credentials.
func (c Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

// OwnerRecipient returns the owner notification address, falling back to the
// SMTP user.
func (c Config) OwnerRecipient() string {
	if c.MailToOwner != "" {
		return c.MailToOwner
	}
	return c.SMTPUser
}

// ServiceLink resolves a per-service CTA link, falling back to the generic
// booking link when unset.
func (c Config) ServiceLink(link string) string {
	if link != "" {
		return link
	}
	return c.BookingLink
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
