package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SMTPHost != "smtp.office365.com" || cfg.SMTPPort != 587 {
		t.Errorf("unexpected SMTP defaults: %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.ExcelTableName != "Table1" {
		t.Errorf("expected default table name Table1, got %q", cfg.ExcelTableName)
	}
	if cfg.AntispamMinDwell != 3*time.Second {
		t.Errorf("expected 3s dwell threshold, got %v", cfg.AntispamMinDwell)
	}
	if cfg.BookingLink != "#" {
		t.Errorf("expected '#' booking fallback, got %q", cfg.BookingLink)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("ANTISPAM_MIN_DWELL", "5s")
	t.Setenv("PDF_SUMMARY", "false")

	cfg := FromEnv()

	if cfg.Port != "9090" || cfg.SMTPPort != 465 {
		t.Errorf("overrides not applied: port=%s smtp=%d", cfg.Port, cfg.SMTPPort)
	}
	if cfg.AntispamMinDwell != 5*time.Second {
		t.Errorf("dwell override not applied: %v", cfg.AntispamMinDwell)
	}
	if cfg.PDFSummary {
		t.Error("PDF_SUMMARY=false not applied")
	}
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("ANTISPAM_MIN_DWELL", "soon")

	cfg := FromEnv()

	if cfg.SMTPPort != 587 {
		t.Errorf("bad int should fall back to default, got %d", cfg.SMTPPort)
	}
	if cfg.AntispamMinDwell != 3*time.Second {
		t.Errorf("bad duration should fall back to default, got %v", cfg.AntispamMinDwell)
	}
}

func TestChannelConfiguration(t *testing.T) {
	var cfg Config
	if cfg.ExcelConfigured() || cfg.SMTPConfigured() {
		t.Error("empty config must report both channels unconfigured")
	}

	cfg = Config{
		MS365TenantID: "t", MS365ClientID: "c", MS365ClientSecret: "s",
		MS365UserUPN: "u@example.com", ExcelFilePath: "Leads.xlsx",
		SMTPUser: "hello@example.com", SMTPPass: "pw",
	}
	if !cfg.ExcelConfigured() || !cfg.SMTPConfigured() {
		t.Error("fully configured channels must report configured")
	}

	cfg.ExcelFilePath = ""
	if cfg.ExcelConfigured() {
		t.Error("missing workbook path must fail excel configuration")
	}
}

func TestOwnerRecipientFallback(t *testing.T) {
	cfg := Config{SMTPUser: "hello@example.com"}
	if cfg.OwnerRecipient() != "hello@example.com" {
		t.Error("owner recipient should fall back to SMTP user")
	}
	cfg.MailToOwner = "owner@example.com"
	if cfg.OwnerRecipient() != "owner@example.com" {
		t.Error("explicit owner recipient should win")
	}
}

func TestServiceLink(t *testing.T) {
	cfg := Config{BookingLink: "https://cal.example"}
	if cfg.ServiceLink("") != "https://cal.example" {
		t.Error("empty service link should fall back to booking link")
	}
	if cfg.ServiceLink("https://cal.example/web") != "https://cal.example/web" {
		t.Error("set service link should be returned as-is")
	}
}
