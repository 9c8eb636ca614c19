package mailer

import (
	"context"
	"errors"
	"testing"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"
)

func TestDeliver_NotConfigured(t *testing.T) {
	d := New(config.Config{SMTPHost: "smtp.office365.com", SMTPPort: 587})
	_, err := d.Deliver(context.Background(), contact.Submission{Name: "J", Email: "j@x.com", Message: "m"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("missing credentials must fail before any network I/O, got %v", err)
	}
}

func TestOwnerMessage_Headers(t *testing.T) {
	cfg := config.Config{
		SMTPHost: "smtp.office365.com", SMTPPort: 587,
		SMTPUser: "hello@gatorengineered.com", SMTPPass: "secret",
		MailFromName: "Gator Engineered",
		MailToOwner:  "owner@gatorengineered.com",
		BookingLink:  "https://cal.example/15min",
	}
	d := New(cfg)
	s := contact.Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	m, err := d.ownerMessage(s)
	if err != nil {
		t.Fatalf("build owner message: %v", err)
	}
	if got := m.GetGenHeader("Subject"); len(got) == 0 || got[0] != "New contact — Jane (jane@x.com)" {
		t.Errorf("unexpected subject: %v", got)
	}
	if got := m.GetToString(); len(got) == 0 || got[0] != "<owner@gatorengineered.com>" {
		t.Errorf("unexpected recipient: %v", got)
	}
}

func TestOwnerMessage_FallsBackToSMTPUser(t *testing.T) {
	cfg := config.Config{
		SMTPHost: "smtp.office365.com", SMTPPort: 587,
		SMTPUser: "hello@gatorengineered.com", SMTPPass: "secret",
		MailFromName: "Gator Engineered",
	}
	d := New(cfg)
	m, err := d.ownerMessage(contact.Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("build owner message: %v", err)
	}
	if got := m.GetToString(); len(got) == 0 || got[0] != "<hello@gatorengineered.com>" {
		t.Errorf("owner recipient should fall back to SMTP user: %v", got)
	}
}

func TestAutoresponderMessage_GoesToSubmitter(t *testing.T) {
	cfg := config.Config{
		SMTPHost: "smtp.office365.com", SMTPPort: 587,
		SMTPUser: "hello@gatorengineered.com", SMTPPass: "secret",
		MailFromName: "Gator Engineered",
	}
	d := New(cfg)
	m, err := d.autoresponderMessage(contact.Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("build autoresponder: %v", err)
	}
	if got := m.GetToString(); len(got) == 0 || got[0] != "<jane@x.com>" {
		t.Errorf("autoresponder must address the submitter: %v", got)
	}
}

func TestMessages_RejectBadSubmitterAddress(t *testing.T) {
	cfg := config.Config{
		SMTPHost: "smtp.office365.com", SMTPPort: 587,
		SMTPUser: "hello@gatorengineered.com", SMTPPass: "secret",
		MailFromName: "Gator Engineered",
	}
	d := New(cfg)
	if _, err := d.autoresponderMessage(contact.Submission{Name: "J", Email: "not an address", Message: "m"}); err == nil {
		t.Error("unparseable submitter address should fail message construction")
	}
}
