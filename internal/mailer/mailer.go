// Package mailer sends the owner notification and the submitter autoresponder
// through the configured SMTP relay.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"
	"gatorengineered/internal/logger"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured means SMTP credentials are missing. No network I/O is
// attempted in that state.
var ErrNotConfigured = errors.New("mailer: missing SMTP credentials")

// Dispatcher sends contact emails. A fresh SMTP connection is made per
// delivery; nothing is shared between requests.
type Dispatcher struct {
	cfg config.Config
}

func New(cfg config.Config) *Dispatcher {
	return &Dispatcher{cfg: cfg}
}

// Deliver sends the owner notification and the autoresponder. The two sends
// are independent attempts: the autoresponder is tried even when the owner
// message fails. The returned error is non-nil only when the owner
// notification did not go out, since that is the message the business needs.
// warning carries an autoresponder failure that did not sink the channel.
func (d *Dispatcher) Deliver(ctx context.Context, s contact.Submission) (warning string, err error) {
	if !d.cfg.SMTPConfigured() {
		return "", ErrNotConfigured
	}

	ownerMsg, err := d.ownerMessage(s)
	if err != nil {
		return "", err
	}
	autoMsg, err := d.autoresponderMessage(s)
	if err != nil {
		return "", err
	}

	client, err := d.newClient()
	if err != nil {
		return "", fmt.Errorf("mailer: build client: %w", err)
	}

	// Dial first so auth and TLS problems surface before any send.
	if err := client.DialWithContext(ctx); err != nil {
		return "", fmt.Errorf("mailer: dial: %w", err)
	}
	defer client.Close()

	ownerErr := client.Send(ownerMsg)
	autoErr := client.Send(autoMsg)

	if ownerErr != nil {
		if autoErr != nil {
			return "", fmt.Errorf("mailer: owner notification: %v; autoresponder: %w", ownerErr, autoErr)
		}
		return "", fmt.Errorf("mailer: owner notification: %w", ownerErr)
	}
	if autoErr != nil {
		return fmt.Sprintf("autoresponder: %v", autoErr), nil
	}
	return "", nil
}

func (d *Dispatcher) newClient() (*mail.Client, error) {
	client, err := mail.NewClient(d.cfg.SMTPHost,
		mail.WithPort(d.cfg.SMTPPort),
		mail.WithUsername(d.cfg.SMTPUser),
		mail.WithPassword(d.cfg.SMTPPass),
		mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}
	// Implicit TLS on the SMTPS port, STARTTLS everywhere else.
	if d.cfg.SMTPPort == 465 {
		client.SetSSLPort(true, false)
	}
	return client, nil
}

func (d *Dispatcher) ownerMessage(s contact.Submission) (*mail.Msg, error) {
	html, err := OwnerHTML(d.cfg, s)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(d.cfg.MailFromName, d.cfg.SMTPUser); err != nil {
		return nil, fmt.Errorf("mailer: from address: %w", err)
	}
	if err := m.To(d.cfg.OwnerRecipient()); err != nil {
		return nil, fmt.Errorf("mailer: owner recipient: %w", err)
	}
	if err := m.ReplyToFormat(s.Name, s.Email); err != nil {
		return nil, fmt.Errorf("mailer: reply-to: %w", err)
	}
	m.SetDate()
	m.Subject(fmt.Sprintf("New contact — %s (%s)", s.Name, s.Email))
	m.SetBodyString(mail.TypeTextHTML, html)

	if d.cfg.PDFSummary {
		if pdf, pdfErr := LeadSummaryPDF(s); pdfErr != nil {
			// The attachment is a nicety; the notification still goes out.
			logger.Warn("mailer: lead summary pdf skipped", map[string]interface{}{"error": pdfErr.Error()})
		} else if attErr := m.AttachReader("lead-summary.pdf", bytes.NewReader(pdf)); attErr != nil {
			logger.Warn("mailer: lead summary attach skipped", map[string]interface{}{"error": attErr.Error()})
		}
	}
	return m, nil
}

func (d *Dispatcher) autoresponderMessage(s contact.Submission) (*mail.Msg, error) {
	html, err := AutoresponderHTML(d.cfg, s)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(d.cfg.MailFromName, d.cfg.SMTPUser); err != nil {
		return nil, fmt.Errorf("mailer: from address: %w", err)
	}
	if err := m.To(s.Email); err != nil {
		return nil, fmt.Errorf("mailer: submitter address: %w", err)
	}
	m.SetDate()
	m.Subject("🔥 Your Business Deserves the Future — Let’s Build It Together")
	m.SetBodyString(mail.TypeTextHTML, html)
	return m, nil
}
