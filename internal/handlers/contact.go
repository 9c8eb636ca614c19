package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"
	"gatorengineered/internal/excel"
	"gatorengineered/internal/logger"
	"gatorengineered/internal/mailer"
	sentryutil "gatorengineered/internal/sentry"

	"github.com/tomasen/realip"
)

// LeadLogger is the spreadsheet delivery channel.
type LeadLogger interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// MailDispatcher is the email delivery channel. warning reports a partial
// problem (autoresponder failed) that did not sink the channel.
type MailDispatcher interface {
	Deliver(ctx context.Context, s contact.Submission) (warning string, err error)
}

// ContactAPI handles POST /api/contact: decode, gate, validate, normalize,
// fan out to the two delivery channels and aggregate the outcome.
type ContactAPI struct {
	cfg   config.Config
	gate  contact.Gate
	leads LeadLogger
	mails MailDispatcher
}

func NewContactAPI(cfg config.Config, leads LeadLogger, mails MailDispatcher) *ContactAPI {
	return &ContactAPI{
		cfg:   cfg,
		gate:  contact.Gate{MinDwell: cfg.AntispamMinDwell},
		leads: leads,
		mails: mails,
	}
}

type contactResponse struct {
	Ok         bool   `json:"ok"`
	Skipped    bool   `json:"skipped,omitempty"`
	ExcelOk    bool   `json:"excelOk"`
	EmailOk    bool   `json:"emailOk"`
	ExcelError string `json:"excelError,omitempty"`
	EmailError string `json:"emailError,omitempty"`
}

func (h *ContactAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	defer r.Body.Close()

	var payload contact.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	// The client runs the same gate, but only this one counts. A hit gets a
	// success-shaped answer so bots cannot tell acceptance from rejection.
	if reason := h.gate.Evaluate(payload); reason != "" {
		logger.Info("contact: submission discarded", map[string]interface{}{
			"reason": reason,
			"page":   payload.Meta.Page,
		})
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "skipped": true})
		return
	}

	if vErr := contact.Validate(payload, true); vErr != nil {
		logger.Info("contact: validation failed", map[string]interface{}{"field": vErr.Field})
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid or missing fields"})
		return
	}

	sub := contact.Normalize(payload, realip.FromRequest(r))
	outcome := h.deliver(sub)

	if !outcome.Delivered() {
		logger.Error("contact: all delivery channels failed", map[string]interface{}{
			"excel": outcome.ExcelError,
			"email": outcome.EmailError,
		})
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":      "Logging and email both failed",
			"excelError": outcome.ExcelError,
			"emailError": outcome.EmailError,
		})
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Ok:         true,
		ExcelOk:    outcome.ExcelOk,
		EmailOk:    outcome.EmailOk,
		ExcelError: outcome.ExcelError,
		EmailError: outcome.EmailError,
	})
}

// deliver attempts both channels concurrently, each bounded by its own
// deadline and detached from the request context so a client hangup cannot
// abort a delivery already in flight. Each channel runs exactly once; a
// failure in one never prevents the other.
func (h *ContactAPI) deliver(sub contact.Submission) contact.Outcome {
	var (
		outcome contact.Outcome
		wg      sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DeliveryTimeout)
		defer cancel()
		if err := h.leads.AppendRow(ctx, excel.Row(sub)); err != nil {
			outcome.ExcelError = err.Error()
			h.reportChannelError("excel", err)
			return
		}
		outcome.ExcelOk = true
	}()

	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.cfg.DeliveryTimeout)
		defer cancel()
		warning, err := h.mails.Deliver(ctx, sub)
		if err != nil {
			outcome.EmailError = err.Error()
			h.reportChannelError("email", err)
			return
		}
		outcome.EmailOk = true
		outcome.EmailError = warning
		if warning != "" {
			logger.Warn("contact: email partially delivered", map[string]interface{}{"warning": warning})
		}
	}()

	wg.Wait()
	return outcome
}

func (h *ContactAPI) reportChannelError(channel string, err error) {
	extra := map[string]interface{}{"channel": channel, "error": err.Error()}
	if errors.Is(err, excel.ErrNotConfigured) || errors.Is(err, mailer.ErrNotConfigured) {
		// Configuration gaps are an operator problem, not an upstream outage.
		logger.Error("contact: channel not configured", extra)
		return
	}
	logger.Error("contact: delivery failed", extra)
	sentryutil.CaptureError(err, map[string]string{"channel": channel})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
