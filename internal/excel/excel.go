// Package excel appends contact leads to an Excel workbook table through the
// Microsoft Graph API, authenticating with an OAuth2 client-credentials grant.
package excel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotConfigured means the Microsoft 365 credentials or workbook target are
// missing. No network call is attempted in that state.
var ErrNotConfigured = errors.New("excel: missing Microsoft 365 credentials or workbook target")

// DeliveryError carries the upstream status and body of a failed Graph call.
type DeliveryError struct {
	Op     string
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("excel: %s failed with status %d: %s", e.Op, e.Status, e.Body)
}

// Logger appends lead rows to the configured workbook table. The token source
// is shared across requests so the bearer token is reused until expiry and
// re-fetched transparently after that.
type Logger struct {
	cfg    config.Config
	tokens oauth2.TokenSource
	client *http.Client
}

// New builds a Logger from config. It never fails: a logger without full
// configuration reports ErrNotConfigured on use.
func New(cfg config.Config) *Logger {
	l := &Logger{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
	if !cfg.ExcelConfigured() {
		return l
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.MS365ClientID,
		ClientSecret: cfg.MS365ClientSecret,
		TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", cfg.LoginBaseURL, cfg.MS365TenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}
	// Bound the token exchange independently of request contexts so a stuck
	// identity provider cannot hang a response forever.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, l.client)
	l.tokens = cc.TokenSource(ctx)
	return l
}

// Row builds the fixed-order row the workbook table expects.
func Row(s contact.Submission) []interface{} {
	hasWebsite := "No"
	if s.HasWebsite {
		hasWebsite = "Yes"
	}
	return []interface{}{
		s.Name,
		s.Email,
		s.Message,
		hasWebsite,
		s.Website,
		s.SubmittedAt(),
		s.Meta.Source,
		s.Meta.TimeSpentMs,
		s.Meta.UserAgent,
		s.Meta.Page,
		s.IP,
	}
}

// AppendRow adds one row to the workbook table. Exactly one attempt is made.
func (l *Logger) AppendRow(ctx context.Context, row []interface{}) error {
	if l.tokens == nil {
		return ErrNotConfigured
	}

	tok, err := l.tokens.Token()
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return &DeliveryError{Op: "token exchange", Status: rErr.Response.StatusCode, Body: string(rErr.Body)}
		}
		return fmt.Errorf("excel: token exchange: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1.0/users/%s/drive/root:/%s:/workbook/tables('%s')/rows/add",
		l.cfg.GraphBaseURL,
		url.PathEscape(l.cfg.MS365UserUPN),
		url.PathEscape(l.cfg.ExcelFilePath),
		url.PathEscape(l.cfg.ExcelTableName),
	)

	body, err := json.Marshal(map[string]interface{}{"values": [][]interface{}{row}})
	if err != nil {
		return fmt.Errorf("excel: encode row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("excel: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("excel: row append: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &DeliveryError{Op: "row append", Status: resp.StatusCode, Body: string(detail)}
	}
	return nil
}
