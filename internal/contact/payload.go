// Package contact holds the submission types and the pure pipeline stages:
// normalization, validation and the anti-spam gate. No I/O happens here.
package contact

import (
	"encoding/json"
	"time"
)

// Meta carries client-side context attached to a submission.
type Meta struct {
	Page        string `json:"page,omitempty"`
	TS          string `json:"ts,omitempty"`
	UserAgent   string `json:"userAgent,omitempty"`
	TimeSpentMs int64  `json:"timeSpentMs,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Payload is the wire shape of a contact submission. HasWebsite accepts both
// a boolean and the "yes"/"no" strings the older form variants send.
type Payload struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Message    string   `json:"message"`
	HasWebsite TriState `json:"hasWebsite"`
	Website    string   `json:"website,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Honey      string   `json:"honey,omitempty"`
	Company    string   `json:"company,omitempty"`
	Meta       Meta     `json:"meta,omitempty"`
}

// TriState decodes a JSON bool or string without failing the whole payload
// on an unexpected shape. Raw is kept verbatim for normalization.
type TriState struct {
	Raw string
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			t.Raw = "yes"
		} else {
			t.Raw = "no"
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Raw = s
		return nil
	}
	t.Raw = ""
	return nil
}

func (t TriState) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Bool())
}

// Bool applies the canonical coercion: "yes" → true, anything else → false.
func (t TriState) Bool() bool {
	return t.Raw == "yes"
}

// Submission is a normalized, validated payload ready for delivery.
type Submission struct {
	Name       string
	Email      string
	Message    string
	HasWebsite bool
	Website    string
	Phone      string
	IP         string
	Meta       Meta
}

// SubmittedAt returns the client timestamp when present, otherwise now.
func (s Submission) SubmittedAt() string {
	if s.Meta.TS != "" {
		return s.Meta.TS
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// Outcome records the result of the two delivery channels for one request.
// It is never persisted.
type Outcome struct {
	ExcelOk    bool
	ExcelError string
	EmailOk    bool
	EmailError string
}

// Delivered reports whether at least one channel got the lead through.
func (o Outcome) Delivered() bool {
	return o.ExcelOk || o.EmailOk
}
