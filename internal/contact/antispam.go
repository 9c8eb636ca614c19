package contact

import "time"

// Gate is the server-side anti-spam check. The client runs its own copy, but
// only this one is authoritative.
type Gate struct {
	// MinDwell is the minimum believable time between form open and submit.
	// Zero disables the timing check.
	MinDwell time.Duration
}

// Evaluate returns a non-empty reason when the submission should be silently
// discarded. Callers answer a success-shaped response on a hit so scripted
// senders cannot tell acceptance from rejection.
func (g Gate) Evaluate(p Payload) string {
	if p.Honey != "" || p.Company != "" {
		return "honeypot"
	}
	if g.MinDwell > 0 && p.Meta.TimeSpentMs > 0 &&
		time.Duration(p.Meta.TimeSpentMs)*time.Millisecond < g.MinDwell {
		return "dwell"
	}
	return ""
}
