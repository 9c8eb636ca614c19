package contact

import "strings"

// Normalize turns a validated wire payload into a canonical Submission:
// fields trimmed, the hasWebsite tri-state collapsed to a strict bool, and
// the website dropped when the submitter said they have none.
func Normalize(p Payload, ip string) Submission {
	hasWebsite := p.HasWebsite.Bool()
	website := strings.TrimSpace(p.Website)
	if !hasWebsite {
		website = ""
	}
	return Submission{
		Name:       strings.TrimSpace(p.Name),
		Email:      strings.TrimSpace(p.Email),
		Message:    strings.TrimSpace(p.Message),
		HasWebsite: hasWebsite,
		Website:    website,
		Phone:      strings.TrimSpace(p.Phone),
		IP:         ip,
		Meta:       p.Meta,
	}
}
