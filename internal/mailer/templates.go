package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gatorengineered/internal/config"
	"gatorengineered/internal/contact"
)

// Email palette, kept in sync with the site. Inline styles only: most mail
// clients strip <style> blocks outside the header hack.
const (
	colCardBg   = "#0f1b33"
	colHeaderBg = "#0d172a"
	colText     = "#e6eefc"
	colTextSub  = "#c6d5f7"
	colMuted    = "#8fa3c6"
	colBtnBg    = "#18356d"
	colChipBg   = "#0c1730"
	colChipLine = "#29406e"
	colCardLine = "#213055"
	colAccent   = "#9cc6ff"
)

type featureCard struct {
	Title string
	Body  string
	CTA   string
	Href  string
}

type emailData struct {
	Name        string
	Email       string
	Message     string
	HasWebsite  bool
	Website     string
	IP          string
	ShowDetails bool
	CardRows    [][]featureCard
	BookingLink string

	// palette
	CardBg, HeaderBg, Text, TextSub, Muted, BtnBg, ChipBg, ChipLine, CardLine, Accent string
}

var emailTpl = template.Must(template.New("contact-email").Parse(`
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#ffffff;padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="700" cellpadding="0" cellspacing="0" style="background:{{.CardBg}};border-radius:20px;color:{{.Text}};font-family:Inter,Segoe UI,Arial,sans-serif;">
<tr><td style="background:{{.HeaderBg}};border-radius:16px 16px 0 0;padding:20px 24px;">
<h1 style="margin:0;font-size:24px;line-height:1.2;font-weight:800;letter-spacing:.3px;color:#7ab5ff;">Gator Engineered Technologies</h1>
<p style="margin:6px 0 0;font-size:13px;line-height:1.45;color:{{.TextSub}};">The next evolution of websites — real-time, AI-powered, blockchain-ready.</p>
</td></tr>
<tr><td style="padding:24px 24px 6px;">
<h2 style="margin:0 0 14px;color:{{.Text}};font-size:20px;">Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</h2>
<p style="margin:0 0 10px;color:{{.TextSub}};font-size:14px;line-height:1.6;">
Thanks for reaching out — you just unlocked a build process that treats your website like a
<strong style="color:{{.Text}};">living product</strong>, not a static brochure.
We combine <strong style="color:{{.Accent}};">Web2 + Web3</strong>,
<strong style="color:{{.Accent}};">AI automation</strong>, and
<strong style="color:{{.Accent}};">Answer-Engine SEO (AEO)</strong>
so your brand shows up in search <em>and</em> AI results.
</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:14px 0 18px;background:{{.ChipBg}};border:1px dashed {{.ChipLine}};border-radius:12px;">
<tr><td style="padding:12px 14px;">
<p style="margin:0 0 6px;color:{{.TextSub}};font-size:13px;">What you sent:</p>
<pre style="margin:0;white-space:pre-wrap;color:{{.Text}};font-size:14px;line-height:1.5;">{{.Message}}</pre>
</td></tr>
</table>
{{if .ShowDetails}}
<table role="presentation" cellpadding="0" cellspacing="0" style="margin:6px 0 14px;color:{{.TextSub}};font-size:13px;">
<tr><td style="padding:2px 0;"><strong style="color:{{.Text}};">Email:</strong> {{.Email}}</td></tr>
<tr><td style="padding:2px 0;"><strong style="color:{{.Text}};">Has website:</strong> {{if .HasWebsite}}Yes{{else}}No{{end}}</td></tr>
{{if .Website}}<tr><td style="padding:2px 0;"><strong style="color:{{.Text}};">Website:</strong> {{.Website}}</td></tr>{{end}}
{{if .IP}}<tr><td style="padding:2px 0;"><strong style="color:{{.Text}};">IP:</strong> {{.IP}}</td></tr>{{end}}
</table>
{{end}}
<p style="margin:0 0 10px;color:{{.Accent}};font-weight:800;">What we can build for you</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">
{{range .CardRows}}<tr>
{{range .}}<td width="50%" style="padding:10px;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:{{$.CardBg}};border:1px solid {{$.CardLine}};border-radius:12px;">
<tr><td style="padding:16px;">
<p style="margin:0 0 8px;font-weight:800;color:{{$.Accent}};font-size:15px;">{{.Title}}</p>
<p style="margin:0 0 14px;color:{{$.TextSub}};font-size:14px;line-height:1.45;">{{.Body}}</p>
<table role="presentation" cellpadding="0" cellspacing="0"><tr>
<td bgcolor="{{$.BtnBg}}" style="border-radius:10px;">
<a href="{{.Href}}" target="_blank" style="display:inline-block;padding:12px 18px;font-weight:700;font-size:14px;color:#ffffff;text-decoration:none;border-radius:10px;">{{.CTA}}</a>
</td>
</tr></table>
</td></tr>
</table>
</td>
{{end}}</tr>
{{end}}</table>
<table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="margin-top:10px;">
<tr><td align="center">
<table role="presentation" cellpadding="0" cellspacing="0" width="92%"><tr>
<td bgcolor="{{.BtnBg}}" style="border-radius:12px;">
<a href="{{.BookingLink}}" target="_blank" style="display:block;padding:16px 22px;color:#ffffff;text-decoration:none;font-weight:700;text-align:center;border-radius:12px;">Book a 15-min call</a>
</td>
</tr></table>
</td></tr>
</table>
<p style="margin:12px 0 0;color:{{.Muted}};font-size:13px;">Prefer email? Reply to this message — I read everything personally.</p>
</td></tr>
<tr><td style="padding:0 24px 20px;">
<p style="margin:0;color:{{.Muted}};font-size:12px;">— Reva, Software Engineer · Gator Engineered Technologies</p>
</td></tr>
</table>
</td></tr>
</table>`))

// cardRows lays the four service cards out two per row, the way the email
// grid renders them.
func cardRows(cfg config.Config) [][]featureCard {
	all := []featureCard{
		{
			Title: "Blockchain & Crypto",
			Body:  "Loyalty points as tokens, branded coins, wallet login, and gated experiences.",
			CTA:   "Explore Crypto",
			Href:  cfg.ServiceLink(cfg.BookLinkCrypto),
		},
		{
			Title: "Websites (Web2 + Web3)",
			Body:  "Creator-grade React/Next builds with optional wallet connect & on-chain perks.",
			CTA:   "See Web Builds",
			Href:  cfg.ServiceLink(cfg.BookLinkWeb),
		},
		{
			Title: "AI Chatbots & Automation",
			Body:  "Answer customers 24/7 and automate ops from lead → CRM → follow-up.",
			CTA:   "Automate With AI",
			Href:  cfg.ServiceLink(cfg.BookLinkAI),
		},
		{
			Title: "SEO + AEO Growth",
			Body:  "Technical SEO + Answer-Engine Optimization to win Google and AI answers.",
			CTA:   "Grow Traffic",
			Href:  cfg.ServiceLink(cfg.BookLinkSEO),
		},
	}
	return [][]featureCard{all[:2], all[2:]}
}

func render(data emailData) (string, error) {
	data.CardBg = colCardBg
	data.HeaderBg = colHeaderBg
	data.Text = colText
	data.TextSub = colTextSub
	data.Muted = colMuted
	data.BtnBg = colBtnBg
	data.ChipBg = colChipBg
	data.ChipLine = colChipLine
	data.CardLine = colCardLine
	data.Accent = colAccent

	var buf bytes.Buffer
	if err := emailTpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mailer: render template: %w", err)
	}
	return buf.String(), nil
}

// OwnerHTML renders the internal notification: the full submission plus
// metadata. User-supplied text goes through html/template escaping.
func OwnerHTML(cfg config.Config, s contact.Submission) (string, error) {
	return render(emailData{
		Name:        s.Name,
		Email:       s.Email,
		Message:     s.Message,
		HasWebsite:  s.HasWebsite,
		Website:     s.Website,
		IP:          s.IP,
		ShowDetails: true,
		CardRows:    cardRows(cfg),
		BookingLink: cfg.BookingLink,
	})
}

// AutoresponderHTML renders the branded reply sent back to the submitter.
func AutoresponderHTML(cfg config.Config, s contact.Submission) (string, error) {
	return render(emailData{
		Name:        s.Name,
		Message:     s.Message,
		CardRows:    cardRows(cfg),
		BookingLink: cfg.BookingLink,
	})
}
