package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"
)

// PassData fills the event-pass templates. EventDate and Venue are the
// already-defaulted display strings.
type PassData struct {
	ParticipantName string
	EventName       string
	RegistrationID  string
	EntryCode       string
	EventDate       string
	Venue           string
}

// ShortID is the display form of the registration id on the pass.
func (d PassData) ShortID() string {
	id := d.RegistrationID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// QRURL points at the third-party QR generator, keyed on the entry code.
func (d PassData) QRURL() string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" +
		url.QueryEscape(d.EntryCode) + "&bgcolor=0a0a0a&color=14b8a6"
}

// FormatEventDate renders the long display date, or TBA when the date
// is unknown. Unparseable input is shown as-is rather than dropped.
func FormatEventDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "TBA"
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return raw
}

var passHTML = template.Must(template.New("pass").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;background-color:#050505;font-family:Arial,Helvetica,sans-serif;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#050505;padding:20px 0;">
<tr><td align="center">
<table width="480" cellpadding="0" cellspacing="0" style="background:linear-gradient(180deg,#0a0f1a 0%,#0d1117 100%);border:1px solid #1e293b;border-radius:16px;overflow:hidden;">

<tr><td style="background:linear-gradient(135deg,#0f172a,#064e3b);padding:28px 32px;text-align:center;border-bottom:2px solid #14b8a6;">
  <p style="margin:0 0 4px;font-size:11px;letter-spacing:4px;color:#5eead4;text-transform:uppercase;">Kapricious 2026</p>
  <h1 style="margin:0;font-size:26px;color:#f0fdfa;font-weight:800;">EVENT PASS</h1>
</td></tr>

<tr><td style="background:#14b8a6;padding:6px 0;text-align:center;">
  <span style="font-size:10px;letter-spacing:6px;color:#022c22;font-weight:700;text-transform:uppercase;">&#9733; ADMIT ONE &#9733;</span>
</td></tr>

<tr><td style="padding:24px 32px 16px;">
  <p style="margin:0 0 4px;font-size:10px;letter-spacing:3px;color:#5eead4;text-transform:uppercase;">Event</p>
  <h2 style="margin:0 0 16px;font-size:20px;color:#f0fdfa;font-weight:700;">{{.EventName}}</h2>

  <table width="100%" cellpadding="0" cellspacing="0">
  <tr>
    <td width="50%" style="padding:8px 0;">
      <p style="margin:0;font-size:10px;letter-spacing:2px;color:#5eead4;text-transform:uppercase;">Participant</p>
      <p style="margin:4px 0 0;font-size:14px;color:#e2e8f0;font-weight:600;">{{.ParticipantName}}</p>
    </td>
    <td width="50%" style="padding:8px 0;">
      <p style="margin:0;font-size:10px;letter-spacing:2px;color:#5eead4;text-transform:uppercase;">Date</p>
      <p style="margin:4px 0 0;font-size:14px;color:#e2e8f0;font-weight:600;">{{.EventDate}}</p>
    </td>
  </tr>
  <tr>
    <td width="50%" style="padding:8px 0;">
      <p style="margin:0;font-size:10px;letter-spacing:2px;color:#5eead4;text-transform:uppercase;">Venue</p>
      <p style="margin:4px 0 0;font-size:14px;color:#e2e8f0;font-weight:600;">{{.Venue}}</p>
    </td>
    <td width="50%" style="padding:8px 0;">
      <p style="margin:0;font-size:10px;letter-spacing:2px;color:#5eead4;text-transform:uppercase;">Registration ID</p>
      <p style="margin:4px 0 0;font-size:13px;color:#e2e8f0;font-family:monospace;font-weight:600;">{{.ShortID}}</p>
    </td>
  </tr>
  </table>
</td></tr>

<tr><td style="padding:0 32px;">
  <div style="border-top:2px dashed #1e293b;"></div>
</td></tr>

<tr><td style="padding:20px 32px 24px;text-align:center;">
  <table width="100%" cellpadding="0" cellspacing="0">
  <tr>
    <td width="50%" style="text-align:center;vertical-align:middle;">
      <img src="{{.QRURL}}" width="120" height="120" alt="QR Code" style="border-radius:8px;border:2px solid #1e293b;" />
    </td>
    <td width="50%" style="text-align:center;vertical-align:middle;">
      <p style="margin:0 0 6px;font-size:10px;letter-spacing:3px;color:#5eead4;text-transform:uppercase;">Entry Code</p>
      <p style="margin:0;font-size:24px;font-weight:800;color:#14b8a6;font-family:monospace;letter-spacing:3px;">{{.EntryCode}}</p>
      <p style="margin:8px 0 0;font-size:11px;color:#64748b;">Show this at entry</p>
    </td>
  </tr>
  </table>
</td></tr>

<tr><td style="background:#0f172a;padding:16px 32px;text-align:center;border-top:1px solid #1e293b;">
  <p style="margin:0;font-size:11px;color:#64748b;">This is your official event pass. Please present it at the venue.</p>
  <p style="margin:6px 0 0;font-size:10px;color:#475569;">&copy; 2026 Kapricious TechFest. All rights reserved.</p>
</td></tr>

</table>
</td></tr>
</table>
</body>
</html>`))

// BuildPassHTML renders the HTML ticket.
func BuildPassHTML(data PassData) (string, error) {
	var buf bytes.Buffer
	if err := passHTML.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render pass html: %w", err)
	}
	return buf.String(), nil
}

// BuildPassText renders the plaintext fallback with the same details.
func BuildPassText(data PassData) string {
	return fmt.Sprintf(
		"KAPRICIOUS 2026 - EVENT PASS\n\n"+
			"Event: %s\nParticipant: %s\nRegistration ID: %s\nEntry Code: %s\nDate: %s\nVenue: %s\n\n"+
			"Present this pass at the venue. See you there!",
		data.EventName, data.ParticipantName, data.ShortID(), data.EntryCode, data.EventDate, data.Venue,
	)
}
