// Package mail sends transactional email. Delivery is best effort: the
// invitation flow records the invite before any email goes out, so a send
// failure is logged and swallowed rather than failing the request.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Invitation carries everything the invite email template needs.
type Invitation struct {
	To          string
	OutletName  string
	InviterName string
	// AcceptURL is the full link including the raw token.
	AcceptURL string
}

// Mailer sends platform email.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

// ResendMailer delivers via the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResend builds a mailer. from is the sender address, e.g.
// "Creamery <noreply@creamery.example>".
func NewResend(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

var inviteTmpl = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:-apple-system,Segoe UI,Roboto,Arial,sans-serif;background-color:#FDF8F4;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 20px;">
    <tr><td align="center">
      <table width="600" cellpadding="0" cellspacing="0" style="max-width:600px;background:#ffffff;border-radius:16px;overflow:hidden;">
        <tr><td style="background:#E6658B;padding:32px 20px;text-align:center;">
          <h1 style="margin:0;color:#ffffff;font-size:26px;">Creamery</h1>
        </td></tr>
        <tr><td style="padding:40px 30px;">
          <h2 style="margin:0 0 20px 0;color:#441520;">You've been invited</h2>
          <p style="margin:0 0 16px 0;color:#553343;font-size:16px;line-height:1.6;">
            <strong>{{.InviterName}}</strong> has invited you to help manage
            <strong>{{.OutletName}}</strong>.
          </p>
          <p style="margin:24px 0;text-align:center;">
            <a href="{{.AcceptURL}}" style="background:#E6658B;color:#ffffff;padding:14px 32px;border-radius:8px;text-decoration:none;font-weight:600;">Accept invitation</a>
          </p>
          <p style="margin:0;color:#8a6c78;font-size:13px;">This invitation expires in 7 days. If you weren't expecting it, you can ignore this email.</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

func (m *ResendMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	var body strings.Builder
	if err := inviteTmpl.Execute(&body, inv); err != nil {
		return fmt.Errorf("mail: render invite: %w", err)
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{inv.To},
		Subject: fmt.Sprintf("You're invited to manage %s", inv.OutletName),
		Html:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("mail: send invite: %w", err)
	}
	return nil
}

// NopMailer logs instead of sending. Used when no API key is configured,
// which keeps local development and tests free of outbound email.
type NopMailer struct{}

func (NopMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	slog.InfoContext(ctx, "email delivery disabled, skipping invitation",
		"to", inv.To,
		"outlet", inv.OutletName,
	)
	return nil
}
