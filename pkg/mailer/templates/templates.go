package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names accepted in mailer.EmailJob.Template.
const (
	VerifyEmail = "verify_email"
)

var verifyEmailHTML = template.Must(template.New(VerifyEmail).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background:#f4f4f7; padding:24px;">
    <div style="max-width:560px; margin:auto; background:#ffffff; border-radius:8px; padding:32px;">
      <h2 style="margin-top:0;">{{.CompanyName}}</h2>
      <p>Hi {{.Name}},</p>
      <p>Please verify your email address to activate your account.</p>
      <p style="text-align:center; margin:32px 0;">
        <a href="{{.VerificationLink}}"
           style="background:#2f6fed; color:#ffffff; padding:12px 24px; border-radius:6px; text-decoration:none;">
          Verify email address
        </a>
      </p>
      <p>If the button does not work, copy this link into your browser:</p>
      <p style="word-break:break-all;"><a href="{{.VerificationLink}}">{{.VerificationLink}}</a></p>
      <p style="color:#888; font-size:12px;">If you did not create an account, you can ignore this email.</p>
      <p style="color:#888; font-size:12px;">&copy; {{.Year}} {{.CompanyName}}</p>
    </div>
  </body>
</html>`))

var registry = map[string]*template.Template{
	VerifyEmail: verifyEmailHTML,
}

// Subject returns the email subject for a template name.
func Subject(name string) string {
	switch name {
	case VerifyEmail:
		return "Please verify your email address"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	tpl, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
