package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var verifyTmpl = template.Must(template.New("verify_email").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome, {{.Name}}!</h2>
  <p>Thank you for creating an account with us. Please click the button below to verify your email address:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.VerifyURL}}" style="background-color: #007bff; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">Verify Email</a>
  </div>
  <p>Or copy and paste this link in your browser:</p>
  <p style="word-break: break-all; color: #666;">{{.VerifyURL}}</p>
  <p>This link will expire in 24 hours for security reasons.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="color: #666; font-size: 12px;">If you didn't create this account, please ignore this email.</p>
</div>`))

// VerificationEmail builds the job for an email-verification message. baseURL
// is the front-end verify page; the token is appended as a query parameter.
func VerificationEmail(to, name, baseURL, token string) (EmailJob, error) {
	link := fmt.Sprintf("%s?token=%s", baseURL, token)
	var buf bytes.Buffer
	if err := verifyTmpl.Execute(&buf, map[string]string{"Name": name, "VerifyURL": link}); err != nil {
		return EmailJob{}, err
	}
	return EmailJob{
		To:      to,
		Subject: "Verify your account",
		Text:    "Verify your email address: " + link + " (the link expires in 24 hours)",
		HTML:    buf.String(),
	}, nil
}
