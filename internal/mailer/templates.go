package mailer

import (
	"bytes"
	"html/template"
)

var partnerWelcomeTmpl = template.Must(template.New("partner_welcome").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background-color: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
      .code-box { background-color: white; border: 2px solid #2563eb; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px; }
      .code { font-size: 28px; font-weight: bold; color: #2563eb; font-family: monospace; }
      .info { margin: 15px 0; }
      .label { font-weight: bold; color: #4b5563; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>Welcome to Infibizz!</h1></div>
      <div class="content">
        <p>Dear {{.Name}},</p>
        <p>Thank you for registering as a partner with Infibizz. We're excited to have you on board!</p>
        <div class="code-box">
          <p style="margin: 0 0 10px 0; color: #6b7280;">Your Unique Partner Code:</p>
          <div class="code">{{.UniqueCode}}</div>
        </div>
        <p><strong>Please save this code for your records.</strong></p>
        <h3>Your Registration Details:</h3>
        <div class="info"><span class="label">Name:</span> {{.Name}}</div>
        <div class="info"><span class="label">Email:</span> {{.Email}}</div>
        <div class="info"><span class="label">Phone:</span> {{.Phones}}</div>
        <div class="info"><span class="label">Address:</span> {{.Address}}, {{.City}}, {{.State}} - {{.PinCode}}</div>
        <p style="margin-top: 30px;">We'll be in touch soon with more information about how to get started.</p>
        <p>Best regards,<br>The Infibizz Team</p>
      </div>
    </div>
  </body>
</html>`))

var partnerWelcomeTextTmpl = template.Must(template.New("partner_welcome_text").Parse(`Welcome to Infibizz!

Dear {{.Name}},

Thank you for registering as a partner with Infibizz. We're excited to have you on board!

Your Unique Partner Code: {{.UniqueCode}}

Please save this code for your records.

Your Registration Details:
- Name: {{.Name}}
- Email: {{.Email}}
- Phone: {{.Phones}}
- Address: {{.Address}}, {{.City}}, {{.State}} - {{.PinCode}}

We'll be in touch soon with more information about how to get started.

Best regards,
The Infibizz Team
`))

var adminRegistrationTmpl = template.Must(template.New("admin_registration").Parse(`<h2>New Partner Registration</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phones}}</p>
<p><strong>Address:</strong> {{.Address}}, {{.City}}, {{.State}} - {{.PinCode}}</p>
<p><strong>Unique Code:</strong> {{.UniqueCode}}</p>
<p><strong>Registered At:</strong> {{.RegisteredAt}}</p>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background-color: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
      .info { margin: 15px 0; padding: 10px; background-color: white; border-radius: 4px; }
      .label { font-weight: bold; color: #4b5563; }
      .message { margin-top: 20px; padding: 15px; background-color: white; border-left: 4px solid #2563eb; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>New Contact Form Submission</h1></div>
      <div class="content">
        <div class="info"><span class="label">Name:</span> {{.Name}}</div>
        <div class="info"><span class="label">Email:</span> {{.Email}}</div>
        <div class="info"><span class="label">Subject:</span> {{.Subject}}</div>
        <div class="message">
          <p><strong>Message:</strong></p>
          <p>{{.Message}}</p>
        </div>
        <p style="margin-top: 20px; color: #6b7280; font-size: 12px;">Submitted at: {{.SubmittedAt}}</p>
      </div>
    </div>
  </body>
</html>`))

var contactTextTmpl = template.Must(template.New("contact_text").Parse(`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}

Message:
{{.Message}}

Submitted at: {{.SubmittedAt}}
`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
