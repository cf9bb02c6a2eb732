package mailer

import (
	"html/template"
	"strings"
)

var certificateTmpl = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your Certificate</title>
  </head>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
      <h1 style="color: white; margin: 0; font-size: 28px;">Congratulations!</h1>
    </div>

    <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; border: 1px solid #e0e0e0;">
      <p style="font-size: 16px; margin-bottom: 20px;">Dear {{.StudentName}},</p>

      <p style="font-size: 16px; margin-bottom: 20px;">
        We're thrilled to inform you that you have successfully completed <strong>{{.TaskTitle}}</strong>!
      </p>

      <p style="font-size: 16px; margin-bottom: 30px;">
        Your hard work and dedication have paid off. Your certificate is now ready!
      </p>

      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.CertificateURL}}"
           style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 15px 40px; text-decoration: none; border-radius: 5px; font-size: 16px; font-weight: bold; display: inline-block;">
          Download Certificate
        </a>
      </div>

      <p style="font-size: 14px; color: #666; margin-top: 30px;">
        Keep up the great work!
      </p>

      <p style="font-size: 14px; color: #666;">
        Best regards,<br>
        Student Programs Team
      </p>
    </div>

    <div style="text-align: center; margin-top: 20px; color: #999; font-size: 12px;">
      <p>This is an automated email. Please do not reply to this message.</p>
    </div>
  </body>
</html>`))

func renderCertificateEmail(email CertificateEmail) (string, error) {
	var sb strings.Builder
	if err := certificateTmpl.Execute(&sb, email); err != nil {
		return "", err
	}
	return sb.String(), nil
}
