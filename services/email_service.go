package services

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

type EmailTemplate string

const (
	EmailSignupOTP          EmailTemplate = "signup-otp"
	EmailPasswordResetOTP   EmailTemplate = "password-reset-otp"
	EmailVerifiedSuccess    EmailTemplate = "email-verified-success"
	EmailPasswordChanged    EmailTemplate = "password-changed-success"
	EmailNewLoginDetected   EmailTemplate = "new-login-detected"
	EmailNewRelativeAccount EmailTemplate = "new-relative-account"
	EmailNewVendorAccount   EmailTemplate = "new-vendor-account"
	EmailInviteParent       EmailTemplate = "invite-parent"
)

type emailContent struct {
	subject string
	body    *template.Template
}

var emailTemplates = map[EmailTemplate]emailContent{
	EmailSignupOTP: {
		subject: "Verify Your Account - OTP Code",
		body: template.Must(template.New("signup-otp").Parse(`Hello {{.name}},

Your verification code is {{.otp}}. It expires in {{.expiresIn}}.
`)),
	},
	EmailPasswordResetOTP: {
		subject: "Reset Your Password - OTP Code",
		body: template.Must(template.New("password-reset-otp").Parse(`Hello {{.name}},

Use {{.otp}} to reset your password. The code expires in {{.expiresIn}}.
If you did not ask for a reset you can ignore this email.
`)),
	},
	EmailVerifiedSuccess: {
		subject: "Your Email Has Been Verified",
		body: template.Must(template.New("email-verified-success").Parse(`Hello {{.name}},

Your email address has been verified. Welcome aboard!
`)),
	},
	EmailPasswordChanged: {
		subject: "Your Password Has Been Changed",
		body: template.Must(template.New("password-changed-success").Parse(`Hello {{.name}},

Your password was changed. If this was not you, reset it right away.
`)),
	},
	EmailNewLoginDetected: {
		subject: "New Login Detected",
		body: template.Must(template.New("new-login-detected").Parse(`Hello {{.name}},

We noticed a new login to your account at {{.time}} from {{.device}}.
`)),
	},
	EmailNewRelativeAccount: {
		subject: "Your account has been created",
		body: template.Must(template.New("new-relative-account").Parse(`Hello {{.relativeName}},

{{.inviterName}} added you as {{.relation}}. Sign in with:

Email: {{.email}}
Password: {{.password}}
`)),
	},
	EmailNewVendorAccount: {
		subject: "Your account has been created",
		body: template.Must(template.New("new-vendor-account").Parse(`Hello {{.name}},

Your {{.role}} account is ready. Sign in with:

Email: {{.email}}
Password: {{.password}}
`)),
	},
	EmailInviteParent: {
		subject: "You have been Invited",
		body: template.Must(template.New("invite-parent").Parse(`Hello,

{{.inviterName}} invited you to follow your baby together. Create your account here:

{{.inviteLink}}
`)),
	},
}

// RenderEmail returns the subject and plain text body of a template.
func RenderEmail(tmpl EmailTemplate, data map[string]string) (string, string, error) {
	content, ok := emailTemplates[tmpl]
	if !ok {
		return "", "", fmt.Errorf("email template not found: %s", tmpl)
	}
	var buf bytes.Buffer
	if err := content.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", tmpl, err)
	}
	return content.subject, buf.String(), nil
}

// Mailer delivers one rendered email.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// EmailSender sends templated emails. Delivery is best effort.
type EmailSender interface {
	Send(ctx context.Context, to string, tmpl EmailTemplate, data map[string]string)
}

type EmailService struct {
	mailer Mailer
	log    *zap.Logger
}

func NewEmailService(mailer Mailer, log *zap.Logger) *EmailService {
	return &EmailService{mailer: mailer, log: log}
}

func (s *EmailService) Send(ctx context.Context, to string, tmpl EmailTemplate, data map[string]string) {
	subject, body, err := RenderEmail(tmpl, data)
	if err == nil {
		err = s.mailer.SendMail(ctx, to, subject, body)
	}
	if err != nil {
		s.log.Warn("email not sent", zap.String("to", to), zap.String("template", string(tmpl)), zap.Error(err))
		return
	}
	s.log.Info("email sent", zap.String("to", to), zap.String("template", string(tmpl)))
}

type SMTPMailer struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (m *SMTPMailer) SendMail(ctx context.Context, to, subject, body string) error {
	from := m.FromEmail
	if m.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail)
	}
	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", from, to, subject, body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	return smtp.SendMail(addr, auth, m.FromEmail, []string{to}, []byte(message))
}

type SESMailer struct {
	Client    *sesv2.Client
	FromEmail string
	FromName  string
}

func (m *SESMailer) SendMail(ctx context.Context, to, subject, body string) error {
	from := m.FromEmail
	if m.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail)
	}
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if _, err := m.Client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes emails to the log instead of sending them.
type LogMailer struct {
	Log *zap.Logger
}

func (m *LogMailer) SendMail(ctx context.Context, to, subject, body string) error {
	m.Log.Info("mail", zap.String("to", to), zap.String("subject", subject), zap.String("body", body))
	return nil
}
