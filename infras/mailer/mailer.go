package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Mail is a plain text email.
type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// New returns an SMTP mailer. Without SMTP settings mails are only logged.
func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		config: cfg,
		otel:   otel,
		send:   smtp.SendMail,
	}
}

func (m *smtpMailer) configured() bool {
	smtpConfig := m.config.SMTP

	return smtpConfig.Host != "" && smtpConfig.Port != "" && smtpConfig.Username != "" && smtpConfig.Password != ""
}

func (m *smtpMailer) Send(ctx context.Context, mail Mail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".smtp.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !m.configured() {
		log.Info().Str("to", mail.To).Str("subject", mail.Subject).Msg("[MOCK EMAIL] SMTP is not configured")

		return nil
	}

	smtpConfig := m.config.SMTP
	auth := smtp.PlainAuth("", smtpConfig.Username, smtpConfig.Password, smtpConfig.Host)
	addr := net.JoinHostPort(smtpConfig.Host, smtpConfig.Port)

	if err = m.send(addr, auth, smtpConfig.Username, []string{mail.To}, m.message(mail)); err != nil {
		log.Error().Err(err).Str("to", mail.To).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", mail.To).Msg("email sent")

	return nil
}

func (m *smtpMailer) message(mail Mail) []byte {
	from := m.config.SMTP.Username
	if name := headerSafe(m.config.SMTP.FromName); name != "" {
		from = fmt.Sprintf("%s <%s>", name, m.config.SMTP.Username)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", headerSafe(mail.To))
	fmt.Fprintf(&sb, "Subject: %s\r\n", headerSafe(mail.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(strings.ReplaceAll(mail.Body, "\n", "\r\n"))
	sb.WriteString("\r\n")

	return []byte(sb.String())
}

// headerSafe keeps a header value on one line.
func headerSafe(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(value))
}
