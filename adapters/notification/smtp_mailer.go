package notification

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr   string
	host   string
	auth   smtp.Auth
	from   string
	send   sendFunc
	logger logger.Logger
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp host has not config")
	}

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	log.Info("SMTP mailer configured", zap.String("host", cfg.SMTP.Host), zap.Int("port", cfg.SMTP.Port))
	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		host:   cfg.SMTP.Host,
		auth:   auth,
		from:   from,
		send:   smtp.SendMail,
		logger: log,
	}, nil
}

// Send delivers a plain-text message. net/smtp has no context support, so
// ctx is only checked before dialing.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := composeMessage(m.from, to, subject, body, time.Now())
	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func composeMessage(from, to, subject, body string, now time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", stripNewlines(subject)))
	fmt.Fprintf(&b, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// Header values come from the public contact form.
func stripNewlines(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
