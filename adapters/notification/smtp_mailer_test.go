package notification

import (
	"context"
	"errors"
	"mime"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 587
	cfg.SMTP.Username = "owner@example.com"
	cfg.SMTP.Password = "secret"
	return cfg
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestSMTPMailer_Send(t *testing.T) {
	m, err := NewSMTPMailer(testConfig(), logger.NewNopLogger())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.(*smtpMailer).send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err = m.Send(context.Background(), "me@example.com", "New message", "hello\nthere")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "owner@example.com", gotFrom)
	assert.Equal(t, []string{"me@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: New message\r\n")
	assert.True(t, strings.HasSuffix(string(gotMsg), "hello\r\nthere\r\n"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	m, err := NewSMTPMailer(testConfig(), logger.NewNopLogger())
	require.NoError(t, err)
	m.(*smtpMailer).send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("535 auth failed")
	}

	err = m.Send(context.Background(), "me@example.com", "s", "b")
	assert.ErrorContains(t, err, "535 auth failed")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	m, err := NewSMTPMailer(testConfig(), logger.NewNopLogger())
	require.NoError(t, err)
	m.(*smtpMailer).send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, "me@example.com", "s", "b"), context.Canceled)
}

func TestComposeMessage_StripsHeaderInjection(t *testing.T) {
	msg := string(composeMessage("a@x", "b@x", "hi\r\nBcc: evil@x", "body", time.Unix(0, 0)))
	assert.Contains(t, msg, "Subject: hi  Bcc: evil@x\r\n")
	assert.NotContains(t, msg, "\r\nBcc:")
}

func TestComposeMessage_EncodesNonASCIISubject(t *testing.T) {
	msg := string(composeMessage("a@x", "b@x", "Message from José", "body", time.Unix(0, 0)))

	assert.Contains(t, msg, "Subject: =?utf-8?q?Message_from_Jos=C3=A9?=\r\n")

	decoded, err := new(mime.WordDecoder).DecodeHeader("=?utf-8?q?Message_from_Jos=C3=A9?=")
	require.NoError(t, err)
	assert.Equal(t, "Message from José", decoded)
}
