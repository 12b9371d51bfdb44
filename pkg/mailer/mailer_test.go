package mailer_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/mailer"
)

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	valid := mailer.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Welcome",
		BodyHTML: "<p>Hello</p>",
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*mailer.SendEmailParams)
	}{
		{"missing recipient", func(p *mailer.SendEmailParams) { p.SendTo = "" }},
		{"malformed recipient", func(p *mailer.SendEmailParams) { p.SendTo = "not-an-email" }},
		{"missing subject", func(p *mailer.SendEmailParams) { p.Subject = "" }},
		{"missing body", func(p *mailer.SendEmailParams) { p.BodyHTML = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			tc.mutate(&params)
			assert.ErrorIs(t, params.Validate(), mailer.ErrInvalidParams)
		})
	}
}

func TestNewPostmarkSender(t *testing.T) {
	t.Parallel()

	valid := mailer.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		sender, err := mailer.NewPostmarkSender(valid)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("missing tokens rejected", func(t *testing.T) {
		cfg := valid
		cfg.PostmarkServerToken = ""
		_, err := mailer.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})

	t.Run("malformed sender rejected", func(t *testing.T) {
		cfg := valid
		cfg.SenderEmail = "nope"
		_, err := mailer.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := mailer.NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	err := sender.SendEmail(context.Background(), mailer.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Welcome",
		BodyHTML: "<p>Hello</p>",
		Tag:      "welcome",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "user@example.com")
	assert.Contains(t, buf.String(), "welcome")

	err = sender.SendEmail(context.Background(), mailer.SendEmailParams{})
	assert.ErrorIs(t, err, mailer.ErrInvalidParams)
}
