//go:build unit

package mailer

import (
	"context"
	"testing"

	"ride-together/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestSMTPMailer_LogOnly(t *testing.T) {
	m := NewSMTPMailer(config.MailConfig{From: "no-reply@example.com"})

	assert.NoError(t, m.Send(context.Background(), "rider@example.com", "Ride accepted", "See you there"))
	assert.Error(t, m.Send(context.Background(), "", "Ride accepted", "See you there"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, "rider@example.com", "Ride accepted", "body"), context.Canceled)
}
