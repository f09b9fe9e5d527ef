package service

import (
	"io"
	"testing"
	"time"

	"wellness-cms-backend/config"
	"wellness-cms-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(cfg config.MailConfig) *Mailer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMailer(cfg, log)
}

func mailConfigured() config.MailConfig {
	return config.MailConfig{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   "secret",
		From:       "noreply@example.com",
		OwnerEmail: "owner@example.com",
		UseTLS:     true,
		SSLVerify:  true,
	}
}

// deliverOne swaps the send hook, runs enqueue, and waits for one delivery
// through the worker.
func deliverOne(t *testing.T, m *Mailer, enqueue func()) mailMessage {
	t.Helper()
	got := make(chan mailMessage, 8)
	m.sendFunc = func(msg mailMessage) error {
		got <- msg
		return nil
	}
	m.Start()
	defer m.Stop()

	enqueue()

	select {
	case msg := <-got:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered in time")
		return mailMessage{}
	}
}

func TestMailerMissingPreconditions(t *testing.T) {
	t.Run("missing credentials skip the send without error", func(t *testing.T) {
		for _, strip := range []func(*config.MailConfig){
			func(c *config.MailConfig) { c.Username = "" },
			func(c *config.MailConfig) { c.Password = "" },
			func(c *config.MailConfig) { c.OwnerEmail = "" },
		} {
			cfg := mailConfigured()
			strip(&cfg)
			m := newTestMailer(cfg)

			assert.NoError(t, m.send(mailMessage{Subject: "s", Body: "b"}))
		}
	})

	t.Run("fully configured mailer reports nothing missing", func(t *testing.T) {
		m := newTestMailer(mailConfigured())
		assert.Equal(t, "", m.missingPrecondition())
	})
}

func TestMailerTLSConfig(t *testing.T) {
	t.Run("verification on by default", func(t *testing.T) {
		m := newTestMailer(mailConfigured())

		tlsCfg, verified := m.tlsConfig()
		assert.True(t, verified)
		assert.False(t, tlsCfg.InsecureSkipVerify)
		assert.Equal(t, "smtp.example.com", tlsCfg.ServerName)
	})

	t.Run("ssl verify off disables verification", func(t *testing.T) {
		cfg := mailConfigured()
		cfg.SSLVerify = false
		m := newTestMailer(cfg)

		tlsCfg, verified := m.tlsConfig()
		assert.False(t, verified)
		assert.True(t, tlsCfg.InsecureSkipVerify)
	})
}

func TestMailerWorker(t *testing.T) {
	t.Run("delivers contact notifications", func(t *testing.T) {
		m := newTestMailer(mailConfigured())

		msg := deliverOne(t, m, func() {
			m.NotifyContactMessageCreated(&entity.ContactMessage{
				Name:    "Rahul Verma",
				Email:   "rahul@example.com",
				Subject: "Hours",
				Message: "Are you open Sundays?",
			})
		})

		assert.Equal(t, "New Contact Message from Rahul Verma", msg.Subject)
		assert.Contains(t, msg.Body, "rahul@example.com")
		assert.Contains(t, msg.Body, "Are you open Sundays?")
	})

	t.Run("appointment notification names the clinic", func(t *testing.T) {
		m := newTestMailer(mailConfigured())
		date, err := time.Parse("2006-01-02", "2026-09-15")
		require.NoError(t, err)

		msg := deliverOne(t, m, func() {
			m.NotifyAppointmentCreated(&entity.Appointment{
				FirstName:     "Priya",
				LastName:      "Sharma",
				Email:         "priya@example.com",
				Phone:         "+911234567890",
				PreferredDate: date,
				PreferredTime: "14:30",
			}, "Delhi Central")
		})

		assert.Equal(t, "New Appointment Request from Priya Sharma", msg.Subject)
		assert.Contains(t, msg.Body, "Clinic: Delhi Central")
		assert.Contains(t, msg.Body, "Preferred date: 2026-09-15")
	})

	t.Run("missing clinic is reported as not specified", func(t *testing.T) {
		m := newTestMailer(mailConfigured())

		msg := deliverOne(t, m, func() {
			m.NotifyAppointmentCreated(&entity.Appointment{
				FirstName: "Priya", LastName: "Sharma",
			}, "")
		})

		assert.Contains(t, msg.Body, "Clinic: Not specified")
	})

	t.Run("stopped mailer drops new notifications", func(t *testing.T) {
		m := newTestMailer(mailConfigured())
		m.Start()
		m.Stop()

		m.NotifyContactMessageCreated(&entity.ContactMessage{Name: "Late"})
		assert.Empty(t, m.queue)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		m := newTestMailer(mailConfigured())
		m.Start()
		m.Stop()
		m.Stop()
	})
}
