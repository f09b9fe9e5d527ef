package service

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/smtp"
	"sync"
	"sync/atomic"
	"time"

	"wellness-cms-backend/config"
	"wellness-cms-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notifier sends owner-facing notifications for new intake records. Calls
// never block and never surface errors to the caller; a failed notification
// must not fail the request that triggered it.
type Notifier interface {
	NotifyAppointmentCreated(appointment *entity.Appointment, clinicName string)
	NotifyContactMessageCreated(message *entity.ContactMessage)
}

type mailMessage struct {
	Subject string
	Body    string
}

// Mailer delivers notification mail on a background worker fed by a bounded
// queue. When the queue is full new messages are dropped and logged rather
// than blocking the enqueuing request.
type Mailer struct {
	cfg   config.MailConfig
	log   *logrus.Logger
	queue chan mailMessage

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool

	// sendFunc is swapped out by tests.
	sendFunc func(msg mailMessage) error
}

func NewMailer(cfg config.MailConfig, log *logrus.Logger) *Mailer {
	m := &Mailer{
		cfg:      cfg,
		log:      log,
		queue:    make(chan mailMessage, 64),
		stopChan: make(chan struct{}),
	}
	m.sendFunc = m.send
	return m
}

// Start launches the delivery worker.
func (m *Mailer) Start() {
	m.wg.Add(1)
	go m.worker()
	m.log.Info("Mail worker started")
}

// Stop shuts the worker down. Queued messages that were not yet picked up
// are abandoned; notification mail is best effort.
func (m *Mailer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
		m.wg.Wait()
		m.log.Info("Mail worker stopped")
	}
}

func (m *Mailer) worker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopChan:
			return
		case msg := <-m.queue:
			if err := m.sendFunc(msg); err != nil {
				m.log.Errorf("Failed to send notification mail %q: %v", msg.Subject, err)
			}
		}
	}
}

func (m *Mailer) enqueue(msg mailMessage) {
	if m.stopped.Load() {
		m.log.Warnf("Mail worker stopped, dropping notification %q", msg.Subject)
		return
	}
	select {
	case m.queue <- msg:
	default:
		m.log.Warnf("Mail queue full, dropping notification %q", msg.Subject)
	}
}

func (m *Mailer) NotifyAppointmentCreated(appointment *entity.Appointment, clinicName string) {
	if clinicName == "" {
		clinicName = "Not specified"
	}
	body := fmt.Sprintf(
		"New appointment request received.\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Clinic: %s\n"+
			"Preferred date: %s\n"+
			"Preferred time: %s\n"+
			"Treatment interest: %s\n\n"+
			"Message:\n%s\n",
		appointment.FullName(),
		appointment.Email,
		appointment.Phone,
		clinicName,
		appointment.PreferredDate.Format("2006-01-02"),
		appointment.PreferredTime,
		appointment.TreatmentInterest,
		appointment.Message,
	)
	m.enqueue(mailMessage{
		Subject: fmt.Sprintf("New Appointment Request from %s", appointment.FullName()),
		Body:    body,
	})
}

func (m *Mailer) NotifyContactMessageCreated(message *entity.ContactMessage) {
	body := fmt.Sprintf(
		"New contact message received.\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Subject: %s\n\n"+
			"Message:\n%s\n",
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
	)
	m.enqueue(mailMessage{
		Subject: fmt.Sprintf("New Contact Message from %s", message.Name),
		Body:    body,
	})
}

// send delivers one message. Missing credentials turn the send into a logged
// no-op instead of an error. A TLS failure while certificate verification is
// on triggers exactly one retry without verification; a TLS failure while
// already unverified is terminal.
func (m *Mailer) send(msg mailMessage) error {
	if reason := m.missingPrecondition(); reason != "" {
		m.log.Infof("Mail notification skipped: %s", reason)
		return nil
	}

	tlsCfg, verified := m.tlsConfig()
	err := m.deliver(msg, tlsCfg)
	if err == nil || !isTLSError(err) {
		return err
	}
	if !verified {
		m.log.Errorf("TLS failure with certificate verification already disabled: %v", err)
		return err
	}
	m.log.Warnf("TLS handshake failed, retrying once without certificate verification: %v", err)
	return m.deliver(msg, &tls.Config{ServerName: m.cfg.Host, InsecureSkipVerify: true})
}

func (m *Mailer) missingPrecondition() string {
	switch {
	case m.cfg.Username == "":
		return "MAIL_USERNAME is not configured"
	case m.cfg.Password == "":
		return "MAIL_PASSWORD is not configured"
	case m.cfg.OwnerEmail == "":
		return "MAIL_OWNER_EMAIL is not configured"
	}
	return ""
}

// tlsConfig reports whether the returned config verifies the server
// certificate.
func (m *Mailer) tlsConfig() (*tls.Config, bool) {
	if !m.cfg.SSLVerify {
		m.log.Warn("SSL certificate verification is disabled for outbound mail")
		return &tls.Config{ServerName: m.cfg.Host, InsecureSkipVerify: true}, false
	}
	pool, err := x509.SystemCertPool()
	if err != nil {
		m.log.Warnf("Failed to load system cert pool, sending mail without certificate verification: %v", err)
		return &tls.Config{ServerName: m.cfg.Host, InsecureSkipVerify: true}, false
	}
	return &tls.Config{ServerName: m.cfg.Host, RootCAs: pool}, true
}

func (m *Mailer) deliver(msg mailMessage, tlsCfg *tls.Config) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.cfg.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsCfg); err != nil {
				return err
			}
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(m.cfg.OwnerEmail); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nDate: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n",
		m.cfg.From, m.cfg.OwnerEmail, msg.Subject, time.Now().Format(time.RFC1123Z),
	)
	if _, err := w.Write([]byte(headers + msg.Body)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func isTLSError(err error) bool {
	var recordErr tls.RecordHeaderError
	var verifyErr *tls.CertificateVerificationError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &recordErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}
