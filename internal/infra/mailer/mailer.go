package mailer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string

	// limite para conectar e entregar; zero usa defaultTimeout
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, msgs ...*mail.Msg) error
}

// SMTPMailer envia texto simples via SMTP (STARTTLS quando o servidor oferece).
type SMTPMailer struct {
	cfg  Config
	dial func(Config) (sender, error)
	now  func() time.Time
}

func NewSMTP(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:  cfg,
		dial: newClient,
		now:  time.Now,
	}
}

func newClient(cfg Config) (sender, error) {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("smtp port %q: %w", cfg.Port, err)
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(cfg.timeout()),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := buildMessage(m.cfg.From, to, subject, body, m.now())
	if err != nil {
		return err
	}

	client, err := m.dial(m.cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.timeout())
	defer cancel()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string, at time.Time) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("smtp from %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp to %q: %w", to, err)
	}

	msg.Subject(subject)
	msg.SetDateWithValue(at)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}

// LogMailer é usado quando não há SMTP configurado.
type LogMailer struct{}

func NewLog() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger.L().Info("email (smtp disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_len", len(body)),
	)
	return nil
}
