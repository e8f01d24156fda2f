// Package email delivers alerts over SMTP using gomail. Each Send opens one
// session and delivers to every recipient individually within it, so a single
// bad address does not abort the rest of the batch.
package email

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/glofwatch/glof-alerts/internal/config"
)

type Result struct {
	OK     bool
	Sent   int
	Failed []string
}

type Sender struct {
	from string
	dial func() (gomail.SendCloser, error)
}

func NewSender(cfg config.SMTPConfig) *Sender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Sender{
		from: cfg.Username,
		dial: dialer.Dial,
	}
}

// Send delivers the alert message to each recipient. OK is true only when
// every recipient succeeded; failures are listed in Failed. The SMTP session
// is closed on all exit paths.
func (s *Sender) Send(recipients []string, lakeName, message string) Result {
	sc, err := s.dial()
	if err != nil {
		slog.Error("SMTP dial failed", "error", err)
		return Result{OK: false, Failed: recipients}
	}
	defer sc.Close()

	subject := fmt.Sprintf("🚨 CRITICAL GLOF ALERT - %s", lakeName)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)
	m.AddAlternative("text/html", htmlBody(message))

	res := Result{}
	for _, rcpt := range recipients {
		m.SetHeader("To", rcpt)
		if err := gomail.Send(sc, m); err != nil {
			slog.Error("email send failed", "recipient", rcpt, "error", err)
			res.Failed = append(res.Failed, rcpt)
			continue
		}
		res.Sent++
	}

	res.OK = len(res.Failed) == 0
	slog.Info("email batch complete", "sent", res.Sent, "failed", len(res.Failed))
	return res
}

func htmlBody(message string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
	<div style="background-color: #ff4444; color: white; padding: 20px; border-radius: 10px; margin-bottom: 20px;">
		<h2>🚨 GLACIAL LAKE OUTBURST FLOOD ALERT</h2>
	</div>
	<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
		<pre style="font-family: Arial, sans-serif; font-size: 14px; line-height: 1.6;">%s</pre>
	</div>
	<div style="margin-top: 20px; padding: 15px; background-color: #ffffcc; border-radius: 5px;">
		<strong>⚠️ This is an automated emergency alert. Take immediate action as advised.</strong>
	</div>
</body>
</html>`, message)
}
