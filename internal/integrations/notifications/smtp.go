package notifications

import (
	"fmt"
	"net/smtp"
)

// SMTPSender отправка писем через SMTP сервер
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewSMTPSender создает новый экземпляр SMTPSender
func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, user: user, password: password, from: from}
}

// Send отправляет текстовое письмо
func (s *SMTPSender) Send(to, subject, body string) error {
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)

	var auth smtp.Auth
	if s.user != "" && s.password != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message))
}

// LogSender пишет письма в лог вместо отправки (SMTP выключен)
type LogSender struct {
	log Logger
}

// NewLogSender создает новый экземпляр LogSender
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо
func (s *LogSender) Send(to, subject, _ string) error {
	s.log.Info("SMTP disabled, email skipped: to=%s, subject=%q", to, subject)
	return nil
}
