package notification

import log "github.com/sirupsen/logrus"

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct {
	logger log.FieldLogger
}

func NewLogSender(logger log.FieldLogger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(recipient, subject, body string) error {
	s.logger.WithFields(log.Fields{
		"recipient": recipient,
		"subject":   subject,
	}).Info(body)
	return nil
}
