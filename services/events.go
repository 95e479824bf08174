package services

import "log/slog"

// EventPublisher receives a notification after every successful write.
// *brackets.Hub implements it.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

func orNopPublisher(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

func orDefaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
