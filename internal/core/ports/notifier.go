package ports

// EmailIntent is a structured request to send a templated email.
// The core only decides what to send and with what payload; rendering and
// transmission belong to the external notification dispatcher.
type EmailIntent struct {
	Recipients   []string
	Subject      string
	TemplateName string
	Context      map[string]string
}

// SMSIntent is a structured request to send a text message.
type SMSIntent struct {
	To   string
	Body string
}

// Notifier hands notification intents to the external dispatcher.
// Both methods are fire-and-forget: they must not block the caller, their
// outcome is never observed by the lifecycle engine, and failures must not
// roll back a committed lifecycle transition.
type Notifier interface {
	SendEmail(intent EmailIntent)
	SendSMS(intent SMSIntent)
}
