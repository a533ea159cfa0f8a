package richpush

// Envelope is the loosely-typed inbound push message as handed over by the
// messaging SDK. Field presence is the only contract: any of the three
// sections may be absent, and Data values are arbitrary.
type Envelope struct {
	Notification *EnvelopeNotification `json:"notification,omitempty"`
	Data         map[string]any        `json:"data,omitempty"`
	FCMOptions   *FCMOptions           `json:"fcmOptions,omitempty"`
}

// EnvelopeNotification is the plain display block the push service attaches
// for system-tray rendering. It is the fallback source when no rich payload
// is embedded in Data.
type EnvelopeNotification struct {
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
	Image       string `json:"image,omitempty"`
	ClickAction string `json:"click_action,omitempty"`
}

// FCMOptions carries the web-push options block; only the link target is
// consumed here.
type FCMOptions struct {
	Link string `json:"link,omitempty"`
}

// dataString reads a Data value as a string, tolerating absent keys and
// non-string values.
func (e Envelope) dataString(key string) string {
	if e.Data == nil {
		return ""
	}
	s, _ := e.Data[key].(string)
	return s
}
