package richpush

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Data keys checked for an embedded rich payload, in precedence order.
// The first present key wins; there is no merging across keys.
const (
	dataKeyContent      = "notification_content"
	dataKeyNotification = "notification"
	dataKeyClickAction  = "click_action"
)

// defaultTitle is used when the fallback TEXT variant has no title source.
const defaultTitle = "Notification"

// Normalize converts an inbound envelope into exactly one rich notification.
//
// Precedence is strict: data.notification_content, then data.notification,
// then a synthesized TEXT variant from the envelope's display block. The
// embedded payload may arrive either as a JSON-encoded string or as a
// nested object; both are accepted. A present-but-unparsable payload is
// surfaced as ErrMalformedPayload without falling back, since the embedded
// channel is the trusted one. An envelope with no rich payload at all never
// fails: it degrades to TEXT with defaults.
func Normalize(env Envelope) (Notification, error) {
	if env.Data != nil {
		if raw, ok := env.Data[dataKeyContent]; ok {
			return decodeEmbedded(dataKeyContent, raw)
		}
		if raw, ok := env.Data[dataKeyNotification]; ok {
			return decodeEmbedded(dataKeyNotification, raw)
		}
	}
	return fallbackText(env), nil
}

// decodeEmbedded parses a rich payload found under the given data key. The
// value is either a JSON string to be parsed or an already-decoded object
// to be re-interpreted as a notification.
func decodeEmbedded(key string, raw any) (Notification, error) {
	var (
		n   Notification
		err error
	)

	switch v := raw.(type) {
	case string:
		err = json.Unmarshal([]byte(v), &n)
	case []byte:
		err = json.Unmarshal(v, &n)
	default:
		// Pre-parsed object: round-trip through JSON so the tagged-union
		// decoder is the single interpretation point for both shapes.
		var encoded []byte
		if encoded, err = json.Marshal(v); err == nil {
			err = json.Unmarshal(encoded, &n)
		}
	}

	if err != nil {
		return Notification{}, errors.Join(
			ErrMalformedPayload,
			fmt.Errorf("data field %q: %w", key, err),
		)
	}
	return n, nil
}

// fallbackText synthesizes the guaranteed TEXT variant for envelopes that
// carry no embedded rich payload.
func fallbackText(env Envelope) Notification {
	title := defaultTitle
	body := ""
	clickAction := ""

	if env.Notification != nil {
		if env.Notification.Title != "" {
			title = env.Notification.Title
		}
		body = env.Notification.Body
		clickAction = env.Notification.ClickAction
	}

	// First non-empty click target wins: display block, web-push options,
	// then the data section.
	if clickAction == "" && env.FCMOptions != nil {
		clickAction = env.FCMOptions.Link
	}
	if clickAction == "" {
		clickAction = env.dataString(dataKeyClickAction)
	}

	return NewText(title, body, clickAction)
}
