package richpush

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Fallback(t *testing.T) {
	tests := []struct {
		name      string
		env       Envelope
		wantTitle string
		wantBody  string
		wantClick string
	}{
		{
			name:      "empty envelope uses defaults",
			env:       Envelope{},
			wantTitle: "Notification",
			wantBody:  "",
		},
		{
			name: "display block title and body",
			env: Envelope{
				Notification: &EnvelopeNotification{Title: "Hi", Body: "there"},
			},
			wantTitle: "Hi",
			wantBody:  "there",
		},
		{
			name: "click action from display block wins",
			env: Envelope{
				Notification: &EnvelopeNotification{Title: "Hi", ClickAction: "/orders"},
				FCMOptions:   &FCMOptions{Link: "/link"},
				Data:         map[string]any{"click_action": "/data"},
			},
			wantTitle: "Hi",
			wantClick: "/orders",
		},
		{
			name: "click action falls back to fcm options link",
			env: Envelope{
				Notification: &EnvelopeNotification{Title: "Hi"},
				FCMOptions:   &FCMOptions{Link: "/link"},
				Data:         map[string]any{"click_action": "/data"},
			},
			wantTitle: "Hi",
			wantClick: "/link",
		},
		{
			name: "click action falls back to data section",
			env: Envelope{
				Data: map[string]any{"click_action": "/data"},
			},
			wantTitle: "Notification",
			wantClick: "/data",
		},
		{
			name: "empty title in display block uses default",
			env: Envelope{
				Notification: &EnvelopeNotification{Body: "body only"},
			},
			wantTitle: "Notification",
			wantBody:  "body only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.env)
			require.NoError(t, err)

			assert.Equal(t, TypeText, got.Type)
			require.NotNil(t, got.Text)
			assert.Equal(t, tt.wantTitle, got.Text.Title)
			assert.Equal(t, tt.wantBody, got.Text.Body)
			assert.Equal(t, tt.wantClick, got.Text.ClickAction)
		})
	}
}

func TestNormalize_EmbeddedString(t *testing.T) {
	env := Envelope{
		Data: map[string]any{
			"notification_content": `{"type":"TEXT","title":"Sale","body":"50% off"}`,
		},
	}

	got, err := Normalize(env)
	require.NoError(t, err)

	assert.Equal(t, TypeText, got.Type)
	require.NotNil(t, got.Text)
	assert.Equal(t, "Sale", got.Text.Title)
	assert.Equal(t, "50% off", got.Text.Body)
}

func TestNormalize_EmbeddedObject(t *testing.T) {
	env := Envelope{
		Data: map[string]any{
			"notification_content": map[string]any{
				"type":      "MEDIA",
				"title":     "New drop",
				"body":      "Watch the teaser",
				"media_url": "https://cdn.example.com/teaser.mp4",
				"media_type": "VIDEO",
			},
		},
	}

	got, err := Normalize(env)
	require.NoError(t, err)

	assert.Equal(t, TypeMedia, got.Type)
	require.NotNil(t, got.Media)
	assert.Equal(t, "https://cdn.example.com/teaser.mp4", got.Media.MediaURL)
	assert.Equal(t, MediaVideo, got.Media.MediaType)
}

func TestNormalize_Precedence(t *testing.T) {
	env := Envelope{
		Data: map[string]any{
			"notification_content": `{"type":"TEXT","title":"primary","body":""}`,
			"notification":         `{"type":"TEXT","title":"secondary","body":""}`,
		},
	}

	got, err := Normalize(env)
	require.NoError(t, err)
	require.NotNil(t, got.Text)
	assert.Equal(t, "primary", got.Text.Title)
}

func TestNormalize_SecondaryDataKey(t *testing.T) {
	env := Envelope{
		Data: map[string]any{
			"notification": `{"type":"CARD","title":"Order shipped","body":"Arrives Friday","style":"COMPACT"}`,
		},
	}

	got, err := Normalize(env)
	require.NoError(t, err)
	assert.Equal(t, TypeCard, got.Type)
	require.NotNil(t, got.Card)
	assert.Equal(t, CardCompact, got.Card.Style)
}

func TestNormalize_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
	}{
		{
			name: "unparsable json string",
			env: Envelope{
				Notification: &EnvelopeNotification{Title: "fallback not taken"},
				Data:         map[string]any{"notification_content": `{"type":"TEXT",`},
			},
		},
		{
			name: "unknown type discriminant",
			env: Envelope{
				Data: map[string]any{"notification_content": `{"type":"SPARKLE","title":"x"}`},
			},
		},
		{
			name: "malformed secondary key",
			env: Envelope{
				Data: map[string]any{"notification": "not json at all"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.env)
			// No silent fallback when the trusted channel is present but
			// broken.
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestNormalize_RichPayloadAllVariants(t *testing.T) {
	payloads := map[Type]string{
		TypeText:     `{"type":"TEXT","title":"t","body":"b"}`,
		TypeMedia:    `{"type":"MEDIA","title":"t","body":"b","media_url":"u","media_type":"IMAGE"}`,
		TypeCarousel: `{"type":"CAROUSEL","title":"t","items":[{"title":"i","image_url":"u"}]}`,
		TypeList:     `{"type":"LIST","title":"t","items":[{"title":"i"}]}`,
		TypePoll:     `{"type":"POLL","question":"q","poll_id":"p1","allow_multiple_selection":true,"options":[{"id":"a","text":"A"}]}`,
		TypeCard:     `{"type":"CARD","title":"t","body":"b"}`,
		TypePromotional: `{"type":"PROMOTIONAL","title":"t","body":"b","coupon_code":"PROMO10"}`,
	}

	for typ, payload := range payloads {
		t.Run(string(typ), func(t *testing.T) {
			env := Envelope{Data: map[string]any{"notification_content": payload}}

			got, err := Normalize(env)
			require.NoError(t, err)
			assert.Equal(t, typ, got.Type)
			require.NotNil(t, got.Variant())
			require.NoError(t, got.Validate())
		})
	}
}

func TestEnvelope_RoundTrip(t *testing.T) {
	raw := `{"notification":{"title":"Hi","body":"there"},"data":{"order_id":"42","click_action":"/orders/42"},"fcmOptions":{"link":"/orders"}}`

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	require.NotNil(t, env.Notification)
	assert.Equal(t, "Hi", env.Notification.Title)
	assert.Equal(t, "42", env.Data["order_id"])
	assert.Equal(t, "/orders", env.FCMOptions.Link)
}
