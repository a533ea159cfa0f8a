package bridge

import (
	"context"
	"errors"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrNoDeviceToken is returned by FCMNotifier.Display before a token is set.
var ErrNoDeviceToken = errors.New("no device token set for FCM display")

// FCMNotifier implements Notifier by routing the display call back through
// Firebase Cloud Messaging to this installation's own token. It is the
// server-assisted way to raise tray notifications when no direct platform
// notification API is available.
type FCMNotifier struct {
	client *messaging.Client

	mu    sync.RWMutex
	token string
}

// NewFCMNotifier initializes the Firebase app and its messaging client
// from a service-account credentials file.
func NewFCMNotifier(ctx context.Context, credentialsPath, projectID string) (*FCMNotifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID},
		option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMNotifier{client: client}, nil
}

// SetToken points the notifier at the device token to display on. Typically
// wired to Registrar.Token after a successful registration.
func (f *FCMNotifier) SetToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *FCMNotifier) Display(ctx context.Context, title string, opts DisplayOptions) error {
	f.mu.RLock()
	token := f.token
	f.mu.RUnlock()
	if token == "" {
		return ErrNoDeviceToken
	}

	requireInteraction := opts.RequireInteraction
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    title,
			Body:     opts.Body,
			ImageURL: opts.Image,
		},
		Data: opts.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title:              title,
				Body:               opts.Body,
				Icon:               opts.Icon,
				Badge:              opts.Badge,
				Tag:                opts.Tag,
				RequireInteraction: requireInteraction,
				Vibrate:            opts.Vibrate,
			},
		},
	}

	_, err := f.client.Send(ctx, msg)
	return err
}
