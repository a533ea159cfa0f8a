package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPDeviceAPI registers device tokens against the aggregation backend's
// device registry over REST. It implements DeviceAPI.
type HTTPDeviceAPI struct {
	baseURL string
	client  *http.Client
	auth    func(*http.Request)
}

// HTTPDeviceOption configures an HTTPDeviceAPI.
type HTTPDeviceOption func(*HTTPDeviceAPI)

// WithHTTPClient overrides the HTTP client, e.g. to add instrumentation.
func WithHTTPClient(client *http.Client) HTTPDeviceOption {
	return func(a *HTTPDeviceAPI) {
		if client != nil {
			a.client = client
		}
	}
}

// WithAuthDecorator installs a hook that decorates every request, typically
// attaching the session's bearer token.
func WithAuthDecorator(decorate func(*http.Request)) HTTPDeviceOption {
	return func(a *HTTPDeviceAPI) {
		if decorate != nil {
			a.auth = decorate
		}
	}
}

// NewHTTPDeviceAPI creates a client for the device registry rooted at
// baseURL.
func NewHTTPDeviceAPI(baseURL string, opts ...HTTPDeviceOption) *HTTPDeviceAPI {
	a := &HTTPDeviceAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *HTTPDeviceAPI) Register(ctx context.Context, token string, info DeviceInfo) error {
	body, err := json.Marshal(struct {
		Token string `json:"token"`
		DeviceInfo
	}{Token: token, DeviceInfo: info})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/devices", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func (a *HTTPDeviceAPI) Unregister(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.baseURL+"/devices", nil)
	if err != nil {
		return err
	}
	return a.do(req)
}

func (a *HTTPDeviceAPI) do(req *http.Request) error {
	if a.auth != nil {
		a.auth(req)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Join(ErrBackendRegistration,
			fmt.Errorf("device registry returned %s", resp.Status))
	}
	return nil
}
