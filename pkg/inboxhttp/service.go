package inboxhttp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wanderlabs/pushkit/pkg/bridge"
	"github.com/wanderlabs/pushkit/pkg/inbox"
)

// Feed is the live side of the surface: a subscription to notifications
// as the bridge stores them. *bridge.Bridge satisfies it.
type Feed interface {
	Subscribe(ctx context.Context) *bridge.FeedSubscription
}

// Service exposes the notification inbox over HTTP. Mount its Handle()
// under the host router:
//
//	r := chi.NewRouter()
//	r.Mount("/notifications", svc.Handle())
type Service struct {
	box    *inbox.Inbox
	feed   Feed
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithFeed enables the /live SSE endpoint over the given feed.
func WithFeed(feed Feed) Option {
	return func(s *Service) {
		s.feed = feed
	}
}

// WithLogger sets the logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for date grouping.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the HTTP surface over an inbox.
func NewService(box *inbox.Inbox, opts ...Option) *Service {
	s := &Service{
		box:    box,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the routed handler for the service.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/unread-count", s.unreadCount)
	r.Post("/read-all", s.markAllRead)
	r.Post("/{id}/read", s.markRead)
	r.Delete("/{id}", s.remove)
	r.Delete("/", s.clear)
	if s.feed != nil {
		r.Get("/live", s.live)
	}

	return r
}

type listResponse struct {
	Notifications []inbox.Stored `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

type groupedResponse struct {
	Groups      inbox.Groups `json:"groups"`
	UnreadCount int          `json:"unread_count"`
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	items := s.box.All(r.Context())
	unread := s.box.UnreadCount(r.Context())

	if r.URL.Query().Get("grouped") == "true" {
		s.respond(w, r, http.StatusOK, groupedResponse{
			Groups:      inbox.GroupByDate(items, s.now()),
			UnreadCount: unread,
		})
		return
	}

	if items == nil {
		items = []inbox.Stored{}
	}
	s.respond(w, r, http.StatusOK, listResponse{Notifications: items, UnreadCount: unread})
}

func (s *Service) unreadCount(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]int{
		"unread_count": s.box.UnreadCount(r.Context()),
	})
}

func (s *Service) markRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.box.MarkRead(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) markAllRead(w http.ResponseWriter, r *http.Request) {
	if err := s.box.MarkAllRead(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.box.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) clear(w http.ResponseWriter, r *http.Request) {
	if err := s.box.Clear(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// live streams stored notifications as SSE events until the client
// disconnects. Each event carries the flat stored-notification JSON.
func (s *Service) live(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub := s.feed.Subscribe(r.Context())
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	enc := json.NewEncoder(w)
	for {
		select {
		case <-r.Context().Done():
			return
		case item, open := <-sub.Receive():
			if !open {
				return
			}
			if _, err := w.Write([]byte("event: notification\ndata: ")); err != nil {
				return
			}
			if err := enc.Encode(item); err != nil {
				return
			}
			// json.Encoder terminates data with one newline; SSE needs a
			// blank line to end the event.
			if _, err := w.Write([]byte("\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelError, "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.LogAttrs(r.Context(), slog.LevelError, "inbox operation failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	s.respond(w, r, http.StatusInternalServerError, map[string]string{
		"error": "storage failure",
	})
}
