// Package inboxhttp serves the notification inbox over HTTP.
//
// The surface mirrors the inbox operations: listing (flat or grouped by
// date with ?grouped=true), unread count, per-id and bulk read marking,
// per-id deletion and full clear, plus an optional /live SSE stream of
// notifications as the bridge stores them.
//
//	svc := inboxhttp.NewService(box, inboxhttp.WithFeed(br))
//	r := chi.NewRouter()
//	r.Mount("/notifications", svc.Handle())
//
// Storage errors surface as 500 with a generic body; the underlying error
// goes to the logger, never to the client.
package inboxhttp
