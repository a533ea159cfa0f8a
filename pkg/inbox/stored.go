package inbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlabs/pushkit/pkg/richpush"
)

// Stored is a received notification persisted in the device inbox. On the
// wire it is the flat rich-notification JSON extended with the inbox
// bookkeeping fields, so the stored array stays readable by anything that
// understands the rich payload shape.
type Stored struct {
	Notification richpush.Notification

	// ID is process-unique: epoch milliseconds plus a random suffix. The
	// collision probability is negligible for a single device's append
	// rate.
	ID         string
	Timestamp  int64 // epoch milliseconds, assigned at save time
	IsRead     bool
	ReceivedAt string // ISO-8601
}

// newStored stamps a notification with inbox bookkeeping. The stored
// timestamp is authoritative and shadows any timestamp the payload carried.
func newStored(n richpush.Notification, now time.Time) Stored {
	ts := now.UnixMilli()
	n.Timestamp = ts
	return Stored{
		Notification: n,
		ID:           fmt.Sprintf("%d-%s", ts, uuid.NewString()[:8]),
		Timestamp:    ts,
		IsRead:       false,
		ReceivedAt:   now.Format(time.RFC3339),
	}
}

type storedExtra struct {
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"`
	IsRead     bool   `json:"is_read"`
	ReceivedAt string `json:"received_at"`
}

func (s Stored) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(s.Notification)
	if err != nil {
		return nil, err
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(base, &flat); err != nil {
		return nil, err
	}

	extra, err := json.Marshal(storedExtra{
		ID:         s.ID,
		Timestamp:  s.Timestamp,
		IsRead:     s.IsRead,
		ReceivedAt: s.ReceivedAt,
	})
	if err != nil {
		return nil, err
	}
	var extraFlat map[string]json.RawMessage
	if err := json.Unmarshal(extra, &extraFlat); err != nil {
		return nil, err
	}
	for k, v := range extraFlat {
		flat[k] = v
	}

	return json.Marshal(flat)
}

func (s *Stored) UnmarshalJSON(data []byte) error {
	var extra storedExtra
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}

	var n richpush.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	n.Timestamp = extra.Timestamp

	*s = Stored{
		Notification: n,
		ID:           extra.ID,
		Timestamp:    extra.Timestamp,
		IsRead:       extra.IsRead,
		ReceivedAt:   extra.ReceivedAt,
	}
	return nil
}
