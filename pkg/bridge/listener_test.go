package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/pushkit/pkg/inbox"
	"github.com/wanderlabs/pushkit/pkg/richpush"
)

func storedRecord(title string) inbox.Stored {
	box := inbox.New(inbox.NewMemoryStorage())
	return box.Save(context.Background(), richpush.NewText(title, "", ""))
}

func TestFeed_FanOut(t *testing.T) {
	f := newFeed(4)
	defer f.close()

	ctx := context.Background()
	first := f.subscribe(ctx)
	second := f.subscribe(ctx)

	item := storedRecord("hello")
	f.publish(item)

	for _, sub := range []*FeedSubscription{first, second} {
		select {
		case got := <-sub.Receive():
			assert.Equal(t, item.ID, got.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the record")
		}
	}
}

func TestFeed_SlowSubscriberDropped(t *testing.T) {
	f := newFeed(1)
	defer f.close()

	sub := f.subscribe(context.Background())

	// Fill the buffer, then overflow it; the stalled subscriber is dropped
	// rather than blocking the publisher.
	f.publish(storedRecord("first"))
	f.publish(storedRecord("second"))

	// The dropped subscription's channel ends up closed once the buffered
	// record is drained.
	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-sub.Receive():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("slow subscriber was never dropped")
		}
	}
}

func TestFeed_ContextCancellationUnsubscribes(t *testing.T) {
	f := newFeed(4)
	defer f.close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := f.subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-sub.Receive():
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestFeed_SubscribeAfterClose(t *testing.T) {
	f := newFeed(4)
	f.close()

	sub := f.subscribe(context.Background())
	_, open := <-sub.Receive()
	assert.False(t, open, "subscription after close must be already closed")

	// Publishing after close is a no-op, not a panic.
	f.publish(storedRecord("late"))
}

func TestFeedSubscription_CloseIdempotent(t *testing.T) {
	sub := newFeedSubscription(1)
	sub.Close()
	sub.Close()

	assert.False(t, sub.send(storedRecord("x")))
}
