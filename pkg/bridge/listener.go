package bridge

import (
	"context"
	"sync"

	"github.com/wanderlabs/pushkit/pkg/inbox"
)

// FeedSubscription receives the stored records the bridge emits on
// foreground delivery. Receive's channel is closed when the subscription
// closes; Close is idempotent.
type FeedSubscription struct {
	ch     chan inbox.Stored
	closed bool
	mu     sync.RWMutex
}

func newFeedSubscription(bufferSize int) *FeedSubscription {
	return &FeedSubscription{
		ch: make(chan inbox.Stored, bufferSize),
	}
}

// Receive returns the channel of stored records for this subscription.
func (s *FeedSubscription) Receive() <-chan inbox.Stored {
	return s.ch
}

// Close closes the subscription and its channel.
func (s *FeedSubscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *FeedSubscription) send(item inbox.Stored) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- item:
		return true
	default:
		return false
	}
}

// feed fans stored records out to the registered in-app listeners. Sends
// are non-blocking: a subscriber whose buffer is full misses the record and
// is dropped, so a stalled toast surface cannot back-pressure delivery.
type feed struct {
	subscribers map[*FeedSubscription]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

func newFeed(bufferSize int) *feed {
	return &feed{
		subscribers: make(map[*FeedSubscription]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

func (f *feed) subscribe(ctx context.Context) *FeedSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := newFeedSubscription(f.bufferSize)
	if f.closed {
		sub.Close()
		return sub
	}
	f.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		f.cleanupWg.Add(1)
		go func() {
			defer f.cleanupWg.Done()
			<-ctx.Done()
			f.unsubscribe(sub)
		}()
	}
	return sub
}

func (f *feed) publish(item inbox.Stored) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return
	}
	for sub := range f.subscribers {
		if !sub.send(item) {
			go f.unsubscribe(sub)
		}
	}
}

func (f *feed) close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for sub := range f.subscribers {
		sub.Close()
	}
	clear(f.subscribers)
	f.mu.Unlock()

	f.cleanupWg.Wait()
}

func (f *feed) unsubscribe(sub *FeedSubscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subscribers, sub)
	sub.Close()
}
