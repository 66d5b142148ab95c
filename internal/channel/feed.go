package channel

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"waiterboard/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the slice of kafka.Reader the feed needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// EventHandler receives each decoded order event.
type EventHandler func(event domain.OrderEvent)

// ResyncHandler is invoked after the feed recovers from a disconnect. Events
// may have been missed, so the owner should request a fresh full snapshot.
type ResyncHandler func()

// Feed consumes the platform's order-events topic and delivers decoded events
// to a single subscriber. Delivery is at-least-once; the feed never reorders.
type Feed struct {
	reader   MessageReader
	handler  EventHandler
	onResync ResyncHandler

	connected  atomic.Bool
	muted      atomic.Bool
	pendingNew atomic.Int64

	backoff time.Duration
}

func NewFeed(reader MessageReader, handler EventHandler, onResync ResyncHandler) *Feed {
	return &Feed{
		reader:   reader,
		handler:  handler,
		onResync: onResync,
		backoff:  2 * time.Second,
	}
}

// Start blocks consuming the feed until ctx is cancelled. Read errors flip the
// feed to disconnected and consumption keeps retrying; the first successful
// read afterwards flips it back and triggers a resync.
func (f *Feed) Start(ctx context.Context) {
	log.Println("Starting order event feed...")
	wasDown := false

	for {
		message, err := f.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				f.connected.Store(false)
				log.Println("Order event feed stopped")
				return
			}
			if !wasDown {
				log.Printf("Order event feed disconnected: %v", err)
			}
			wasDown = true
			f.connected.Store(false)
			select {
			case <-ctx.Done():
				return
			case <-time.After(f.backoff):
			}
			continue
		}

		if wasDown {
			wasDown = false
			f.connected.Store(true)
			log.Println("Order event feed reconnected, requesting resync")
			if f.onResync != nil {
				f.onResync()
			}
		}
		f.connected.Store(true)

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling order event: %v", err)
			continue
		}
		if err := event.Order.Validate(); err != nil {
			log.Printf("Dropping malformed order event: %v", err)
			continue
		}

		if event.Type == domain.EventNewOrder {
			f.pendingNew.Add(1)
			if !f.muted.Load() {
				log.Printf("New order %s at %s", event.Order.Number, event.Order.LocationLabel)
			}
		}

		if f.handler != nil {
			f.handler(event)
		}
	}
}

func (f *Feed) Close() error { return f.reader.Close() }

func (f *Feed) Connected() bool { return f.connected.Load() }

// PendingNew is the count of new orders not yet acknowledged by the staff.
func (f *Feed) PendingNew() int64 { return f.pendingNew.Load() }

// Acknowledge clears the new-order badge.
func (f *Feed) Acknowledge() { f.pendingNew.Store(0) }

func (f *Feed) SetMuted(muted bool) { f.muted.Store(muted) }

func (f *Feed) Muted() bool { return f.muted.Load() }
