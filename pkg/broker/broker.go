package broker

import (
	"sync"
)

// Channel represents the type of event channel
type Channel string

const (
	// ChannelAdmin receives every moderation and curation event.
	ChannelAdmin Channel = "admin"
	// ChannelTracker is the public drama tracker feed; all clients
	// receive all tracker events.
	ChannelTracker Channel = "tracker"
	// ChannelSubmitter is keyed by user id; a submitter only receives
	// events about their own reports.
	ChannelSubmitter Channel = "submitter"
)

// Event represents a store change notification
type Event struct {
	Type      string                 `json:"type"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Broker fans store change events out to SSE subscribers. Admin and
// tracker are broadcast channels; submitter channels are segmented per
// user so one submitter never sees another's pending reports.
type Broker struct {
	adminClients   map[chan Event]struct{}
	trackerClients map[chan Event]struct{}

	// map[user_id] -> set of client channels
	submitterClients map[string]map[chan Event]struct{}

	mutex sync.RWMutex
}

func New() *Broker {
	return &Broker{
		adminClients:     make(map[chan Event]struct{}),
		trackerClients:   make(map[chan Event]struct{}),
		submitterClients: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe creates a new client channel and returns it.
// id is only meaningful for ChannelSubmitter (the user id).
func (b *Broker) Subscribe(channel Channel, id string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // Buffered to prevent blocking

	switch channel {
	case ChannelAdmin:
		b.adminClients[clientChan] = struct{}{}

	case ChannelTracker:
		b.trackerClients[clientChan] = struct{}{}

	case ChannelSubmitter:
		if _, exists := b.submitterClients[id]; !exists {
			b.submitterClients[id] = make(map[chan Event]struct{})
		}
		b.submitterClients[id][clientChan] = struct{}{}
	}

	return clientChan
}

// Unsubscribe removes a client channel and closes it.
func (b *Broker) Unsubscribe(channel Channel, id string, clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch channel {
	case ChannelAdmin:
		delete(b.adminClients, clientChan)

	case ChannelTracker:
		delete(b.trackerClients, clientChan)

	case ChannelSubmitter:
		if clients, exists := b.submitterClients[id]; exists {
			delete(clients, clientChan)
			if len(clients) == 0 {
				delete(b.submitterClients, id)
			}
		}
	}

	close(clientChan)
}

// Publish sends an event to the appropriate channel(s). A client that is
// not draining its channel is skipped rather than blocking the publisher.
func (b *Broker) Publish(channel Channel, id string, event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	switch channel {
	case ChannelAdmin:
		for clientChan := range b.adminClients {
			select {
			case clientChan <- event:
			default:
			}
		}

	case ChannelTracker:
		for clientChan := range b.trackerClients {
			select {
			case clientChan <- event:
			default:
			}
		}

	case ChannelSubmitter:
		if clients, exists := b.submitterClients[id]; exists {
			for clientChan := range clients {
				select {
				case clientChan <- event:
				default:
				}
			}
		}
	}
}

// Stats returns current subscriber counts per channel.
func (b *Broker) Stats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	submitterCount := 0
	for _, clients := range b.submitterClients {
		submitterCount += len(clients)
	}

	return map[string]int{
		"admin_clients":     len(b.adminClients),
		"tracker_clients":   len(b.trackerClients),
		"submitter_clients": submitterCount,
	}
}
